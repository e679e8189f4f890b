package security

// PasswordHasher is a stateless capability for salted password hashing.
// Credential checks are pure functions of stored hash + supplied secret.
type PasswordHasher interface {
	// Hash returns a salted hash of the password
	Hash(password string) (string, error)

	// Verify checks a password against a stored hash, returning an error on mismatch
	Verify(hash, password string) error
}
