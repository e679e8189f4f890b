package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	// MinCost keeps the test fast
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret", hash)

		assert.NoError(t, hasher.Verify(hash, "s3cret"))
	})

	t.Run("verify rejects a wrong password", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret")
		require.NoError(t, err)

		assert.Error(t, hasher.Verify(hash, "not-the-password"))
	})

	t.Run("hashing is salted", func(t *testing.T) {
		first, err := hasher.Hash("s3cret")
		require.NoError(t, err)
		second, err := hasher.Hash("s3cret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second, "two hashes of the same password must differ")
	})

	t.Run("verify rejects a malformed hash", func(t *testing.T) {
		assert.Error(t, hasher.Verify("not-a-bcrypt-hash", "s3cret"))
	})
}
