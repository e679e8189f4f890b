package security

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock implementation of the PasswordHasher interface
type MockPasswordHasher struct {
	mock.Mock
}

// Hash mocks the Hash method
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// Verify mocks the Verify method
func (m *MockPasswordHasher) Verify(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}
