package auth

import (
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	"github.com/dampdigits/stockplay/internal/domain/port/persistence"
	"github.com/dampdigits/stockplay/internal/domain/port/security"
	"github.com/dampdigits/stockplay/internal/domain/port/session"
)

// Service implements registration, login, logout and password change
type Service struct {
	users        persistence.UserRepository
	sessions     session.Store
	hasher       security.PasswordHasher
	tp           coreport.TimeProvider
	logger       coreport.Logger
	startingCash int64
}

// NewService creates a new auth service. startingCash is the simulated cash
// grant, in cents, that every new account receives at registration.
func NewService(
	users persistence.UserRepository,
	sessions session.Store,
	hasher security.PasswordHasher,
	tp coreport.TimeProvider,
	logger coreport.Logger,
	startingCash int64,
) *Service {
	return &Service{
		users:        users,
		sessions:     sessions,
		hasher:       hasher,
		tp:           tp,
		logger:       logger,
		startingCash: startingCash,
	}
}
