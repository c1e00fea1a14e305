package services

import (
	"context"
	"time"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
	"github.com/ahmohbati/forex-backend/internal/dto"
)

// AuthSvcFacade owns user registration, credential verification and bearer
// token issuance. The rest of the application only ever sees the userID the
// middleware extracts from a validated token.
type AuthSvcFacade interface {
	// Register creates a new user with a hashed password.
	// Returns apperrors.ErrDuplicate when the email is taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies email+password and returns the user.
	// Returns apperrors.ErrUnauthorized on unknown email or wrong password.
	Authenticate(ctx context.Context, req dto.LoginRequest) (*domain.User, error)

	// GenerateAccessToken issues a signed bearer token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
