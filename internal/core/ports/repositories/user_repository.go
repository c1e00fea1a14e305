package repositories

import (
	"context"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByEmail retrieves a user by email, apperrors.ErrNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByID retrieves a user by ID, apperrors.ErrNotFound when absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
