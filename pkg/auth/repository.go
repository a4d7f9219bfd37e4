package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("email and password are required")
	ErrUsernameRequired   = errors.New("username is required")
)

//go:generate minimock -i UserRepository -o ./mocks/user_repository_mock.go -n UserRepositoryMock -p mocks

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	// UpdateProfile applies changes and returns the stored user.
	UpdateProfile(ctx context.Context, id uuid.UUID, changes ProfileChanges) (User, error)
}
