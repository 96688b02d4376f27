package user

import (
	"context"
)

// Repository is the user store contract. Postgres, Mongo and in-memory
// implementations live in the repository package.
type Repository interface {
	// Create returns ErrUsernameTaken when the username is already stored.
	Create(ctx context.Context, user *User) error

	// FindByUsername returns ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
