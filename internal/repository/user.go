package repository

import (
	"context"

	"gedapi/internal/model"
)

// UserRepository defines access to the roster and to the distinguished
// acting user. The current user defaults to the first seeded entry and can
// never be deleted while selected.
type UserRepository interface {
	// List returns all users in store order.
	List(ctx context.Context) ([]model.User, error)

	// FindByID returns a user by ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// Create appends a new user. The caller assigns the ID.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// Delete removes a user by ID. Returns ErrCurrentUser when the target is
	// the acting user, ErrNotFound when absent.
	Delete(ctx context.Context, id string) error

	// Current returns the acting user.
	Current(ctx context.Context) (*model.User, error)

	// SetCurrent switches the acting user, or returns ErrNotFound.
	SetCurrent(ctx context.Context, id string) error
}
