package repository

import (
	"context"

	"gedapi/internal/model"
)

// CategoryRepository exposes the static taxonomy. Read-only at runtime.
type CategoryRepository interface {
	// List returns all category nodes in their fixed order.
	List(ctx context.Context) ([]model.CategoryNode, error)

	// FindByName returns a node by display name, or ErrNotFound.
	FindByName(ctx context.Context, name string) (*model.CategoryNode, error)
}
