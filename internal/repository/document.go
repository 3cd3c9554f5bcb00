package repository

import (
	"context"

	"gedapi/internal/model"
)

// DocumentRepository defines access to the document store. The store keeps an
// explicit order: Create prepends, List returns that order unchanged.
type DocumentRepository interface {
	// List returns all documents in store order.
	List(ctx context.Context) ([]model.Document, error)

	// FindByID returns a document by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// Create prepends a new document. The caller assigns the ID.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Delete removes a document by ID, or returns ErrNotFound.
	// History entries referencing the document are not affected.
	Delete(ctx context.Context, id string) error
}
