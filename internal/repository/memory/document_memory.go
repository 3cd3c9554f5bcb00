package memory

import (
	"context"
	"sync"

	"gedapi/internal/model"
	"gedapi/internal/repository"
)

// documentMemory keeps the catalogue in an ordered slice. New documents are
// prepended so the most recent upload lists first. Safe for concurrent use.
type documentMemory struct {
	mu   sync.RWMutex
	docs []model.Document
}

// NewDocumentMemory creates a document repository seeded with the given
// records. The slice is copied; callers keep ownership of theirs.
func NewDocumentMemory(docs []model.Document) repository.DocumentRepository {
	m := &documentMemory{docs: make([]model.Document, len(docs))}
	copy(m.docs, docs)
	return m
}

func (m *documentMemory) List(ctx context.Context) ([]model.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Document, len(m.docs))
	copy(out, m.docs)
	return out, nil
}

func (m *documentMemory) FindByID(ctx context.Context, id string) (*model.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.docs {
		if d.ID == id {
			doc := d
			return &doc, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *documentMemory) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append([]model.Document{*doc}, m.docs...)
	stored := *doc
	return &stored, nil
}

func (m *documentMemory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		if d.ID == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
