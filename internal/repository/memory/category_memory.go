package memory

import (
	"context"

	"gedapi/internal/model"
	"gedapi/internal/repository"
)

// categoryMemory serves the static taxonomy. It never mutates, so reads need
// no locking; the backing slice is copied once at construction.
type categoryMemory struct {
	nodes []model.CategoryNode
}

// NewCategoryMemory creates a read-only category repository.
func NewCategoryMemory(nodes []model.CategoryNode) repository.CategoryRepository {
	m := &categoryMemory{nodes: make([]model.CategoryNode, len(nodes))}
	copy(m.nodes, nodes)
	return m
}

func (m *categoryMemory) List(ctx context.Context) ([]model.CategoryNode, error) {
	out := make([]model.CategoryNode, len(m.nodes))
	copy(out, m.nodes)
	return out, nil
}

func (m *categoryMemory) FindByName(ctx context.Context, name string) (*model.CategoryNode, error) {
	for _, n := range m.nodes {
		if n.Name == name {
			node := n
			return &node, nil
		}
	}
	return nil, repository.ErrNotFound
}
