package service

import (
	"context"

	"gedapi/internal/model"
	"gedapi/internal/repository"
)

// CategoryService exposes the static classification tree.
type CategoryService interface {
	List(ctx context.Context) ([]model.CategoryNode, error)
}

type categoryService struct {
	cats repository.CategoryRepository
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(cats repository.CategoryRepository) CategoryService {
	return &categoryService{cats: cats}
}

func (s *categoryService) List(ctx context.Context) ([]model.CategoryNode, error) {
	return s.cats.List(ctx)
}
