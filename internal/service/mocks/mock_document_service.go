package mocks

import (
	"context"
	"io"

	"gedapi/internal/assistant"
	"gedapi/internal/model"
	"gedapi/internal/search"
	"gedapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context, category, subcategory, query string) ([]model.Document, error) {
	args := m.Called(ctx, category, subcategory, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Subcategories(ctx context.Context, category string) ([]string, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDocumentService) Search(ctx context.Context, f search.Facets) ([]model.Document, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) SearchFacets(ctx context.Context) (*service.SearchFacetsResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchFacetsResult), args.Error(1)
}

func (m *MockDocumentService) Upload(ctx context.Context, r io.Reader, req service.UploadRequest) (*model.Document, error) {
	args := m.Called(ctx, r, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, id string, recordView bool) (*model.Document, error) {
	args := m.Called(ctx, id, recordView)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Download(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentService) Suggest(ctx context.Context, filename, subcategory string) assistant.Suggestion {
	args := m.Called(ctx, filename, subcategory)
	return args.Get(0).(assistant.Suggestion)
}

func (m *MockDocumentService) SmartSearch(ctx context.Context, f search.Facets) (*service.SmartSearchResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SmartSearchResult), args.Error(1)
}
