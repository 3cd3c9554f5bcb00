package mocks

import (
	"context"

	"gedapi/internal/assistant"
	"gedapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Suggest(ctx context.Context, filename, subcategory string) assistant.Suggestion {
	args := m.Called(ctx, filename, subcategory)
	return args.Get(0).(assistant.Suggestion)
}

func (m *MockAssistant) Answer(ctx context.Context, query string, docs []model.Document) string {
	args := m.Called(ctx, query, docs)
	return args.String(0)
}
