package service

import (
	"context"

	"gedapi/internal/model"
	"gedapi/internal/repository"
)

// HistoryService exposes the activity log, most recent first.
type HistoryService interface {
	List(ctx context.Context) ([]model.HistoryEntry, error)
}

type historyService struct {
	history repository.HistoryRepository
}

// NewHistoryService constructs a HistoryService.
func NewHistoryService(history repository.HistoryRepository) HistoryService {
	return &historyService{history: history}
}

func (s *historyService) List(ctx context.Context) ([]model.HistoryEntry, error) {
	return s.history.List(ctx)
}
