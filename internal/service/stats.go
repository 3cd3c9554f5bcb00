package service

import (
	"context"

	"gedapi/internal/model"
	"gedapi/internal/repository"
)

// SubcategoryCount is one slice of the per-subcategory distribution.
type SubcategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats is the dashboard overview.
type Stats struct {
	TotalDocuments int                `json:"totalDocuments"`
	TotalBooks     int                `json:"totalBooks"`
	TotalFolders   int                `json:"totalFolders"`
	Downloads      int                `json:"downloads"`
	LastActivity   string             `json:"lastActivity"`
	Subcategories  []SubcategoryCount `json:"subcategories"`
}

// StatsService computes dashboard figures from the stores.
type StatsService interface {
	Overview(ctx context.Context) (*Stats, error)
}

type statsService struct {
	docs    repository.DocumentRepository
	history repository.HistoryRepository
}

// NewStatsService constructs a StatsService.
func NewStatsService(docs repository.DocumentRepository, history repository.HistoryRepository) StatsService {
	return &statsService{docs: docs, history: history}
}

func (s *statsService) Overview(ctx context.Context) (*Stats, error) {
	docs, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.history.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalDocuments: len(docs), LastActivity: "Aucune"}

	var subs []SubcategoryCount
	index := map[string]int{}
	for _, d := range docs {
		switch d.Category {
		case "Livres":
			stats.TotalBooks++
		case "Dossiers":
			stats.TotalFolders++
		}
		if i, ok := index[d.Subcategory]; ok {
			subs[i].Count++
		} else {
			index[d.Subcategory] = len(subs)
			subs = append(subs, SubcategoryCount{Name: d.Subcategory, Count: 1})
		}
	}
	stats.Subcategories = subs

	for _, e := range entries {
		if e.Action == model.ActionDownload {
			stats.Downloads++
		}
	}
	if len(entries) > 0 {
		stats.LastActivity = entries[0].Timestamp
	}
	return stats, nil
}
