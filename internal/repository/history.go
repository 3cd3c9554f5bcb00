package repository

import (
	"context"

	"gedapi/internal/model"
)

// HistoryRepository defines access to the append-only activity log.
// There is no update or delete: entries are immutable snapshots.
type HistoryRepository interface {
	// List returns all entries, most recent first.
	List(ctx context.Context) ([]model.HistoryEntry, error)

	// Append records a new entry at the head of the log. ID and Timestamp
	// are assigned at write time; the caller fills the remaining fields.
	Append(ctx context.Context, entry model.HistoryEntry) (*model.HistoryEntry, error)
}
