package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"gedapi/internal/model"
	"gedapi/internal/repository"
)

// timestampLayout is the display form history entries carry.
const timestampLayout = "2006-01-02 15:04"

// historyMemory keeps the activity log newest-first. Append is the only
// mutation; entries are never updated or removed.
type historyMemory struct {
	mu      sync.RWMutex
	entries []model.HistoryEntry
	now     func() time.Time
}

// NewHistoryMemory creates a history repository seeded with the given
// entries, assumed oldest-first; they are stored newest-first.
func NewHistoryMemory(entries []model.HistoryEntry) repository.HistoryRepository {
	m := &historyMemory{now: time.Now}
	for _, e := range entries {
		m.entries = append([]model.HistoryEntry{e}, m.entries...)
	}
	return m
}

func (m *historyMemory) List(ctx context.Context) ([]model.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.HistoryEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *historyMemory) Append(ctx context.Context, entry model.HistoryEntry) (*model.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = uuid.NewString()
	entry.Timestamp = m.now().Format(timestampLayout)
	m.entries = append([]model.HistoryEntry{entry}, m.entries...)
	return &entry, nil
}
