package memory

import (
	"context"
	"sync"

	"gedapi/internal/model"
	"gedapi/internal/repository"
)

// userMemory keeps the roster in insertion order plus the acting-user
// selection. The current user defaults to the first seeded entry.
type userMemory struct {
	mu        sync.RWMutex
	users     []model.User
	currentID string
}

// NewUserMemory creates a user repository seeded with the given roster.
func NewUserMemory(users []model.User) repository.UserRepository {
	m := &userMemory{users: make([]model.User, len(users))}
	copy(m.users, users)
	if len(m.users) > 0 {
		m.currentID = m.users[0].ID
	}
	return m
}

func (m *userMemory) List(ctx context.Context) ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *userMemory) FindByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findLocked(id)
}

func (m *userMemory) findLocked(id string) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *userMemory) Create(ctx context.Context, u *model.User) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, *u)
	stored := *u
	return &stored, nil
}

func (m *userMemory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id == m.currentID {
		return repository.ErrCurrentUser
	}
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *userMemory) Current(ctx context.Context) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findLocked(m.currentID)
}

func (m *userMemory) SetCurrent(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.findLocked(id); err != nil {
		return err
	}
	m.currentID = id
	return nil
}
