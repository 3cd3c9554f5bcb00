package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"gedapi/internal/model"
	"gedapi/internal/repository"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
	ErrUserNotFound  = errors.New("user not found")
	ErrCurrentUser   = errors.New("the current user cannot be deleted")
)

// defaultPassword is assigned to roster-created users; it is never verified.
const defaultPassword = "password123"

// UserService defines the roster use cases plus current-user selection.
type UserService interface {
	// List returns the roster in store order.
	List(ctx context.Context) ([]model.User, error)

	// Add creates a roster entry. Role defaults to MEMBER when unset or
	// unknown; the password and avatar get placeholder values.
	Add(ctx context.Context, name, email string, role model.UserRole) (*model.User, error)

	// Remove deletes a user by ID. The current user is never deletable.
	Remove(ctx context.Context, id string) error

	// Current returns the acting user.
	Current(ctx context.Context) (*model.User, error)

	// SetCurrent switches the acting user.
	SetCurrent(ctx context.Context, id string) error
}

type userService struct {
	users repository.UserRepository
}

// NewUserService constructs a UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Add(ctx context.Context, name, email string, role model.UserRole) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if !role.Valid() {
		role = model.RoleMember
	}

	return s.users.Create(ctx, &model.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: defaultPassword,
		Role:     role,
		Avatar:   "https://picsum.photos/seed/" + strings.ReplaceAll(name, " ", "") + "/200",
	})
}

func (s *userService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	err := s.users.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrCurrentUser):
		return ErrCurrentUser
	case errors.Is(err, repository.ErrNotFound):
		return ErrUserNotFound
	}
	return err
}

func (s *userService) Current(ctx context.Context) (*model.User, error) {
	return s.users.Current(ctx)
}

func (s *userService) SetCurrent(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.users.SetCurrent(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
