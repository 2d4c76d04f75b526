package test

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/solenik/userhub/internal/domain/errors"
	"github.com/solenik/userhub/internal/domain/model"
	"github.com/solenik/userhub/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests and enforces the same
// uniqueness guarantees a real store would.
type UserRepositoryStub struct {
	ByUsername map[string]*model.User
	ByEmail    map[string]*model.User
	ByID       map[string]*model.User
	Next       int
	Err        error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByUsername: make(map[string]*model.User),
		ByEmail:    make(map[string]*model.User),
		ByID:       make(map[string]*model.User),
		Next:       1,
	}
}

// Create registers user unless username or email is taken or the stub has an
// explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user repository.NewUser) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByUsername[user.Username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	created := &model.User{
		ID:           fmt.Sprintf("user-%d", s.Next),
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.Next++
	s.ByUsername[created.Username] = created
	s.ByEmail[created.Email] = created
	s.ByID[created.ID] = created
	return created, nil
}

// GetByIdentifier fetches user by username or email, or returns not found.
func (s *UserRepositoryStub) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByUsername[identifier]; ok {
		return user, nil
	}
	if user, ok := s.ByEmail[identifier]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update applies the patch honoring email uniqueness.
func (s *UserRepositoryStub) Update(ctx context.Context, id string, patch repository.UserPatch) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Email != nil && *patch.Email != user.Email {
		if _, taken := s.ByEmail[*patch.Email]; taken {
			return nil, domainErrors.ErrAlreadyExists
		}
		delete(s.ByEmail, user.Email)
		user.Email = *patch.Email
		s.ByEmail[user.Email] = user
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	return user, nil
}

// TouchLastLogin records the login timestamp.
func (s *UserRepositoryStub) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.LastLogin = &at
	return nil
}

// List returns every stored user in creation order.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for i := 1; i < s.Next; i++ {
		if user, ok := s.ByID[fmt.Sprintf("user-%d", i)]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)
