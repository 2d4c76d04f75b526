package repository

import (
	"context"
	"time"

	"github.com/solenik/userhub/internal/domain/model"
)

// NewUser carries the fields required to create an account record.
type NewUser struct {
	Username     string
	Email        string
	FullName     string
	Phone        string
	PasswordHash string
}

// UserPatch describes a partial profile update. Nil fields stay untouched.
type UserPatch struct {
	FullName *string
	Phone    *string
	Email    *string
}

// UserRepository describes persistence operations for users. Uniqueness of
// username and email is enforced by the store itself; Create and Update
// report collisions as ErrAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user NewUser) (*model.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*model.User, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	List(ctx context.Context) ([]model.User, error)
}
