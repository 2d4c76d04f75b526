package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/solenik/userhub/internal/domain/errors"
	"github.com/solenik/userhub/internal/domain/model"
	"github.com/solenik/userhub/internal/domain/repository"
	"github.com/solenik/userhub/internal/pkg/validate"
)

// UpdateInput describes a partial profile update. Nil fields stay untouched.
// Username and password are not updatable through this path.
type UpdateInput struct {
	FullName *string
	Phone    *string
	Email    *string
}

// UserUseCase exposes account listing and profile operations.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List returns all registered accounts.
func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// Get fetches a single account or ErrNotFound.
func (u *UserUseCase) Get(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// Update validates and applies a profile patch. A duplicate email surfaces
// as ErrAlreadyExists from the store.
func (u *UserUseCase) Update(ctx context.Context, id string, in UpdateInput) (*model.User, error) {
	fields := make(map[string]string)
	patch := repository.UserPatch{}

	if in.FullName != nil {
		fullName := strings.TrimSpace(*in.FullName)
		if msg := validate.Field("fullName", fullName); msg != "" {
			fields["fullName"] = msg
		}
		patch.FullName = &fullName
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if msg := validate.Field("phone", phone); msg != "" {
			fields["phone"] = msg
		}
		patch.Phone = &phone
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if msg := validate.Field("email", email); msg != "" {
			fields["email"] = msg
		}
		patch.Email = &email
	}

	if len(fields) > 0 {
		return nil, domainErrors.NewValidationError(fields)
	}

	return u.users.Update(ctx, id, patch)
}
