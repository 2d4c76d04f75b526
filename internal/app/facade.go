package app

import (
	"context"

	"github.com/solenik/userhub/internal/domain/model"
	"github.com/solenik/userhub/internal/usecase"
)

// AccountFacade aggregates the use cases exposed to the HTTP layer.
type AccountFacade struct {
	auth  *usecase.AuthUseCase
	users *usecase.UserUseCase
}

// NewAccountFacade constructs AccountFacade.
func NewAccountFacade(auth *usecase.AuthUseCase, users *usecase.UserUseCase) *AccountFacade {
	return &AccountFacade{auth: auth, users: users}
}

func (f *AccountFacade) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	return f.auth.Register(ctx, in)
}

func (f *AccountFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *AccountFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *AccountFacade) UserByID(ctx context.Context, id string) (*model.User, error) {
	return f.auth.UserByID(ctx, id)
}

func (f *AccountFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *AccountFacade) User(ctx context.Context, id string) (*model.User, error) {
	return f.users.Get(ctx, id)
}

func (f *AccountFacade) UpdateUser(ctx context.Context, id string, in usecase.UpdateInput) (*model.User, error) {
	return f.users.Update(ctx, id, in)
}
