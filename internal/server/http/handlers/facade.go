package handlers

import (
	"context"

	"github.com/solenik/userhub/internal/domain/model"
	"github.com/solenik/userhub/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (string, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
}

// UserFacade encapsulates account operations exposed via HTTP.
type UserFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	User(ctx context.Context, id string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, in usecase.UpdateInput) (*model.User, error)
}

// AccountFacade aggregates the full set of operations used across handlers.
type AccountFacade interface {
	AuthFacade
	UserFacade
}
