package test

import (
	"context"

	"github.com/solenik/userhub/internal/domain/model"
	"github.com/solenik/userhub/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterInput) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (string, error)
	UserByIDFn     func(context.Context, string) (*model.User, error)
}

// Register returns a token and account for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	return &model.User{ID: "user-1", Username: in.Username, Email: in.Email, FullName: in.FullName, Phone: in.Phone}, "token", nil
}

// Authenticate returns a token and account for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: "user-1", Email: email}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// UserByID resolves a subject to an account record.
func (s AuthFacadeStub) UserByID(ctx context.Context, id string) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Username: "stub"}, nil
}

// UserFacadeStub simulates account listing and profile operations.
type UserFacadeStub struct {
	ListFn   func(context.Context) ([]model.User, error)
	GetFn    func(context.Context, string) (*model.User, error)
	UpdateFn func(context.Context, string, usecase.UpdateInput) (*model.User, error)
}

// Users returns predefined accounts.
func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.User{{ID: "user-1", Username: "stub"}}, nil
}

// User returns a single predefined account.
func (s UserFacadeStub) User(ctx context.Context, id string) (*model.User, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.User{ID: id, Username: "stub"}, nil
}

// UpdateUser applies a stubbed profile patch.
func (s UserFacadeStub) UpdateUser(ctx context.Context, id string, in usecase.UpdateInput) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, in)
	}
	return &model.User{ID: id, Username: "stub"}, nil
}

// AccountFacadeStub aggregates facade dependencies for HTTP layer tests.
type AccountFacadeStub struct {
	AuthFacadeStub
	UserFacadeStub
}
