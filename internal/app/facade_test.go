package app

import (
	"context"
	"testing"

	"github.com/solenik/userhub/internal/server/http/handlers"
	testhelpers "github.com/solenik/userhub/internal/test"
	"github.com/solenik/userhub/internal/usecase"
)

var _ handlers.AccountFacade = (*AccountFacade)(nil)

func newTestFacade() (*AccountFacade, *testhelpers.UserRepositoryStub) {
	repo := testhelpers.NewUserRepositoryStub()
	auth := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
	users := usecase.NewUserUseCase(repo)
	return NewAccountFacade(auth, users), repo
}

func TestAccountFacadeRegisterAndAuthenticate(t *testing.T) {
	facade, _ := newTestFacade()
	ctx := context.Background()

	user, token, err := facade.Register(ctx, usecase.RegisterInput{
		Username: "alice1",
		Email:    "a@b.com",
		Password: "Abcdef1!",
		FullName: "Alice Smith",
		Phone:    "1234567890",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" || user.ID == "" {
		t.Fatalf("incomplete registration result: %+v token=%q", user, token)
	}

	authenticated, token, err := facade.Authenticate(ctx, "a@b.com", "Abcdef1!")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authenticated.ID != user.ID || token == "" {
		t.Fatalf("unexpected authentication result: %+v", authenticated)
	}
}

func TestAccountFacadeTokenRoundTrip(t *testing.T) {
	facade, _ := newTestFacade()
	ctx := context.Background()

	user, _, err := facade.Register(ctx, usecase.RegisterInput{
		Username: "alice1",
		Email:    "a@b.com",
		Password: "Abcdef1!",
		FullName: "Alice Smith",
		Phone:    "1234567890",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	subject, err := facade.ParseToken("token")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	resolved, err := facade.UserByID(ctx, subject)
	if err != nil {
		t.Fatalf("user by id: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("expected %q, got %q", user.ID, resolved.ID)
	}
}

func TestAccountFacadeUserOperations(t *testing.T) {
	facade, _ := newTestFacade()
	ctx := context.Background()

	registered, _, err := facade.Register(ctx, usecase.RegisterInput{
		Username: "alice1",
		Email:    "a@b.com",
		Password: "Abcdef1!",
		FullName: "Alice Smith",
		Phone:    "1234567890",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	users, err := facade.Users(ctx)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}

	fullName := "Alice Renamed"
	updated, err := facade.UpdateUser(ctx, registered.ID, usecase.UpdateInput{FullName: &fullName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != fullName {
		t.Fatalf("patch not applied: %+v", updated)
	}

	fetched, err := facade.User(ctx, registered.ID)
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	if fetched.FullName != fullName {
		t.Fatalf("stale read after update: %+v", fetched)
	}
}
