package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErrors "github.com/solenik/userhub/internal/domain/errors"
	pkgAuth "github.com/solenik/userhub/internal/pkg/auth"
	testhelpers "github.com/solenik/userhub/internal/test"
	. "github.com/solenik/userhub/internal/usecase"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID string) (string, error) {
			return "token-" + userID, nil
		},
		ParseFn: func(token string) (string, error) {
			var id string
			if _, err := fmt.Sscanf(token, "token-%s", &id); err != nil {
				return "", pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username: "alice1",
		Email:    "a@b.com",
		Password: "Abcdef1!",
		FullName: "Alice Smith",
		Phone:    "1234567890",
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected user to have ID assigned")
	}
	if token != "token-"+user.ID {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByIdentifier(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:Abcdef1!" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if stored.PasswordHash == "Abcdef1!" {
		t.Fatal("plaintext password must never be stored")
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	in := validRegisterInput()
	in.Username = "1bad"
	in.Email = "not-an-email"
	_, _, err := uc.Register(context.Background(), in)

	var ve *domainErrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected two field errors, got %v", ve.Fields)
	}
	if ve.Fields["username"] == "" || ve.Fields["email"] == "" {
		t.Fatalf("missing expected field errors: %v", ve.Fields)
	}
}

func TestAuthUseCaseRegisterWeakPassword(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	in := validRegisterInput()
	in.Password = "abcdefgh"
	_, _, err := uc.Register(context.Background(), in)

	var ve *domainErrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["password"] == "" {
		t.Fatalf("expected password error, got %v", ve.Fields)
	}
}

func TestAuthUseCaseRegisterDuplicateEmail(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}

	in := validRegisterInput()
	in.Username = "bobby1"
	if _, _, err := uc.Register(ctx, in); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterNormalizesEmail(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	in := validRegisterInput()
	in.Email = "  Alice@B.Com "
	user, _, err := uc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.Email != "alice@b.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	registered, _, err := uc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "a@b.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, "a@b.com", "Abcdef1!")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-"+registered.ID {
		t.Fatalf("unexpected token %q", token)
	}
	if user.LastLogin == nil {
		t.Fatal("expected last login to be set")
	}
}

func TestAuthUseCaseAuthenticateIdenticalFailureMessages(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPassword := uc.Authenticate(ctx, "a@b.com", "bad")
	_, _, unknownEmail := uc.Authenticate(ctx, "nobody@b.com", "bad")
	if wrongPassword == nil || unknownEmail == nil {
		t.Fatal("expected both logins to fail")
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassword.Error(), unknownEmail.Error())
	}
	if !errors.Is(wrongPassword, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", wrongPassword)
	}
}

func TestAuthUseCaseAuthenticateMissingFields(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	_, _, err := uc.Authenticate(context.Background(), "", "")
	var ve *domainErrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["email"] == "" || ve.Fields["password"] == "" {
		t.Fatalf("expected both fields reported, got %v", ve.Fields)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	id, err := uc.ParseToken("token-user-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != "user-42" {
		t.Fatalf("expected id user-42, got %s", id)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, newStrategyStub())

	if _, _, err := uc.Register(context.Background(), validRegisterInput()); err == nil {
		t.Fatal("expected hasher error to propagate")
	}
	if len(repo.ByID) != 0 {
		t.Fatal("no user should be stored when hashing fails")
	}
}

func TestAuthUseCaseUserByID(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	registered, _, err := uc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	found, err := uc.UserByID(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("user by id failed: %v", err)
	}
	if found.Username != "alice1" {
		t.Fatalf("unexpected user %q", found.Username)
	}

	if _, err := uc.UserByID(context.Background(), "user-999"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
