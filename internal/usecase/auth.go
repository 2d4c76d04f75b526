package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/solenik/userhub/internal/domain/errors"
	"github.com/solenik/userhub/internal/domain/model"
	"github.com/solenik/userhub/internal/domain/repository"
	pkgAuth "github.com/solenik/userhub/internal/pkg/auth"
	"github.com/solenik/userhub/internal/pkg/validate"
)

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
}

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.TokenStrategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.TokenStrategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register validates the payload, creates the account and returns it with a
// fresh auth token. Uniqueness is left to the store: a concurrent duplicate
// surfaces as ErrAlreadyExists from Create, never as a pre-check race.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)

	fieldErrs := validate.Fields(map[string]string{
		"username": in.Username,
		"email":    in.Email,
		"password": in.Password,
		"fullName": in.FullName,
		"phone":    in.Phone,
	})
	if len(fieldErrs) > 0 {
		return nil, "", domainErrors.NewValidationError(fieldErrs)
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, repository.NewUser{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Phone:        in.Phone,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns the account with a fresh
// auth token. A missing account and a wrong password produce the same
// ErrInvalidCredentials so responses cannot be used to enumerate accounts.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		fields := make(map[string]string)
		if email == "" {
			fields["email"] = "Email is required"
		}
		if password == "" {
			fields["password"] = "Password is required"
		}
		return nil, "", domainErrors.NewValidationError(fields)
	}

	usr, err := u.users.GetByIdentifier(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := u.users.TouchLastLogin(ctx, usr.ID, now); err != nil {
		return nil, "", err
	}
	usr.LastLogin = &now

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// UserByID fetches user by identifier.
func (u *AuthUseCase) UserByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
