package test

import (
	"context"
	"errors"

	"github.com/solenik/userhub/internal/domain/model"
	pkgAuth "github.com/solenik/userhub/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenAuthenticatorStub implements the middleware authentication contract.
type TokenAuthenticatorStub struct {
	ID      string
	Err     error
	User    *model.User
	UserErr error
	ParseFn func(string) (string, error)
}

// ParseToken either delegates to override or returns the predefined result.
func (s TokenAuthenticatorStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.ID, nil
}

// UserByID resolves the authenticated subject to a user record.
func (s TokenAuthenticatorStub) UserByID(ctx context.Context, id string) (*model.User, error) {
	if s.UserErr != nil {
		return nil, s.UserErr
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{ID: id, Username: "stub"}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.TokenStrategy = StrategyStub{}
