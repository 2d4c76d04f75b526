package auth

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid auth token")
	ErrTokenExpired = errors.New("auth token expired")
)

// TokenStrategy issues and verifies bearer tokens carrying a user identity.
type TokenStrategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
