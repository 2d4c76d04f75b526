package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTStrategy implements TokenStrategy with HS256 signed JWTs. Verification
// fails closed: any malformed, unsigned or tampered token yields
// ErrInvalidToken, an outdated one ErrTokenExpired.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed token for the user, expiring after the
// configured TTL.
func (s *JWTStrategy) IssueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	return token.SignedString(s.secret)
}

// ParseToken validates token signature and expiry and returns the subject.
func (s *JWTStrategy) ParseToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt-hs256"
}
