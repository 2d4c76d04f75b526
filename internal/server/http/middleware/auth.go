package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/solenik/userhub/internal/domain/errors"
	"github.com/solenik/userhub/internal/domain/model"
	pkgAuth "github.com/solenik/userhub/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for the authenticated user identifier.
	UserIDContextKey = "userID"
	// UserContextKey is a gin context key for the resolved account record.
	UserContextKey = "user"
)

// Authenticator verifies bearer tokens and resolves their subject to a live
// account record.
type Authenticator interface {
	ParseToken(token string) (string, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
}

// AuthRequired ensures the request carries a valid bearer token for an
// existing account before the handler runs. Missing, invalid and expired
// tokens all produce the same 401 body.
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := auth.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) || errors.Is(err, pkgAuth.ErrTokenExpired) {
				abortUnauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "something went wrong",
			})
			return
		}

		user, err := auth.UserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				abortUnauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "something went wrong",
			})
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Set(UserContextKey, user)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "fail",
		"message": "authentication required",
	})
}
