package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solenik/userhub/internal/domain/model"
	"github.com/solenik/userhub/internal/server/http/middleware"
)

// errorBody is the JSON error envelope shared by all endpoints.
type errorBody struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Fail writes a client-error envelope.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, errorBody{Status: "fail", Message: message})
}

// FailValidation writes a 400 envelope carrying per-field messages.
func FailValidation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, errorBody{
		Status:  "fail",
		Message: "validation failed",
		Errors:  fields,
	})
}

// InternalError writes a sanitized 500 envelope. Details stay server-side.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, errorBody{Status: "error", Message: "something went wrong"})
}

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

// CurrentUser extracts the authenticated account record from context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}
