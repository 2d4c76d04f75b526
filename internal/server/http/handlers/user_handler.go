package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/solenik/userhub/internal/domain/errors"
	"github.com/solenik/userhub/internal/server/http/dto"
	"github.com/solenik/userhub/internal/usecase"
)

// UserHandler serves account listing and profile endpoints.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		InternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"users": dto.NewUserResponses(users)},
	})
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.facade.User(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			Fail(c, http.StatusNotFound, "user not found")
			return
		}
		InternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": dto.NewUserResponse(*user)},
	})
}

// Update handles PATCH /api/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), c.Param("id"), usecase.UpdateInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		var ve *domainErrors.ValidationError
		switch {
		case errors.As(err, &ve):
			FailValidation(c, ve.Fields)
		case errors.Is(err, domainErrors.ErrNotFound):
			Fail(c, http.StatusNotFound, "user not found")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			Fail(c, http.StatusConflict, conflictMessage)
		default:
			InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": dto.NewUserResponse(*user)},
	})
}
