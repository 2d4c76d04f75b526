package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/solenik/userhub/internal/domain/errors"
	"github.com/solenik/userhub/internal/server/http/dto"
	"github.com/solenik/userhub/internal/usecase"
)

// conflictMessage keeps duplicate-key responses generic so they cannot be
// used to probe which exact field is taken.
const conflictMessage = "username or email already in use"

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Test handles GET /api/auth/test.
func (h *AuthHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API is working"})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		var ve *domainErrors.ValidationError
		switch {
		case errors.As(err, &ve):
			FailValidation(c, ve.Fields)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			Fail(c, http.StatusConflict, conflictMessage)
		default:
			InternalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: dto.NewUserResponse(*user)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var ve *domainErrors.ValidationError
		switch {
		case errors.As(err, &ve):
			FailValidation(c, ve.Fields)
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			Fail(c, http.StatusUnauthorized, "invalid credentials")
		default:
			InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.NewUserResponse(*user)})
}
