package dto

import (
	"time"

	"github.com/solenik/userhub/internal/domain/model"
)

// UserResponse is the client-facing account projection. The password hash
// deliberately has no field here.
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName"`
	Phone     string     `json:"phone"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// NewUserResponse projects a user model for serialization.
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// NewUserResponses projects a slice of user models.
func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// UpdateUserRequest is a partial profile update; absent fields stay untouched.
type UpdateUserRequest struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}
