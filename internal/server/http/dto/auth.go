package dto

// RegisterRequest describes the registration payload. The canonical phone
// field is "phone"; the legacy client alias "mobile" is resolved before the
// payload reaches the server.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// LoginRequest describes the email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a fresh token together with the account it authorizes.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
