package model

import "time"

// User represents a registered account holder.
type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    *time.Time
}
