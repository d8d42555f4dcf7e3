package models

import (
	"time"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RegisterRequest is the request body for account creation
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for authentication
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after a successful register or login
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdateProfileRequest updates the profile name and optionally the password.
// When NewPassword is set, CurrentPassword must match the stored hash and
// ConfirmPassword must equal NewPassword.
type UpdateProfileRequest struct {
	Name            *string `json:"name,omitempty"`
	CurrentPassword string  `json:"currentPassword,omitempty"`
	NewPassword     string  `json:"newPassword,omitempty"`
	ConfirmPassword string  `json:"confirmPassword,omitempty"`
}

// UserStats summarizes a user's activity for the profile page
type UserStats struct {
	TotalHouses    int `json:"totalHouses"`
	TotalFavorites int `json:"totalFavorites"`
}
