package auth

import (
	"github.com/agriconnect/agriconnect-backend/internal/users"
)

// RegisterInput creates a new account. Role defaults to buyer when omitted.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Role     string `json:"role" validate:"omitempty,oneof=buyer farmer"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Address  string `json:"address" validate:"omitempty,max=240"`
}

// LoginInput authenticates an existing account.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionView is returned by register and login.
type SessionView struct {
	Token string            `json:"token"`
	User  users.ProfileView `json:"user"`
}
