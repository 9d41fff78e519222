package users

import (
	"github.com/agriconnect/agriconnect-backend/pkg/db/models"
)

// ProfileView is the API shape of a user profile. The password hash never
// leaves the service layer.
type ProfileView struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// NewProfileView converts the storage row to its API shape.
func NewProfileView(user models.User) ProfileView {
	return ProfileView{
		ID:      user.ID.String(),
		Email:   user.Email,
		Name:    user.Name,
		Role:    string(user.Role),
		Phone:   user.Phone,
		Address: user.Address,
	}
}

// UpdateProfileInput patches the mutable profile fields. Nil pointers leave a
// field untouched.
type UpdateProfileInput struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=120"`
	Phone   *string `json:"phone" validate:"omitempty,max=32"`
	Address *string `json:"address" validate:"omitempty,max=240"`
}
