package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/agriconnect/agriconnect-backend/api/responses"
	"github.com/agriconnect/agriconnect-backend/api/validators"
	"github.com/agriconnect/agriconnect-backend/internal/users"
	"github.com/agriconnect/agriconnect-backend/pkg/db/models"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
)

type profileLoader interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

func UserProfile(svc *users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		user, err := svc.Profile(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, users.NewProfileView(*user))
	}
}

func UserUpdateProfile(svc *users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var input users.UpdateProfileInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		user, err := svc.UpdateProfile(r.Context(), userID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, users.NewProfileView(*user))
	}
}
