package users

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/agriconnect/agriconnect-backend/pkg/db/models"
	pkgerrors "github.com/agriconnect/agriconnect-backend/pkg/errors"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
)

// Service implements the profile operations.
type Service struct {
	repo     *Repository
	validate *validator.Validate
	logg     *logger.Logger
}

func NewService(repo *Repository, validate *validator.Validate, logg *logger.Logger) *Service {
	if validate == nil {
		validate = validator.New()
	}
	return &Service{repo: repo, validate: validate, logg: logg}
}

// Profile loads the user's own profile.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.ByID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading profile")
	}
	if user == nil || !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return user, nil
}

// UpdateProfile applies the patch and returns the fresh row.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*models.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid profile payload")
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		user.Address = strings.TrimSpace(*input.Address)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating profile")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID.String()), "profile updated")
	}
	return user, nil
}
