package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agriconnect/agriconnect-backend/pkg/db/models"
)

// Repository reads and writes identity rows.
type Repository struct {
	conn *gorm.DB
}

func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{conn: conn}
}

// Create inserts a new user, assigning the id when the caller left it unset.
func (r *Repository) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if err := r.conn.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// ByID loads one user. A missing id returns (nil, nil).
func (r *Repository) ByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.conn.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading user %s: %w", id, err)
	}
	return &user, nil
}

// ByEmail loads one user by their lowercased email. A missing email returns
// (nil, nil).
func (r *Repository) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.conn.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading user by email: %w", err)
	}
	return &user, nil
}

// Update persists the full user row.
func (r *Repository) Update(ctx context.Context, user *models.User) error {
	if err := r.conn.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("updating user %s: %w", user.ID, err)
	}
	return nil
}

// TouchLastLogin records a successful login timestamp without rewriting the
// rest of the row.
func (r *Repository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.conn.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
	if err != nil {
		return fmt.Errorf("touching last login for %s: %w", id, err)
	}
	return nil
}
