package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agriconnect/agriconnect-backend/pkg/db/models"
	"github.com/agriconnect/agriconnect-backend/pkg/enums"
)

// Repository reads and writes catalog listings.
type Repository struct {
	conn *gorm.DB
}

func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{conn: conn}
}

// Create inserts a listing, assigning the id when the caller left it unset.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := r.conn.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

// ByID loads one listing. A missing id returns (nil, nil).
func (r *Repository) ByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.conn.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading product %s: %w", id, err)
	}
	return &product, nil
}

// All returns the whole catalog, newest listings first.
func (r *Repository) All(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := r.conn.WithContext(ctx).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return out, nil
}

// ByCategory filters the catalog to one category, newest first.
func (r *Repository) ByCategory(ctx context.Context, category enums.ProductCategory) ([]models.Product, error) {
	var out []models.Product
	err := r.conn.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing products by category %s: %w", category, err)
	}
	return out, nil
}

// ByFarmer returns the listings owned by one farmer, newest first.
func (r *Repository) ByFarmer(ctx context.Context, farmerID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	err := r.conn.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing products for farmer %s: %w", farmerID, err)
	}
	return out, nil
}

// Featured returns the highest rated listings up to limit.
func (r *Repository) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	var out []models.Product
	err := r.conn.WithContext(ctx).
		Order("rating DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing featured products: %w", err)
	}
	return out, nil
}

// Delete removes a listing owned by the farmer. It reports whether a row was
// actually deleted.
func (r *Repository) Delete(ctx context.Context, id, farmerID uuid.UUID) (bool, error) {
	res := r.conn.WithContext(ctx).
		Where("id = ? AND farmer_id = ?", id, farmerID).
		Delete(&models.Product{})
	if res.Error != nil {
		return false, fmt.Errorf("deleting product %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
