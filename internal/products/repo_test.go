package products

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/agriconnect/agriconnect-backend/pkg/db/models"
	"github.com/agriconnect/agriconnect-backend/pkg/enums"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  farmer_id TEXT NOT NULL,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  price INTEGER NOT NULL,
  image TEXT NOT NULL,
  category TEXT NOT NULL,
  farmer TEXT NOT NULL,
  rating REAL NOT NULL DEFAULT 0,
  unit TEXT NOT NULL DEFAULT 'per item',
  location TEXT NOT NULL DEFAULT 'Local Farm',
  badge TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func insertProduct(t *testing.T, repo *Repository, farmerID uuid.UUID, name string, category enums.ProductCategory, rating float64, createdAt time.Time) models.Product {
	t.Helper()
	product := models.Product{
		ID:          uuid.New(),
		FarmerID:    farmerID,
		Name:        name,
		Description: "test listing",
		Price:       100,
		Image:       "https://example.test/p.jpg",
		Category:    category,
		Farmer:      "Green Valley Farm",
		Rating:      rating,
		Unit:        "per kg",
		Location:    "Sylhet",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), &product))
	return product
}

func TestRepositoryAllReturnsNewestFirst(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	farmerID := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	insertProduct(t, repo, farmerID, "Old", enums.CategoryVegetables, 4.0, base)
	insertProduct(t, repo, farmerID, "New", enums.CategoryVegetables, 4.0, base.Add(time.Hour))

	rows, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "New", rows[0].Name)
	assert.Equal(t, "Old", rows[1].Name)
}

func TestRepositoryByCategoryFilters(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	farmerID := uuid.New()
	now := time.Now().UTC()

	insertProduct(t, repo, farmerID, "Tomatoes", enums.CategoryVegetables, 4.5, now)
	insertProduct(t, repo, farmerID, "Strawberries", enums.CategoryFruits, 4.9, now)

	rows, err := repo.ByCategory(context.Background(), enums.CategoryFruits)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Strawberries", rows[0].Name)
}

func TestRepositoryByFarmerScopesOwnership(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	mine := uuid.New()
	theirs := uuid.New()
	now := time.Now().UTC()

	insertProduct(t, repo, mine, "Mine", enums.CategoryVegetables, 4.0, now)
	insertProduct(t, repo, theirs, "Theirs", enums.CategoryVegetables, 4.0, now)

	rows, err := repo.ByFarmer(context.Background(), mine)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Mine", rows[0].Name)
}

func TestRepositoryFeaturedOrdersByRating(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	farmerID := uuid.New()
	now := time.Now().UTC()

	insertProduct(t, repo, farmerID, "Mid", enums.CategoryVegetables, 4.2, now)
	insertProduct(t, repo, farmerID, "Top", enums.CategoryFruits, 4.9, now)
	insertProduct(t, repo, farmerID, "Low", enums.CategoryVegetables, 3.1, now)

	rows, err := repo.Featured(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Top", rows[0].Name)
	assert.Equal(t, "Mid", rows[1].Name)
}

func TestRepositoryByIDMissingReturnsNil(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))

	product, err := repo.ByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestRepositoryDeleteEnforcesOwnership(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	owner := uuid.New()
	intruder := uuid.New()
	product := insertProduct(t, repo, owner, "Tomatoes", enums.CategoryVegetables, 4.5, time.Now().UTC())

	deleted, err := repo.Delete(context.Background(), product.ID, intruder)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete(context.Background(), product.ID, owner)
	require.NoError(t, err)
	assert.True(t, deleted)
}
