package products

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconnect/agriconnect-backend/internal/i18n"
	"github.com/agriconnect/agriconnect-backend/pkg/enums"
	pkgerrors "github.com/agriconnect/agriconnect-backend/pkg/errors"
)

func testTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
}

func TestAddProductRejectsUnknownCategory(t *testing.T) {
	svc := NewService(NewRepository(setupProductsTestDB(t)), nil, nil)

	_, err := svc.AddProduct(context.Background(), Farmer{ID: uuid.New(), Name: "Rahim"}, AddProductInput{
		Name:     "Dragon Fruit",
		Price:    250,
		Category: "Exotic",
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestAddProductRejectsNonPositivePrice(t *testing.T) {
	svc := NewService(NewRepository(setupProductsTestDB(t)), nil, nil)

	_, err := svc.AddProduct(context.Background(), Farmer{ID: uuid.New(), Name: "Rahim"}, AddProductInput{
		Name:     "Dragon Fruit",
		Price:    0,
		Category: "Fruits",
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestAddProductFillsDefaultsAndOwner(t *testing.T) {
	svc := NewService(NewRepository(setupProductsTestDB(t)), nil, nil)
	farmer := Farmer{ID: uuid.New(), Name: "Rahim"}

	product, err := svc.AddProduct(context.Background(), farmer, AddProductInput{
		Name:     "Dragon Fruit",
		Price:    250,
		Category: "Fruits",
	})
	require.NoError(t, err)
	assert.Equal(t, farmer.ID, product.FarmerID)
	assert.Equal(t, "Rahim", product.Farmer)
	assert.Equal(t, "per item", product.Unit)
	assert.Equal(t, "Local Farm", product.Location)
}

func TestListRejectsUnknownCategory(t *testing.T) {
	svc := NewService(NewRepository(setupProductsTestDB(t)), nil, nil)

	_, err := svc.List(context.Background(), "Exotic")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	svc := NewService(NewRepository(setupProductsTestDB(t)), nil, nil)

	rows, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestFeaturedHonorsRequestedLimit(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	svc := NewService(repo, nil, nil)
	farmerID := uuid.New()
	now := time.Now().UTC()

	insertProduct(t, repo, farmerID, "Top", enums.CategoryFruits, 4.9, now)
	insertProduct(t, repo, farmerID, "Mid", enums.CategoryVegetables, 4.2, now)
	insertProduct(t, repo, farmerID, "Low", enums.CategoryVegetables, 3.1, now)

	rows, err := svc.Featured(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Top", rows[0].Name)
	assert.Equal(t, "Mid", rows[1].Name)

	all, err := svc.Featured(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestProductViewLocalizesKnownCatalogNames(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	product := insertProduct(t, repo, uuid.New(), "Sweet Corn", "Vegetables", 4.8, testTime(t))

	view := NewProductView(product, i18n.LangBangla)
	assert.Equal(t, "ভুট্টা", view.Name)
	assert.Equal(t, "Sweet Corn", view.CanonicalName)

	enView := NewProductView(product, i18n.LangEnglish)
	assert.Equal(t, "Corn", enView.Name)
}

func TestProductViewUnknownNameKeepsStoredFields(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	product := insertProduct(t, repo, uuid.New(), "Dragon Fruit", "Fruits", 4.0, testTime(t))

	view := NewProductView(product, i18n.LangBangla)
	assert.Equal(t, "Dragon Fruit", view.Name)
	assert.Equal(t, "test listing", view.Description)
}
