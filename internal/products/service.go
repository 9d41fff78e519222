package products

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/agriconnect/agriconnect-backend/pkg/db/models"
	"github.com/agriconnect/agriconnect-backend/pkg/enums"
	pkgerrors "github.com/agriconnect/agriconnect-backend/pkg/errors"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
)

const (
	defaultFeaturedLimit = 10
	maxFeaturedLimit     = 50
)

// Service implements the catalog operations on top of the repository.
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

// Farmer identifies the seller attaching a new listing.
type Farmer struct {
	ID   uuid.UUID
	Name string
}

// AddProduct validates and stores a new listing for the farmer.
func (s *Service) AddProduct(ctx context.Context, farmer Farmer, input AddProductInput) (*models.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)

	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product payload").
			WithDetails(validationDetails(err))
	}

	category := enums.ProductCategory(input.Category)
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product category").
			WithDetails(map[string]string{"category": input.Category})
	}
	badge, ok := parseBadge(input.Badge)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product badge").
			WithDetails(map[string]string{"badge": *input.Badge})
	}

	product := &models.Product{
		FarmerID:    farmer.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    category,
		Farmer:      farmer.Name,
		Unit:        defaultString(input.Unit, "per item"),
		Location:    defaultString(input.Location, "Local Farm"),
		Badge:       badge,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "storing product")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"product_id": product.ID.String(),
			"farmer_id":  farmer.ID.String(),
		}), "product created")
	}
	return product, nil
}

// Get loads one listing by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

// List returns the whole catalog, optionally filtered to one category.
func (s *Service) List(ctx context.Context, category string) ([]models.Product, error) {
	if category == "" {
		rows, err := s.repo.All(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
		}
		return nonNil(rows), nil
	}

	typed := enums.ProductCategory(category)
	if !typed.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product category").
			WithDetails(map[string]string{"category": category})
	}
	rows, err := s.repo.ByCategory(ctx, typed)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return nonNil(rows), nil
}

// ListByFarmer returns the farmer's own listings.
func (s *Service) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]models.Product, error) {
	rows, err := s.repo.ByFarmer(ctx, farmerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing farmer products")
	}
	return nonNil(rows), nil
}

// Featured returns the top rated listings for the home screen. A limit of
// zero or below falls back to the default page size; oversized requests are
// capped.
func (s *Service) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	if limit > maxFeaturedLimit {
		limit = maxFeaturedLimit
	}
	rows, err := s.repo.Featured(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing featured products")
	}
	return nonNil(rows), nil
}

// Delete removes the farmer's listing. Deleting someone else's listing, or a
// missing one, yields not found.
func (s *Service) Delete(ctx context.Context, id, farmerID uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id, farmerID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func nonNil(rows []models.Product) []models.Product {
	if rows == nil {
		return []models.Product{}
	}
	return rows
}

func validationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !stdErrors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
