package products

import (
	"github.com/agriconnect/agriconnect-backend/internal/i18n"
	"github.com/agriconnect/agriconnect-backend/pkg/db/models"
	"github.com/agriconnect/agriconnect-backend/pkg/enums"
)

// AddProductInput is the farmer-facing creation payload.
type AddProductInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description string  `json:"description" validate:"max=2000"`
	Price       int     `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image" validate:"omitempty,url"`
	Category    string  `json:"category" validate:"required"`
	Unit        string  `json:"unit" validate:"max=40"`
	Location    string  `json:"location" validate:"max=120"`
	Badge       *string `json:"badge" validate:"omitempty"`
}

// ProductView is the API shape of one listing. Name and Description are
// localized for the request language; CanonicalName keeps the untranslated
// catalog key so clients can re-resolve after a language switch.
type ProductView struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CanonicalName string  `json:"canonicalName"`
	Description   string  `json:"description"`
	Price         int     `json:"price"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Farmer        string  `json:"farmer"`
	Rating        float64 `json:"rating"`
	Unit          string  `json:"unit"`
	Location      string  `json:"location"`
	Badge         *string `json:"badge,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// NewProductView localizes one catalog row for the given language. Unknown
// catalog names fall back to the stored name and a generic description.
func NewProductView(product models.Product, lang i18n.Language) ProductView {
	var badge *string
	if product.Badge != nil {
		b := string(*product.Badge)
		badge = &b
	}

	description := i18n.ProductDescriptionIn(lang, product.Name)
	if _, known := i18n.HasProductTranslation(product.Name); !known && product.Description != "" {
		description = product.Description
	}

	return ProductView{
		ID:            product.ID.String(),
		Name:          i18n.ProductNameIn(lang, product.Name),
		CanonicalName: product.Name,
		Description:   description,
		Price:         product.Price,
		Image:         product.Image,
		Category:      string(product.Category),
		Farmer:        product.Farmer,
		Rating:        product.Rating,
		Unit:          product.Unit,
		Location:      product.Location,
		Badge:         badge,
		CreatedAt:     product.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// NewProductViews localizes a slice, always returning a non-nil slice so the
// JSON encoding is [] rather than null.
func NewProductViews(rows []models.Product, lang i18n.Language) []ProductView {
	out := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		out = append(out, NewProductView(row, lang))
	}
	return out
}

func parseBadge(raw *string) (*enums.ProductBadge, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	badge := enums.ProductBadge(*raw)
	if !badge.IsValid() {
		return nil, false
	}
	return &badge, true
}
