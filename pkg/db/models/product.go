package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/agriconnect/agriconnect-backend/pkg/enums"
)

// Product represents the canonical catalog listing. Name is the untranslated
// catalog-of-record string used as the translation lookup key.
type Product struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	FarmerID    uuid.UUID             `gorm:"column:farmer_id;type:uuid;not null;index"`
	Name        string                `gorm:"column:name;not null"`
	Description string                `gorm:"column:description;not null"`
	Price       int                   `gorm:"column:price;not null"`
	Image       string                `gorm:"column:image;not null"`
	Category    enums.ProductCategory `gorm:"column:category;not null;index"`
	Farmer      string                `gorm:"column:farmer;not null"`
	Rating      float64               `gorm:"column:rating;not null;default:0"`
	Unit        string                `gorm:"column:unit;not null;default:'per item'"`
	Location    string                `gorm:"column:location;not null;default:'Local Farm'"`
	Badge       *enums.ProductBadge   `gorm:"column:badge"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
