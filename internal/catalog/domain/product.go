package domain

import (
	"errors"
	"time"
)

// ErrProductNotFound signals an explicit absence result on single-product lookup
var ErrProductNotFound = errors.New("product not found")

// Discount is an optional promotion attached to a product. The product price
// is assumed to already be the discounted price; OriginalPrice on the product
// holds the pre-discount value for display only.
type Discount struct {
	Percentage int       `json:"percentage"`
	EndDate    time.Time `json:"end_date"`
	IsActive   bool      `json:"is_active"`
}

// Product represents a catalog entry
type Product struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Brand         string    `json:"brand"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" gorm:"not null"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	Discount      *Discount `json:"discount,omitempty" gorm:"serializer:json"`
	Image         string    `json:"image"`
	Images        []string  `json:"images" gorm:"serializer:json"`
	Category      string    `json:"category" gorm:"index"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	InStock       bool      `json:"in_stock"`
	Features      []string  `json:"features" gorm:"serializer:json"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// HasActiveDiscount reports whether the product carries a discount that is
// flagged active and has not yet expired
func (p *Product) HasActiveDiscount(now time.Time) bool {
	return p.Discount != nil && p.Discount.IsActive && p.Discount.EndDate.After(now)
}

// Category represents a catalog category. Count is denormalized and is not
// recomputed from actual product membership.
type Category struct {
	ID    string `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CatalogRepository defines the contract for catalog data access
type CatalogRepository interface {
	ListProducts() ([]Product, error)
	FindProduct(id string) (*Product, error)
	CreateProduct(product *Product) error
	UpdateProduct(product *Product) error
	DeleteProduct(id string) error
	CountProducts() (int64, error)

	ListCategories() ([]Category, error)
	CreateCategory(category *Category) error
	UpdateCategory(category *Category) error
	DeleteCategory(id string) error
}
