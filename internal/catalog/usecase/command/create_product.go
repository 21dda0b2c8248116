package command

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	ID            string
	Name          string
	Brand         string
	Description   string
	Price         float64
	OriginalPrice *float64
	Discount      *domain.Discount
	Image         string
	Images        []string
	Category      string
	Rating        float64
	Reviews       int
	InStock       bool
	Features      []string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.CatalogRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.CatalogRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.Rating < 0 || cmd.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 0 and 5")
	}
	if cmd.Discount != nil && (cmd.Discount.Percentage <= 0 || cmd.Discount.Percentage > 100) {
		return nil, fmt.Errorf("discount percentage must be in (0, 100]")
	}

	id := cmd.ID
	if id == "" {
		id = uuid.NewString()
	}

	product := &domain.Product{
		ID:            id,
		Name:          cmd.Name,
		Brand:         cmd.Brand,
		Description:   cmd.Description,
		Price:         cmd.Price,
		OriginalPrice: cmd.OriginalPrice,
		Discount:      cmd.Discount,
		Image:         cmd.Image,
		Images:        cmd.Images,
		Category:      cmd.Category,
		Rating:        cmd.Rating,
		Reviews:       cmd.Reviews,
		InStock:       cmd.InStock,
		Features:      cmd.Features,
	}

	if err := h.repo.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
