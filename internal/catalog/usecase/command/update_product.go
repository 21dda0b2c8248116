package command

import (
	"fmt"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update an existing product.
// Zero-valued optional fields leave the stored value unchanged.
type UpdateProductCommand struct {
	ID            string
	Name          string
	Brand         string
	Description   string
	Price         *float64
	OriginalPrice *float64
	Discount      *domain.Discount
	Image         string
	Images        []string
	Category      string
	Rating        *float64
	Reviews       *int
	InStock       *bool
	Features      []string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.CatalogRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.CatalogRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.repo.FindProduct(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		product.Name = cmd.Name
	}
	if cmd.Brand != "" {
		product.Brand = cmd.Brand
	}
	if cmd.Description != "" {
		product.Description = cmd.Description
	}
	if cmd.Price != nil {
		if *cmd.Price < 0 {
			return nil, fmt.Errorf("price cannot be negative")
		}
		product.Price = *cmd.Price
	}
	if cmd.OriginalPrice != nil {
		product.OriginalPrice = cmd.OriginalPrice
	}
	if cmd.Discount != nil {
		if cmd.Discount.Percentage <= 0 || cmd.Discount.Percentage > 100 {
			return nil, fmt.Errorf("discount percentage must be in (0, 100]")
		}
		product.Discount = cmd.Discount
	}
	if cmd.Image != "" {
		product.Image = cmd.Image
	}
	if cmd.Images != nil {
		product.Images = cmd.Images
	}
	if cmd.Category != "" {
		product.Category = cmd.Category
	}
	if cmd.Rating != nil {
		if *cmd.Rating < 0 || *cmd.Rating > 5 {
			return nil, fmt.Errorf("rating must be between 0 and 5")
		}
		product.Rating = *cmd.Rating
	}
	if cmd.Reviews != nil {
		product.Reviews = *cmd.Reviews
	}
	if cmd.InStock != nil {
		product.InStock = *cmd.InStock
	}
	if cmd.Features != nil {
		product.Features = cmd.Features
	}

	if err := h.repo.UpdateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
