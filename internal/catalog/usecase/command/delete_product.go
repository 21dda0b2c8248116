package command

import (
	"fmt"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

// DeleteProductCommand represents the command to delete a product. Carts and
// wishlists keep their snapshots; deletion does not cascade.
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo domain.CatalogRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.CatalogRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("invalid product id")
	}

	if _, err := h.repo.FindProduct(cmd.ID); err != nil {
		return err
	}

	if err := h.repo.DeleteProduct(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
