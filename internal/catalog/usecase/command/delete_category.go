package command

import (
	"fmt"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	ID string
}

// DeleteCategoryHandler handles category deletion command
type DeleteCategoryHandler struct {
	repo domain.CatalogRepository
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(repo domain.CatalogRepository) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{repo: repo}
}

// Handle executes the delete category command
func (h *DeleteCategoryHandler) Handle(cmd DeleteCategoryCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("invalid category id")
	}
	if err := h.repo.DeleteCategory(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
