package command

import (
	"fmt"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

// SaveCategoryCommand creates a category or replaces an existing one by id
type SaveCategoryCommand struct {
	ID    string
	Name  string
	Icon  string
	Count int
}

// SaveCategoryHandler handles category create/update command
type SaveCategoryHandler struct {
	repo domain.CatalogRepository
}

// NewSaveCategoryHandler creates a new save category handler
func NewSaveCategoryHandler(repo domain.CatalogRepository) *SaveCategoryHandler {
	return &SaveCategoryHandler{repo: repo}
}

// Handle executes the save category command
func (h *SaveCategoryHandler) Handle(cmd SaveCategoryCommand) (*domain.Category, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("invalid category id")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	category := &domain.Category{
		ID:    cmd.ID,
		Name:  cmd.Name,
		Icon:  string(domain.ResolveIcon(cmd.Icon)),
		Count: cmd.Count,
	}

	existing, err := h.repo.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	for _, c := range existing {
		if c.ID == cmd.ID {
			if err := h.repo.UpdateCategory(category); err != nil {
				return nil, fmt.Errorf("failed to update category: %w", err)
			}
			return category, nil
		}
	}

	if err := h.repo.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}
