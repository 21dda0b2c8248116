package query

import (
	"github.com/tair/duka-storefront/internal/identity/domain"
)

// GetProfileQuery represents the query to get a shopper profile by ID
type GetProfileQuery struct {
	ID uint
}

// GetProfileHandler handles get profile query
type GetProfileHandler struct {
	repo domain.UserRepository
}

// NewGetProfileHandler creates a new get profile handler
func NewGetProfileHandler(repo domain.UserRepository) *GetProfileHandler {
	return &GetProfileHandler{repo: repo}
}

// Handle executes the get profile query
func (h *GetProfileHandler) Handle(query GetProfileQuery) (*domain.User, error) {
	return h.repo.FindByID(query.ID)
}
