package command

import (
	"fmt"
	"time"

	"github.com/tair/duka-storefront/internal/identity/domain"
)

// UpdateProfileCommand represents the command to update a shopper profile.
// Zero-valued fields leave the stored value unchanged.
type UpdateProfileCommand struct {
	ID     uint
	Name   string
	Avatar *string
}

// UpdateProfileHandler handles profile update command
type UpdateProfileHandler struct {
	repo domain.UserRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.UserRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

// Handle executes the update profile command
func (h *UpdateProfileHandler) Handle(cmd UpdateProfileCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		user.Name = cmd.Name
	}
	if cmd.Avatar != nil {
		user.Avatar = cmd.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}
