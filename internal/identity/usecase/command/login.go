package command

import (
	"fmt"

	"github.com/tair/duka-storefront/internal/identity/domain"
	"github.com/tair/duka-storefront/pkg/auth"
)

// LoginCommand represents the command to login a shopper
type LoginCommand struct {
	Email    string
	Password string
}

// LoginHandler handles login command
type LoginHandler struct {
	repo domain.UserRepository
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(repo domain.UserRepository) *LoginHandler {
	return &LoginHandler{repo: repo}
}

// Handle executes the login command
func (h *LoginHandler) Handle(cmd LoginCommand) (*AuthResponse, error) {
	// Validation
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	// Find user by email
	user, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	// Verify password
	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	// Profiles created before the name became mandatory may lack one
	if user.Name == "" {
		user.Name = "User"
	}

	// Generate JWT token
	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User:  user,
	}, nil
}
