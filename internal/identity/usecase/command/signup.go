package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/tair/duka-storefront/internal/identity/domain"
	"github.com/tair/duka-storefront/pkg/auth"
)

// SignupCommand represents the command to create a shopper account
type SignupCommand struct {
	Email    string
	Password string
	Name     string
	Role     string // Optional, defaults to "user"
}

// AuthResponse is returned after a successful signup or login
type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// SignupHandler handles account creation command
type SignupHandler struct {
	repo domain.UserRepository
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(repo domain.UserRepository) *SignupHandler {
	return &SignupHandler{repo: repo}
}

// Handle executes the signup command
func (h *SignupHandler) Handle(cmd SignupCommand) (*AuthResponse, error) {
	// Validation
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(cmd.Email, "@") {
		return nil, fmt.Errorf("invalid email")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	// Check if user already exists
	if existingUser, _ := h.repo.FindByEmail(cmd.Email); existingUser != nil {
		return nil, fmt.Errorf("email already exists")
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Set default role if not provided
	role := cmd.Role
	if role == "" {
		role = domain.RoleUser
	}
	// Validate role
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, fmt.Errorf("invalid role")
	}

	user := &domain.User{
		Email:     cmd.Email,
		Password:  hashedPassword,
		Name:      cmd.Name,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
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
