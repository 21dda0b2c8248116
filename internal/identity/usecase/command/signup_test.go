package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/duka-storefront/internal/identity/domain"
	"github.com/tair/duka-storefront/pkg/auth"
)

// fakeUserRepository is an in-memory user repository
type fakeUserRepository struct {
	users  map[string]*domain.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*domain.User), nextID: 1}
}

func (r *fakeUserRepository) Create(user *domain.User) error {
	if _, exists := r.users[user.Email]; exists {
		return fmt.Errorf("duplicate email")
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepository) FindByID(id uint) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (r *fakeUserRepository) FindByEmail(email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (r *fakeUserRepository) Update(user *domain.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepository) Count() (int64, error) {
	return int64(len(r.users)), nil
}

func TestSignup_CreatesUserWithToken(t *testing.T) {
	repo := newFakeUserRepository()
	h := NewSignupHandler(repo)

	resp, err := h.Handle(SignupCommand{
		Email:    "jane@example.com",
		Password: "secret123",
		Name:     "Jane",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, domain.RoleUser, resp.User.Role)

	// Password is stored hashed
	assert.NotEqual(t, "secret123", resp.User.Password)
	assert.True(t, auth.CheckPassword(resp.User.Password, "secret123"))

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestSignup_Validation(t *testing.T) {
	h := NewSignupHandler(newFakeUserRepository())

	cases := []struct {
		name string
		cmd  SignupCommand
	}{
		{"missing email", SignupCommand{Password: "secret123", Name: "Jane"}},
		{"invalid email", SignupCommand{Email: "not-an-email", Password: "secret123", Name: "Jane"}},
		{"short password", SignupCommand{Email: "jane@example.com", Password: "abc", Name: "Jane"}},
		{"missing name", SignupCommand{Email: "jane@example.com", Password: "secret123"}},
		{"bad role", SignupCommand{Email: "jane@example.com", Password: "secret123", Name: "Jane", Role: "root"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.Handle(tc.cmd)
			assert.Error(t, err)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	h := NewSignupHandler(repo)

	cmd := SignupCommand{Email: "jane@example.com", Password: "secret123", Name: "Jane"}
	_, err := h.Handle(cmd)
	require.NoError(t, err)

	_, err = h.Handle(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already exists")
}

func TestLogin_RoundTrip(t *testing.T) {
	repo := newFakeUserRepository()
	signup := NewSignupHandler(repo)
	login := NewLoginHandler(repo)

	_, err := signup.Handle(SignupCommand{Email: "jane@example.com", Password: "secret123", Name: "Jane"})
	require.NoError(t, err)

	resp, err := login.Handle(LoginCommand{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Jane", resp.User.Name)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newFakeUserRepository()
	signup := NewSignupHandler(repo)
	login := NewLoginHandler(repo)

	_, err := signup.Handle(SignupCommand{Email: "jane@example.com", Password: "secret123", Name: "Jane"})
	require.NoError(t, err)

	// Wrong password and unknown email report the same error
	_, err = login.Handle(LoginCommand{Email: "jane@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())

	_, err = login.Handle(LoginCommand{Email: "nobody@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestLogin_MissingNameFallsBack(t *testing.T) {
	repo := newFakeUserRepository()
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, repo.Create(&domain.User{Email: "old@example.com", Password: hashed, Role: domain.RoleUser}))

	login := NewLoginHandler(repo)
	resp, err := login.Handle(LoginCommand{Email: "old@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "User", resp.User.Name)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepository()
	signup := NewSignupHandler(repo)
	resp, err := signup.Handle(SignupCommand{Email: "jane@example.com", Password: "secret123", Name: "Jane"})
	require.NoError(t, err)

	avatar := "https://example.com/avatar.png"
	update := NewUpdateProfileHandler(repo)
	user, err := update.Handle(UpdateProfileCommand{ID: resp.User.ID, Name: "Jane Doe", Avatar: &avatar})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", user.Name)
	require.NotNil(t, user.Avatar)
	assert.Equal(t, avatar, *user.Avatar)

	// Empty fields leave the stored value unchanged
	user, err = update.Handle(UpdateProfileCommand{ID: resp.User.ID})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)
}
