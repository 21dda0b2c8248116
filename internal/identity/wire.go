//go:build wireinject
// +build wireinject

package identity

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/duka-storefront/internal/identity/delivery/http"
	"github.com/tair/duka-storefront/internal/identity/domain"
	"github.com/tair/duka-storefront/internal/identity/repository"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.IdentityHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewIdentityHandler,
	)
	return nil, nil
}
