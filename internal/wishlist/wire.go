//go:build wireinject
// +build wireinject

package wishlist

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	catalogdomain "github.com/tair/duka-storefront/internal/catalog/domain"
	wishlisthttp "github.com/tair/duka-storefront/internal/wishlist/delivery/http"
	"github.com/tair/duka-storefront/internal/wishlist/repository"
	"github.com/tair/duka-storefront/pkg/localstore"
)

// ProvideRegistry provides the per-session manager registry backed by the
// remote store for signed-in users and the device store for guests
func ProvideRegistry(client *redis.Client, store *localstore.Store) *Registry {
	return NewRegistry(repository.NewRedisStore(client), repository.NewLocalStore(store))
}

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(client *redis.Client, store *localstore.Store, catalogRepo catalogdomain.CatalogRepository) (*wishlisthttp.WishlistHandler, error) {
	wire.Build(
		ProvideRegistry,
		wishlisthttp.NewWishlistHandler,
	)
	return nil, nil
}
