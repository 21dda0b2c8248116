//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	carthttp "github.com/tair/duka-storefront/internal/cart/delivery/http"
	"github.com/tair/duka-storefront/internal/cart/repository"
	catalogdomain "github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/pkg/localstore"
)

// ProvideRegistry provides the per-session manager registry backed by the
// remote store for signed-in users and the device store for guests
func ProvideRegistry(client *redis.Client, store *localstore.Store) *Registry {
	return NewRegistry(repository.NewRedisStore(client), repository.NewLocalStore(store))
}

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(client *redis.Client, store *localstore.Store, catalogRepo catalogdomain.CatalogRepository) (*carthttp.CartHandler, error) {
	wire.Build(
		ProvideRegistry,
		carthttp.NewCartHandler,
	)
	return nil, nil
}
