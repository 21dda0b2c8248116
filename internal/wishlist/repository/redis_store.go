package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	catalog "github.com/tair/duka-storefront/internal/catalog/domain"
)

// wishlistDocument is the persisted shape of a wishlist. The whole document
// is written on every save; the last writer wins.
type wishlistDocument struct {
	Products  []catalog.Product `json:"products"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// RedisStore keeps one wishlist document per signed-in user
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a redis-backed wishlist store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func wishlistKey(owner string) string {
	return "wishlist:" + owner
}

// Fetch loads the wishlist document for the owner
func (s *RedisStore) Fetch(ctx context.Context, owner string) ([]catalog.Product, bool, error) {
	data, err := s.client.Get(ctx, wishlistKey(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch wishlist: %w", err)
	}

	var doc wishlistDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("failed to decode wishlist document: %w", err)
	}
	return doc.Products, true, nil
}

// Save replaces the wishlist document for the owner
func (s *RedisStore) Save(ctx context.Context, owner string, products []catalog.Product) error {
	doc := wishlistDocument{Products: products, UpdatedAt: time.Now()}
	if doc.Products == nil {
		doc.Products = []catalog.Product{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode wishlist document: %w", err)
	}
	if err := s.client.Set(ctx, wishlistKey(owner), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save wishlist: %w", err)
	}
	return nil
}

// Delete removes the wishlist document for the owner
func (s *RedisStore) Delete(ctx context.Context, owner string) error {
	if err := s.client.Del(ctx, wishlistKey(owner)).Err(); err != nil {
		return fmt.Errorf("failed to delete wishlist: %w", err)
	}
	return nil
}
