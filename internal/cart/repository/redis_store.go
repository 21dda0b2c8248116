package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/duka-storefront/internal/cart/domain"
)

// cartDocument is the persisted shape of a cart. The whole document is
// written on every save; the last writer wins.
type cartDocument struct {
	Items     []domain.CartItem `json:"items"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// RedisStore keeps one cart document per signed-in user
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a redis-backed cart store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(owner string) string {
	return "cart:" + owner
}

// Fetch loads the cart document for the owner
func (s *RedisStore) Fetch(ctx context.Context, owner string) ([]domain.CartItem, bool, error) {
	data, err := s.client.Get(ctx, cartKey(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch cart: %w", err)
	}

	var doc cartDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("failed to decode cart document: %w", err)
	}
	return doc.Items, true, nil
}

// Save replaces the cart document for the owner
func (s *RedisStore) Save(ctx context.Context, owner string, items []domain.CartItem) error {
	doc := cartDocument{Items: items, UpdatedAt: time.Now()}
	if doc.Items == nil {
		doc.Items = []domain.CartItem{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode cart document: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(owner), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete removes the cart document for the owner
func (s *RedisStore) Delete(ctx context.Context, owner string) error {
	if err := s.client.Del(ctx, cartKey(owner)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
