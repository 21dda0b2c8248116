package wishlist

import (
	"context"
	"sync"

	"github.com/tair/duka-storefront/internal/session"
	"github.com/tair/duka-storefront/internal/wishlist/domain"
)

// Registry hands out one manager per session key. Managers are created
// lazily and loaded on first use.
type Registry struct {
	mu       sync.Mutex
	managers map[string]*Manager
	remote   domain.Store
	local    domain.Store
}

// NewRegistry creates a registry backed by the given stores
func NewRegistry(remote, local domain.Store) *Registry {
	return &Registry{
		managers: make(map[string]*Manager),
		remote:   remote,
		local:    local,
	}
}

// Manager returns the loaded manager for the session, creating it on first
// use
func (r *Registry) Manager(ctx context.Context, sess session.Session) (*Manager, error) {
	r.mu.Lock()
	m, ok := r.managers[sess.Key]
	if !ok {
		m = NewManager(sess, r.remote, r.local)
		r.managers[sess.Key] = m
	}
	r.mu.Unlock()

	if err := m.Load(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Evict drops the manager for the session key, forcing a reload on next use
func (r *Registry) Evict(sessionKey string) {
	r.mu.Lock()
	delete(r.managers, sessionKey)
	r.mu.Unlock()
}
