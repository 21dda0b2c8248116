package wishlist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	catalog "github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/internal/session"
	"github.com/tair/duka-storefront/internal/wishlist/domain"
	"github.com/tair/duka-storefront/pkg/logger"
)

// ErrNotReady is returned for mutations attempted before the wishlist has
// been loaded from its store
var ErrNotReady = errors.New("wishlist is not ready")

// State is the wishlist lifecycle state
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

// Manager owns one wishlist and keeps it in sync with its backing store.
// Signed-in sessions persist to the remote store, anonymous sessions to the
// per-device store. Writes are whole-document, last writer wins.
type Manager struct {
	mu       sync.Mutex
	state    State
	syncing  bool
	dirty    bool
	deleted  bool
	wishlist *domain.Wishlist
	session  session.Session
	remote   domain.Store
	local    domain.Store
}

// NewManager creates an unloaded manager for the session
func NewManager(sess session.Session, remote, local domain.Store) *Manager {
	return &Manager{
		state:    StateUninitialized,
		wishlist: domain.NewWishlist(),
		session:  sess,
		remote:   remote,
		local:    local,
	}
}

func (m *Manager) activeStore() domain.Store {
	if m.session.Authenticated {
		return m.remote
	}
	return m.local
}

// Load populates the wishlist from its store. For signed-in sessions a
// present remote document replaces the in-memory wishlist even when it is
// empty; a missing or unreadable remote document falls back to the
// per-device store. Load never writes.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateUninitialized {
		m.mu.Unlock()
		return nil
	}
	m.state = StateLoading
	m.mu.Unlock()

	products, found, err := m.activeStore().Fetch(ctx, m.session.Key)
	if m.session.Authenticated && (err != nil || !found) {
		if err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("owner", m.session.Key).
				Msg("Remote wishlist unreadable, falling back to device store")
		}
		products, found, err = m.local.Fetch(ctx, m.session.Key)
	}
	if err != nil {
		m.mu.Lock()
		m.state = StateUninitialized
		m.mu.Unlock()
		return fmt.Errorf("failed to load wishlist: %w", err)
	}

	m.mu.Lock()
	if found {
		m.wishlist = domain.Restore(products)
	}
	m.state = StateReady
	m.mu.Unlock()
	return nil
}

// Add puts a product on the wishlist and schedules a write-back. Adding a
// product already present is a no-op.
func (m *Manager) Add(ctx context.Context, product catalog.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReady {
		return ErrNotReady
	}
	m.wishlist.Add(product)
	m.persistLocked()
	return nil
}

// Remove drops a product from the wishlist and schedules a write-back
func (m *Manager) Remove(ctx context.Context, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReady {
		return ErrNotReady
	}
	m.wishlist.Remove(productID)
	m.persistLocked()
	return nil
}

// Clear empties the wishlist and schedules deletion of its stored document.
// Delete failures are logged and swallowed; the in-memory wishlist stays
// authoritative.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReady {
		return ErrNotReady
	}
	m.wishlist.Clear()
	m.deleteLocked()
	return nil
}

// persistLocked schedules an asynchronous whole-wishlist write. At most one
// write is in flight; a mutation landing mid-flight marks the wishlist
// dirty and the full state is written again once the flight completes.
// Callers must hold m.mu.
func (m *Manager) persistLocked() {
	m.deleted = false
	if m.syncing {
		m.dirty = true
		return
	}
	m.syncing = true

	products := m.wishlist.Products()
	store := m.activeStore()
	owner := m.session.Key

	go func() {
		if err := store.Save(context.Background(), owner, products); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("owner", owner).
				Msg("Failed to persist wishlist")
		}
		m.settleFlight()
	}()
}

// deleteLocked schedules asynchronous deletion of the stored document. When
// a save is in flight the delete becomes the terminal write of that cycle,
// so the stale save cannot resurrect the cleared wishlist. Callers must
// hold m.mu.
func (m *Manager) deleteLocked() {
	if m.syncing {
		m.dirty = true
		m.deleted = true
		return
	}
	m.syncing = true

	store := m.activeStore()
	owner := m.session.Key

	go func() {
		if err := store.Delete(context.Background(), owner); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("owner", owner).
				Msg("Failed to delete stored wishlist")
		}
		m.settleFlight()
	}()
}

// settleFlight closes out an asynchronous write and replays the latest
// pending state when mutations landed mid-flight
func (m *Manager) settleFlight() {
	m.mu.Lock()
	m.syncing = false
	if m.dirty {
		m.dirty = false
		if m.deleted {
			m.deleted = false
			m.deleteLocked()
		} else {
			m.persistLocked()
		}
	}
	m.mu.Unlock()
}

// State reports the lifecycle state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Contains reports whether the product is on the wishlist
func (m *Manager) Contains(productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wishlist.Contains(productID)
}

// Products returns the current wishlist in insertion order
func (m *Manager) Products() []catalog.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wishlist.Products()
}

// Len returns the number of products
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wishlist.Len()
}
