package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/duka-storefront/internal/cart/domain"
	catalog "github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/internal/session"
	"github.com/tair/duka-storefront/pkg/logger"
)

func init() {
	logger.Init("cart-test", false)
}

// fakeStore is an in-memory cart store that counts writes
type fakeStore struct {
	mu        sync.Mutex
	docs      map[string][]domain.CartItem
	fetchErr  error
	deleteErr error
	saveGate  chan struct{} // when set, Save blocks until the channel closes
	saves     int
	deletes   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string][]domain.CartItem)}
}

func (s *fakeStore) Fetch(ctx context.Context, owner string) ([]domain.CartItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchErr != nil {
		return nil, false, s.fetchErr
	}
	items, found := s.docs[owner]
	return items, found, nil
}

func (s *fakeStore) Save(ctx context.Context, owner string, items []domain.CartItem) error {
	s.mu.Lock()
	gate := s.saveGate
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.docs[owner] = items
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.docs, owner)
	return nil
}

func (s *fakeStore) saved(owner string) ([]domain.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, found := s.docs[owner]
	return items, found
}

func (s *fakeStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *fakeStore) deleteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deletes
}

func (s *fakeStore) setSaveGate(gate chan struct{}) {
	s.mu.Lock()
	s.saveGate = gate
	s.mu.Unlock()
}

func headphones() catalog.Product {
	return catalog.Product{ID: "1", Name: "Headphones", Price: 100}
}

func TestManager_MutationBeforeLoadIsRejected(t *testing.T) {
	m := NewManager(session.Device("abc"), newFakeStore(), newFakeStore())

	err := m.Add(context.Background(), headphones(), 1)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestManager_AddMergesAndPersists(t *testing.T) {
	ctx := context.Background()
	local := newFakeStore()
	m := NewManager(session.Device("abc"), newFakeStore(), local)
	require.NoError(t, m.Load(ctx))

	require.NoError(t, m.Add(ctx, headphones(), 1))
	require.NoError(t, m.Add(ctx, headphones(), 2))

	assert.Equal(t, 3, m.TotalItems())
	assert.InDelta(t, 300.0, m.TotalPrice(), 0.001)

	assert.Eventually(t, func() bool {
		items, found := local.saved("device:abc")
		return found && len(items) == 1 && items[0].Quantity == 3
	}, time.Second, 10*time.Millisecond)
}

func TestManager_LoadNeverWrites(t *testing.T) {
	ctx := context.Background()
	local := newFakeStore()
	local.docs["device:abc"] = []domain.CartItem{{Product: headphones(), Quantity: 2}}

	m := NewManager(session.Device("abc"), newFakeStore(), local)
	require.NoError(t, m.Load(ctx))

	assert.Equal(t, 2, m.TotalItems())
	assert.Equal(t, 0, local.saveCount())
}

func TestManager_LoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	local := newFakeStore()
	local.docs["device:abc"] = []domain.CartItem{{Product: headphones(), Quantity: 2}}

	m := NewManager(session.Device("abc"), newFakeStore(), local)
	require.NoError(t, m.Load(ctx))
	require.NoError(t, m.Add(ctx, headphones(), 1))

	// A second load does not reset in-memory state
	require.NoError(t, m.Load(ctx))
	assert.Equal(t, 3, m.TotalItems())
}

func TestManager_EmptyRemoteReplacesLocal(t *testing.T) {
	ctx := context.Background()
	sess := session.User(7)

	remote := newFakeStore()
	remote.docs[sess.Key] = []domain.CartItem{} // present but empty

	local := newFakeStore()
	local.docs[sess.Key] = []domain.CartItem{{Product: headphones(), Quantity: 5}}

	m := NewManager(sess, remote, local)
	require.NoError(t, m.Load(ctx))

	assert.Equal(t, StateReady, m.State())
	assert.Equal(t, 0, m.TotalItems())
}

func TestManager_MissingRemoteFallsBackToLocal(t *testing.T) {
	ctx := context.Background()
	sess := session.User(7)

	local := newFakeStore()
	local.docs[sess.Key] = []domain.CartItem{{Product: headphones(), Quantity: 2}}

	m := NewManager(sess, newFakeStore(), local)
	require.NoError(t, m.Load(ctx))

	assert.Equal(t, 2, m.TotalItems())
}

func TestManager_RemoteErrorFallsBackToLocal(t *testing.T) {
	ctx := context.Background()
	sess := session.User(7)

	remote := newFakeStore()
	remote.fetchErr = errors.New("connection refused")

	local := newFakeStore()
	local.docs[sess.Key] = []domain.CartItem{{Product: headphones(), Quantity: 2}}

	m := NewManager(sess, remote, local)
	require.NoError(t, m.Load(ctx))

	assert.Equal(t, 2, m.TotalItems())
}

func TestManager_ClearDeletesStoredDocument(t *testing.T) {
	ctx := context.Background()
	sess := session.User(7)

	remote := newFakeStore()
	remote.docs[sess.Key] = []domain.CartItem{{Product: headphones(), Quantity: 2}}

	m := NewManager(sess, remote, newFakeStore())
	require.NoError(t, m.Load(ctx))
	require.NoError(t, m.Clear(ctx))

	assert.Equal(t, 0, m.TotalItems())
	assert.Eventually(t, func() bool {
		_, found := remote.saved(sess.Key)
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestManager_ClearSwallowsDeleteFailure(t *testing.T) {
	ctx := context.Background()
	sess := session.User(7)

	remote := newFakeStore()
	remote.docs[sess.Key] = []domain.CartItem{{Product: headphones(), Quantity: 2}}
	remote.deleteErr = errors.New("connection refused")

	m := NewManager(sess, remote, newFakeStore())
	require.NoError(t, m.Load(ctx))

	// The in-memory cart empties even when the stored document cannot be
	// removed
	require.NoError(t, m.Clear(ctx))
	assert.Equal(t, 0, m.TotalItems())
	assert.Eventually(t, func() bool {
		return remote.deleteCount() > 0
	}, time.Second, 10*time.Millisecond)
}

func TestManager_ClearOutlivesInFlightSave(t *testing.T) {
	ctx := context.Background()
	local := newFakeStore()
	m := NewManager(session.Device("abc"), newFakeStore(), local)
	require.NoError(t, m.Load(ctx))

	gate := make(chan struct{})
	local.setSaveGate(gate)

	// The add's write stalls mid-flight; the clear must still end with the
	// stored document gone once the stale save lands
	require.NoError(t, m.Add(ctx, headphones(), 1))
	require.NoError(t, m.Clear(ctx))
	close(gate)

	assert.Eventually(t, func() bool {
		_, found := local.saved("device:abc")
		return !found && local.deleteCount() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, m.TotalItems())
}

func TestManager_SetQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	local := newFakeStore()
	m := NewManager(session.Device("abc"), newFakeStore(), local)
	require.NoError(t, m.Load(ctx))

	require.NoError(t, m.Add(ctx, headphones(), 2))
	require.NoError(t, m.SetQuantity(ctx, "1", 0))

	assert.Equal(t, 0, m.TotalItems())
	assert.Eventually(t, func() bool {
		items, found := local.saved("device:abc")
		return found && len(items) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRegistry_SeparatesSessions(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(newFakeStore(), newFakeStore())

	device, err := registry.Manager(ctx, session.Device("abc"))
	require.NoError(t, err)
	require.NoError(t, device.Add(ctx, headphones(), 1))

	user, err := registry.Manager(ctx, session.User(7))
	require.NoError(t, err)
	assert.Equal(t, 0, user.TotalItems())
	assert.Equal(t, 1, device.TotalItems())

	// Same session key returns the same manager
	again, err := registry.Manager(ctx, session.Device("abc"))
	require.NoError(t, err)
	assert.Same(t, device, again)
}
