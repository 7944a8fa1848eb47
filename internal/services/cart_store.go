package services

import (
	"storefront/internal/cart"
	"sync"
	"time"
)

// CartStore keeps cart snapshots between requests. LoadCart reports false for
// unknown or expired carts.
type CartStore interface {
	LoadCart(cartID string) ([]cart.Item, bool, error)
	SaveCart(cartID string, items []cart.Item) error
	DeleteCart(cartID string) error
}

type memoryCart struct {
	items     []cart.Item
	expiresAt time.Time
}

// MemoryCartStore is a process-local CartStore. Entries expire after ttl
// without a save.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]memoryCart
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]memoryCart), ttl: ttl, now: time.Now}
}

func (s *MemoryCartStore) LoadCart(cartID string) ([]cart.Item, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[cartID]
	if !ok {
		return nil, false, nil
	}
	if s.ttl > 0 && !s.now().Before(entry.expiresAt) {
		delete(s.carts, cartID)
		return nil, false, nil
	}
	return append([]cart.Item(nil), entry.items...), true, nil
}

func (s *MemoryCartStore) SaveCart(cartID string, items []cart.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	s.carts[cartID] = memoryCart{
		items:     append([]cart.Item(nil), items...),
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryCartStore) DeleteCart(cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
	return nil
}

func (s *MemoryCartStore) sweep() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	for id, entry := range s.carts {
		if !now.Before(entry.expiresAt) {
			delete(s.carts, id)
		}
	}
}
