package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Natanjhon7/delivery-backend-v2/models"
)

// CartStore holds per-user carts. Get returns (nil, nil) when the user has no
// cart yet. The store is working state, not a system of record: checkout
// clears it and a lost cart is recoverable by the user.
type CartStore interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, userID string) error
}

// MemoryCartStore keeps carts in a process-local map. Suitable only for a
// single-instance deployment; multi-instance runs must use the redis store.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]*models.Cart),
	}
}

func (s *MemoryCartStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[userID]
	if !ok {
		return nil, nil
	}
	return copyCart(cart), nil
}

func (s *MemoryCartStore) Save(ctx context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart.UpdatedAt = time.Now()
	s.carts[cart.UserID] = copyCart(cart)
	return nil
}

func (s *MemoryCartStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}

// copyCart keeps callers from mutating the stored cart through a shared
// items slice.
func copyCart(cart *models.Cart) *models.Cart {
	dup := *cart
	dup.Items = append([]models.CartItem(nil), cart.Items...)
	return &dup
}
