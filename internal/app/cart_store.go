package app

import (
	"sync"

	"storefront/internal/domain"
)

// CartStore owns one shopper's cart. Dispatch is the only way to change it.
type CartStore struct {
	mu   sync.Mutex
	cart domain.Cart
}

// NewCartStore returns an empty cart store.
func NewCartStore() *CartStore {
	return &CartStore{}
}

// Dispatch applies action and returns the resulting cart.
func (s *CartStore) Dispatch(action domain.CartAction) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = domain.ReduceCart(s.cart, action)
	return s.cart.Clone()
}

// Snapshot returns a copy of the current cart.
func (s *CartStore) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// Add adds one unit of p.
func (s *CartStore) Add(p domain.Product) domain.Cart {
	return s.Dispatch(domain.AddItem{Product: p})
}

// Remove drops the line for productID.
func (s *CartStore) Remove(productID int64) domain.Cart {
	return s.Dispatch(domain.RemoveItem{ProductID: productID})
}

// SetQuantity sets the quantity for productID; zero or below removes it.
func (s *CartStore) SetQuantity(productID int64, quantity int) domain.Cart {
	return s.Dispatch(domain.UpdateQuantity{ProductID: productID, Quantity: quantity})
}

// Total is the cart total.
func (s *CartStore) Total() float64 {
	return s.Snapshot().Total()
}

// Count is the number of units in the cart.
func (s *CartStore) Count() int {
	return s.Snapshot().Count()
}
