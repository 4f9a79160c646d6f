// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"sync"

	"storefront/internal/domain"
)

// DB implements an in-memory client storage.
type DB struct {
	mu     sync.Mutex
	values map[string]map[string]string
}

// New creates a new in-memory storage.
func New() *DB {
	return &DB{values: make(map[string]map[string]string)}
}

// Ensure interfaces are met.
var _ domain.StorageRepository = (*DB)(nil)
var _ domain.OrderRepository = (*Orders)(nil)

// --- StorageRepository ---

// Get returns the value stored under key for clientID.
func (db *DB) Get(ctx context.Context, clientID, key string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	v, ok := db.values[clientID][key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

// Set stores value under key for clientID.
func (db *DB) Set(ctx context.Context, clientID, key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	m, ok := db.values[clientID]
	if !ok {
		m = make(map[string]string)
		db.values[clientID] = m
	}
	m[key] = value
	return nil
}

// Delete removes key for clientID. Missing keys are not an error.
func (db *DB) Delete(ctx context.Context, clientID, key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	m := db.values[clientID]
	delete(m, key)
	if len(m) == 0 {
		delete(db.values, clientID)
	}
	return nil
}

// --- OrderRepository ---

// Orders serves a fixed order and subscription history to every account
// until an order service exists.
type Orders struct {
	orders []domain.Order
	subs   []domain.Subscription
}

// NewOrders creates an Orders repository holding the sample history.
func NewOrders() *Orders {
	return &Orders{orders: sampleOrders(), subs: sampleSubscriptions()}
}

// ListOrders returns the order history, newest first as stored.
func (o *Orders) ListOrders(ctx context.Context, email string) ([]domain.Order, error) {
	out := make([]domain.Order, len(o.orders))
	for i, ord := range o.orders {
		ord.Items = append([]domain.OrderItem(nil), ord.Items...)
		out[i] = ord
	}
	return out, nil
}

// ListSubscriptions returns the subscriptions.
func (o *Orders) ListSubscriptions(ctx context.Context, email string) ([]domain.Subscription, error) {
	return append([]domain.Subscription(nil), o.subs...), nil
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{
			ID: "ORD-123", Date: "2025-10-15", Total: 12.49, Status: "Delivered",
			Items: []domain.OrderItem{
				{Name: "Lavender Dreams", Quantity: 1, Image: "https://placehold.co/400x400/e9d5ff/581c87?text=Lavender+Dreams"},
				{Name: "Ocean Breeze", Quantity: 1, Image: "https://placehold.co/400x400/a5f3fc/155e75?text=Ocean+Breeze"},
			},
		},
		{
			ID: "ORD-456", Date: "2025-09-22", Total: 7.50, Status: "Delivered",
			Items: []domain.OrderItem{
				{Name: "Cozy Cashmere", Quantity: 1, Image: "https://placehold.co/400x400/e5e7eb/4b5563?text=Cozy+Cashmere"},
			},
		},
		{
			ID: "ORD-789", Date: "2025-10-18", Total: 31.48, Status: "Shipped",
			Items: []domain.OrderItem{
				{Name: "Spiced Apple Cider", Quantity: 1, Image: "https://placehold.co/400x400/fed7aa/9a3412?text=Spiced+Apple"},
				{Name: "Monthly Subscription Box", Quantity: 1, Image: "https://placehold.co/400x400/dcfce7/166534?text=Subscription+Box"},
			},
		},
	}
}

func sampleSubscriptions() []domain.Subscription {
	return []domain.Subscription{
		{ID: "SUB-A1B", ProductName: "Monthly Subscription Box", Status: "Active", NextBilling: "2025-11-01"},
	}
}
