package memory

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

func TestStorageRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	// Missing key
	if _, err := db.Get(ctx, "a", "token"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Set and get
	if err := db.Set(ctx, "a", "token", "t1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := db.Get(ctx, "a", "token")
	if err != nil || v != "t1" {
		t.Fatalf("expected t1, got %q (%v)", v, err)
	}

	// Overwrite
	_ = db.Set(ctx, "a", "token", "t2")
	if v, _ := db.Get(ctx, "a", "token"); v != "t2" {
		t.Errorf("expected t2, got %q", v)
	}

	// Other client sees nothing
	if _, err := db.Get(ctx, "b", "token"); !errors.Is(err, domain.ErrNotFound) {
		t.Error("expected other client to have no token")
	}

	// Delete, twice
	if err := db.Delete(ctx, "a", "token"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := db.Delete(ctx, "a", "token"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if _, err := db.Get(ctx, "a", "token"); !errors.Is(err, domain.ErrNotFound) {
		t.Error("expected token to be gone")
	}
}

func TestOrders(t *testing.T) {
	o := NewOrders()
	ctx := context.Background()

	orders, err := o.ListOrders(ctx, "someone@example.com")
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	if orders[0].ID != "ORD-123" || len(orders[0].Items) != 2 {
		t.Errorf("unexpected first order %+v", orders[0])
	}

	// Callers cannot mutate the stored history.
	orders[0].Items[0].Name = "changed"
	again, _ := o.ListOrders(ctx, "someone@example.com")
	if again[0].Items[0].Name != "Lavender Dreams" {
		t.Error("stored order was mutated")
	}

	subs, err := o.ListSubscriptions(ctx, "someone@example.com")
	if err != nil || len(subs) != 1 || subs[0].Status != "Active" {
		t.Fatalf("unexpected subscriptions %+v (%v)", subs, err)
	}
}
