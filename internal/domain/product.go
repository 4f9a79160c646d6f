package domain

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidDraft is returned when a product or subscription box draft is
// missing required fields.
var ErrInvalidDraft = errors.New("invalid draft")

// Product is a single wax melt (or subscription product) offered by the shop.
type Product struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Scent          string       `json:"scent"`
	Description    string       `json:"description"`
	Price          float64      `json:"price"`
	Image          string       `json:"image"`
	IsSubscription bool         `json:"isSubscription"`
	Recipe         []RecipeItem `json:"recipe"`
}

// Blurb is the short line shown under a product name: the scent when known,
// otherwise the description.
func (p Product) Blurb() string {
	if strings.TrimSpace(p.Scent) != "" {
		return p.Scent
	}
	return p.Description
}

// RecipeItem is one ingredient line of a product recipe.
type RecipeItem struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes"`
}

// SubscriptionBox is a recurring bundle of products.
type SubscriptionBox struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// ProductDraft is the admin input for creating a product.
type ProductDraft struct {
	Name        string  `json:"name"`
	Scent       string  `json:"scent"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// Validate reports whether every field the create form marks as required is
// present.
func (d ProductDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Scent) == "" ||
		strings.TrimSpace(d.Image) == "" || strings.TrimSpace(d.Description) == "" {
		return ErrInvalidDraft
	}
	if d.Price < 0 {
		return ErrInvalidDraft
	}
	return nil
}

// SubscriptionBoxDraft is the admin input for creating a subscription box.
type SubscriptionBoxDraft struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ProductIDs  []int64 `json:"product_ids"`
}

// Validate reports whether the draft has a name, description and a
// non-negative price. An empty product selection is allowed.
func (d SubscriptionBoxDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Description) == "" || d.Price < 0 {
		return ErrInvalidDraft
	}
	return nil
}

// CatalogGateway is the port to the external products API.
type CatalogGateway interface {
	ListProducts(ctx context.Context, limit int) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, draft ProductDraft) (*Product, error)
	ListSubscriptionBoxes(ctx context.Context) ([]SubscriptionBox, error)
	CreateSubscriptionBox(ctx context.Context, draft SubscriptionBoxDraft) (*SubscriptionBox, error)
}
