package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain"
)

// ListProducts calls GET /products. A positive limit is sent as ?limit=.
func (c *Client) ListProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	path := "/products"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	var products []domain.Product
	if err := c.do(ctx, c.httpClient, "list_products", http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct calls GET /products/{id}.
func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product *domain.Product
	path := "/products/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, c.httpClient, "get_product", http.MethodGet, path, nil, &product); err != nil {
		return nil, err
	}
	return product, nil
}

// CreateProduct calls POST /products.
func (c *Client) CreateProduct(ctx context.Context, draft domain.ProductDraft) (*domain.Product, error) {
	var product *domain.Product
	if err := c.do(ctx, c.httpClient, "create_product", http.MethodPost, "/products", draft, &product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListSubscriptionBoxes calls GET /products/subscription-boxes.
func (c *Client) ListSubscriptionBoxes(ctx context.Context) ([]domain.SubscriptionBox, error) {
	var boxes []domain.SubscriptionBox
	if err := c.do(ctx, c.httpClient, "list_subscription_boxes", http.MethodGet, "/products/subscription-boxes", nil, &boxes); err != nil {
		return nil, err
	}
	return boxes, nil
}

// CreateSubscriptionBox calls POST /products/subscription-boxes.
func (c *Client) CreateSubscriptionBox(ctx context.Context, draft domain.SubscriptionBoxDraft) (*domain.SubscriptionBox, error) {
	var box *domain.SubscriptionBox
	if err := c.do(ctx, c.httpClient, "create_subscription_box", http.MethodPost, "/products/subscription-boxes", draft, &box); err != nil {
		return nil, err
	}
	return box, nil
}
