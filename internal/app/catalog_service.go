package app

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain"
)

// FeaturedCount is how many products the home page shows.
const FeaturedCount = 3

// CatalogService backs the home, product list, product detail and admin
// catalog forms.
type CatalogService struct {
	catalog domain.CatalogGateway
}

// NewCatalogService creates a CatalogService backed by the given gateway.
func NewCatalogService(catalog domain.CatalogGateway) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Featured returns the products for the home page.
func (s *CatalogService) Featured(ctx context.Context) ([]domain.Product, error) {
	products, err := Await(ctx, func(ctx context.Context) ([]domain.Product, error) {
		return s.catalog.ListProducts(ctx, FeaturedCount)
	})
	if err != nil {
		return nil, err
	}
	if len(products) > FeaturedCount {
		products = products[:FeaturedCount]
	}
	return normalizeProducts(products), nil
}

// Products returns the full collection.
func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := Await(ctx, func(ctx context.Context) ([]domain.Product, error) {
		return s.catalog.ListProducts(ctx, 0)
	})
	if err != nil {
		return nil, err
	}
	return normalizeProducts(products), nil
}

// SubscriptionBoxes returns every subscription box.
func (s *CatalogService) SubscriptionBoxes(ctx context.Context) ([]domain.SubscriptionBox, error) {
	boxes, err := Await(ctx, func(ctx context.Context) ([]domain.SubscriptionBox, error) {
		return s.catalog.ListSubscriptionBoxes(ctx)
	})
	if err != nil {
		return nil, err
	}
	if boxes == nil {
		boxes = []domain.SubscriptionBox{}
	}
	return boxes, nil
}

// Product returns one product with its recipe. A nil product with a nil
// error means the API returned no body.
func (s *CatalogService) Product(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := Await(ctx, func(ctx context.Context) (*domain.Product, error) {
		return s.catalog.GetProduct(ctx, id)
	})
	if err != nil || p == nil {
		return nil, err
	}
	if p.Recipe == nil {
		p.Recipe = []domain.RecipeItem{}
	}
	return p, nil
}

// CreateProduct submits the admin add-product form on behalf of user.
func (s *CatalogService) CreateProduct(ctx context.Context, user *domain.User, draft domain.ProductDraft) (*domain.Product, error) {
	if err := requireAdmin(user); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return Await(ctx, func(ctx context.Context) (*domain.Product, error) {
		return s.catalog.CreateProduct(ctx, draft)
	})
}

// CreateSubscriptionBox submits the admin add-subscription-box form on
// behalf of user.
func (s *CatalogService) CreateSubscriptionBox(ctx context.Context, user *domain.User, draft domain.SubscriptionBoxDraft) (*domain.SubscriptionBox, error) {
	if err := requireAdmin(user); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if draft.ProductIDs == nil {
		draft.ProductIDs = []int64{}
	}
	return Await(ctx, func(ctx context.Context) (*domain.SubscriptionBox, error) {
		return s.catalog.CreateSubscriptionBox(ctx, draft)
	})
}

// DetailMessage is the error text of the product detail page. API errors
// without a message report the status code.
func DetailMessage(err error) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) && remote.Message == "" {
		return fmt.Sprintf("Failed to fetch product (status %d)", remote.Status)
	}
	return UserMessage(err, "Unknown error")
}

func requireAdmin(user *domain.User) error {
	if user == nil {
		return ErrNotLoggedIn
	}
	if !user.IsAdmin {
		return ErrForbidden
	}
	return nil
}

func normalizeProducts(products []domain.Product) []domain.Product {
	if products == nil {
		return []domain.Product{}
	}
	for i := range products {
		if products[i].Recipe == nil {
			products[i].Recipe = []domain.RecipeItem{}
		}
	}
	return products
}
