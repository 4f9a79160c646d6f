package app_test

import (
	"context"
	"errors"
	"sync"

	"storefront/internal/domain"
)

// ---------------------------------------------------------------------------
// Mock ports (function-fields pattern)
// ---------------------------------------------------------------------------

type mockUserGateway struct {
	loginFn    func(ctx context.Context, creds domain.Credentials) (string, error)
	registerFn func(ctx context.Context, creds domain.Credentials) error
	meFn       func(ctx context.Context, token string) (*domain.User, error)

	mu        sync.Mutex
	meTokens  []string
	logins    int
	registers int
}

func (m *mockUserGateway) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	m.mu.Lock()
	m.logins++
	m.mu.Unlock()
	if m.loginFn != nil {
		return m.loginFn(ctx, creds)
	}
	return "tok-123", nil
}

func (m *mockUserGateway) Register(ctx context.Context, creds domain.Credentials) error {
	m.mu.Lock()
	m.registers++
	m.mu.Unlock()
	if m.registerFn != nil {
		return m.registerFn(ctx, creds)
	}
	return nil
}

func (m *mockUserGateway) Me(ctx context.Context, token string) (*domain.User, error) {
	m.mu.Lock()
	m.meTokens = append(m.meTokens, token)
	m.mu.Unlock()
	if m.meFn != nil {
		return m.meFn(ctx, token)
	}
	return nil, errors.New("no user")
}

func (m *mockUserGateway) meCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.meTokens...)
}

type mockCatalog struct {
	listFn       func(ctx context.Context, limit int) ([]domain.Product, error)
	getFn        func(ctx context.Context, id int64) (*domain.Product, error)
	createFn     func(ctx context.Context, draft domain.ProductDraft) (*domain.Product, error)
	listBoxesFn  func(ctx context.Context) ([]domain.SubscriptionBox, error)
	createBoxFn  func(ctx context.Context, draft domain.SubscriptionBoxDraft) (*domain.SubscriptionBox, error)
	createCalled bool
}

func (m *mockCatalog) ListProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockCatalog) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &domain.Product{ID: id}, nil
}

func (m *mockCatalog) CreateProduct(ctx context.Context, draft domain.ProductDraft) (*domain.Product, error) {
	m.createCalled = true
	if m.createFn != nil {
		return m.createFn(ctx, draft)
	}
	return &domain.Product{ID: 10, Name: draft.Name}, nil
}

func (m *mockCatalog) ListSubscriptionBoxes(ctx context.Context) ([]domain.SubscriptionBox, error) {
	if m.listBoxesFn != nil {
		return m.listBoxesFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalog) CreateSubscriptionBox(ctx context.Context, draft domain.SubscriptionBoxDraft) (*domain.SubscriptionBox, error) {
	m.createCalled = true
	if m.createBoxFn != nil {
		return m.createBoxFn(ctx, draft)
	}
	return &domain.SubscriptionBox{ID: 20, Name: draft.Name}, nil
}

// mapStorage is a StorageRepository over a plain map.
type mapStorage struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
}

func newMapStorage() *mapStorage {
	return &mapStorage{values: map[string]string{}}
}

func (s *mapStorage) Get(_ context.Context, clientID, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[clientID+"/"+key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (s *mapStorage) Set(_ context.Context, clientID, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[clientID+"/"+key] = value
	return nil
}

func (s *mapStorage) Delete(_ context.Context, clientID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, clientID+"/"+key)
	return nil
}

type mockOrders struct {
	orders []domain.Order
	subs   []domain.Subscription
	err    error
}

func (m *mockOrders) ListOrders(_ context.Context, _ string) ([]domain.Order, error) {
	return m.orders, m.err
}

func (m *mockOrders) ListSubscriptions(_ context.Context, _ string) ([]domain.Subscription, error) {
	return m.subs, m.err
}

type recordingHistory struct {
	pushed []string
}

func (h *recordingHistory) Push(path string) {
	h.pushed = append(h.pushed, path)
}
