package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storefront/internal/domain"
)

// TokenKey is the durable storage key holding the bearer token.
const TokenKey = "token"

// AuthStore tracks who is logged in for one browser client. Login and Logout
// are its only mutators; the token lives in durable storage, the user object
// only in memory.
type AuthStore struct {
	storage  domain.StorageRepository
	clientID string

	mu   sync.RWMutex
	user *domain.User
}

// NewAuthStore creates an AuthStore for clientID backed by storage.
func NewAuthStore(storage domain.StorageRepository, clientID string) *AuthStore {
	return &AuthStore{storage: storage, clientID: clientID}
}

// Login persists token and sets the in-memory user. The token is not
// validated; callers obtain it from the users API first.
func (s *AuthStore) Login(ctx context.Context, user domain.User, token string) error {
	if err := s.storage.Set(ctx, s.clientID, TokenKey, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Logout clears the in-memory user and removes the stored token. No request
// is made to the users API.
func (s *AuthStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, s.clientID, TokenKey); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// User returns a copy of the logged-in user, or nil.
func (s *AuthStore) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoggedIn reports whether a user object is present.
func (s *AuthStore) LoggedIn() bool {
	return s.User() != nil
}

// IsAdmin reports whether the logged-in user is an administrator.
func (s *AuthStore) IsAdmin() bool {
	u := s.User()
	return u != nil && u.IsAdmin
}

// Token returns the stored bearer token, or "" when none is stored.
func (s *AuthStore) Token(ctx context.Context) (string, error) {
	token, err := s.storage.Get(ctx, s.clientID, TokenKey)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return token, nil
}

// Rehydrate resolves the stored token into a user at startup. Without a
// token no request is made. When resolution fails the store keeps no user
// and the token is left in storage.
func (s *AuthStore) Rehydrate(ctx context.Context, users domain.UserGateway) error {
	token, err := s.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	user, err := Await(ctx, func(ctx context.Context) (*domain.User, error) {
		return users.Me(ctx, token)
	})
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}
	if user == nil {
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}
