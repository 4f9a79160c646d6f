package app

import (
	"context"

	"storefront/internal/domain"
)

// Shell is the per-client composition root: the two state stores and the
// router that every page view works against.
type Shell struct {
	Cart   *CartStore
	Auth   *AuthStore
	Router *Router
}

// NewShell wires explicitly constructed stores and router together.
func NewShell(cart *CartStore, auth *AuthStore, router *Router) *Shell {
	return &Shell{Cart: cart, Auth: auth, Router: router}
}

// NewClientShell builds a Shell for clientID with an empty cart, an auth
// store backed by storage and a router reporting to history.
func NewClientShell(storage domain.StorageRepository, clientID string, history History) *Shell {
	return NewShell(NewCartStore(), NewAuthStore(storage, clientID), NewRouter(history))
}

// Start runs the page-load sequence: rehydrate the user from a stored token,
// then resolve the initial location from path. A rehydration failure is
// returned for logging only; the shell is usable either way.
func (s *Shell) Start(ctx context.Context, path string, users domain.UserGateway) (domain.Location, error) {
	err := s.Auth.Rehydrate(ctx, users)
	return s.Router.Init(path), err
}
