package app

import (
	"context"
	"strings"

	"storefront/internal/domain"
)

// AccountService backs the login, sign-up and account pages.
type AccountService struct {
	users  domain.UserGateway
	orders domain.OrderRepository
}

// NewAccountService creates an AccountService.
func NewAccountService(users domain.UserGateway, orders domain.OrderRepository) *AccountService {
	return &AccountService{users: users, orders: orders}
}

// Login authenticates creds against the users API and records the session
// in auth. The full user object is looked up once with the new token; if
// that lookup fails the session starts with just the email.
func (s *AccountService) Login(ctx context.Context, auth *AuthStore, creds domain.Credentials) error {
	creds.Email = strings.TrimSpace(creds.Email)

	token, err := Await(ctx, func(ctx context.Context) (string, error) {
		return s.users.Login(ctx, creds)
	})
	if err != nil {
		return err
	}

	user := domain.User{Email: creds.Email}
	if me, err := Await(ctx, func(ctx context.Context) (*domain.User, error) {
		return s.users.Me(ctx, token)
	}); err == nil && me != nil {
		user = *me
	}
	return auth.Login(ctx, user, token)
}

// Register creates an account. The password confirmation is checked locally
// before any request is made.
func (s *AccountService) Register(ctx context.Context, creds domain.Credentials, confirm string) error {
	if creds.Password != confirm {
		return ErrPasswordMismatch
	}
	creds.Email = strings.TrimSpace(creds.Email)
	return AwaitErr(ctx, func(ctx context.Context) error {
		return s.users.Register(ctx, creds)
	})
}

// Logout ends the session held in auth.
func (s *AccountService) Logout(ctx context.Context, auth *AuthStore) error {
	return auth.Logout(ctx)
}

// AccountHistory is what the account page lists for a user.
type AccountHistory struct {
	Orders        []domain.Order
	Subscriptions []domain.Subscription
}

// History returns the order and subscription history of user.
func (s *AccountService) History(ctx context.Context, user *domain.User) (AccountHistory, error) {
	if user == nil {
		return AccountHistory{}, ErrNotLoggedIn
	}
	orders, err := Await(ctx, func(ctx context.Context) ([]domain.Order, error) {
		return s.orders.ListOrders(ctx, user.Email)
	})
	if err != nil {
		return AccountHistory{}, err
	}
	subs, err := Await(ctx, func(ctx context.Context) ([]domain.Subscription, error) {
		return s.orders.ListSubscriptions(ctx, user.Email)
	})
	if err != nil {
		return AccountHistory{}, err
	}
	return AccountHistory{Orders: orders, Subscriptions: subs}, nil
}
