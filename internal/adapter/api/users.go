package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"storefront/internal/domain"
)

var errNoToken = errors.New("login response has no token")

// Login calls POST /api/users/login and returns the issued token.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	var raw json.RawMessage
	if err := c.do(ctx, c.httpClient, "login", http.MethodPost, "/api/users/login", creds, &raw); err != nil {
		return "", err
	}
	token := gjson.GetBytes(raw, "token").String()
	if token == "" {
		return "", fmt.Errorf("%w: %w", domain.ErrUnavailable, errNoToken)
	}
	return token, nil
}

// Register calls POST /api/users/register.
func (c *Client) Register(ctx context.Context, creds domain.Credentials) error {
	return c.do(ctx, c.httpClient, "register", http.MethodPost, "/api/users/register", creds, nil)
}

// Me calls GET /api/users/me with token as the bearer credential. The raw
// response is kept on the returned user.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	hc := &http.Client{
		Timeout: c.httpClient.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.httpClient.Transport,
		},
	}

	var raw json.RawMessage
	if err := c.do(ctx, hc, "me", http.MethodGet, "/api/users/me", nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%w: decode user: %w", domain.ErrUnavailable, err)
	}
	user.Raw = raw
	return &user, nil
}
