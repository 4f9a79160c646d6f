// Package domain contains the core storefront entities and the ports to the
// systems around it.
package domain

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by storage ports when a key has no value.
var ErrNotFound = errors.New("not found")

// User is the account object returned by the users API. Only Email and
// IsAdmin are interpreted; the full server object is kept in Raw.
type User struct {
	Email   string          `json:"email"`
	IsAdmin bool            `json:"is_admin"`
	Raw     json.RawMessage `json:"-"`
}

// Credentials are the email/password pair sent to login and register.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserGateway is the port to the external users API.
type UserGateway interface {
	Login(ctx context.Context, creds Credentials) (string, error)
	Register(ctx context.Context, creds Credentials) error
	Me(ctx context.Context, token string) (*User, error)
}

// StorageRepository is durable key/value storage scoped to one browser
// client. Get returns ErrNotFound for missing keys; Delete of a missing key
// is not an error.
type StorageRepository interface {
	Get(ctx context.Context, clientID, key string) (string, error)
	Set(ctx context.Context, clientID, key, value string) error
	Delete(ctx context.Context, clientID, key string) error
}
