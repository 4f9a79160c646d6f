package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/adapter/api"
	"storefront/internal/domain"
)

func newClient(t *testing.T, h http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return api.New(api.Config{BaseURL: srv.URL + "/"})
}

func TestListProducts_SendsLimit(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"id":1,"name":"Lavender Dreams","scent":"Lavender","price":5.99,"isSubscription":false}]`))
	})

	products, err := c.ListProducts(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Lavender Dreams", products[0].Name)
	assert.InDelta(t, 5.99, products[0].Price, 1e-9)
}

func TestListProducts_NoLimit(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`[]`))
	})

	products, err := c.ListProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGetProduct_DecodesRecipe(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/42", r.URL.Path)
		w.Write([]byte(`{"id":42,"name":"Ocean Breeze","recipe":[{"id":1,"name":"Soy wax","amount":200,"unit":"g"}]}`))
	})

	p, err := c.GetProduct(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, p.Recipe, 1)
	assert.Equal(t, "Soy wax", p.Recipe[0].Name)
}

func TestRemoteErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"json message", http.StatusNotFound, `{"message":"Product not found"}`, "Product not found"},
		{"json without message", http.StatusInternalServerError, `{"error":"boom"}`, ""},
		{"plain text", http.StatusBadGateway, "bad gateway\n", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			_, err := c.GetProduct(context.Background(), 1)

			var remote *domain.RemoteError
			require.True(t, errors.As(err, &remote), "got %v", err)
			assert.Equal(t, tc.status, remote.Status)
			assert.Equal(t, tc.wantMsg, remote.Message)
		})
	}
}

func TestUnreachableIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := api.New(api.Config{BaseURL: url}).ListProducts(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestMalformedBodyIsUnavailable(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := c.ListSubscriptionBoxes(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestCreateSubscriptionBox_Body(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/subscription-boxes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []any{}, body["product_ids"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":7,"name":"Autumn"}`))
	})

	box, err := c.CreateSubscriptionBox(context.Background(), domain.SubscriptionBoxDraft{
		Name: "Autumn", Price: 24.99, Description: "Cozy", ProductIDs: []int64{},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), box.ID)
}

func TestLogin(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/login", r.URL.Path)
		var creds domain.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid credentials"}`))
			return
		}
		w.Write([]byte(`{"token":"jwt-abc"}`))
	})

	token, err := c.Login(context.Background(), domain.Credentials{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)

	_, err = c.Login(context.Background(), domain.Credentials{Email: "a@b.c", Password: "wrong"})
	var remote *domain.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "Invalid credentials", remote.Message)
}

func TestLogin_MissingToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := c.Login(context.Background(), domain.Credentials{})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestRegister(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/register", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"User with this email already exists"}`))
	})

	err := c.Register(context.Background(), domain.Credentials{Email: "a@b.c", Password: "pw"})
	var remote *domain.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusConflict, remote.Status)
}

func TestMe_SendsBearerAndKeepsRaw(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/me", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id":3,"email":"admin@example.com","username":"Admin","is_admin":true}`))
	})

	user, err := c.Me(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.True(t, user.IsAdmin)
	assert.Contains(t, string(user.Raw), `"username":"Admin"`)

	_, err = c.Me(context.Background(), "tok-2")
	var remote *domain.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusUnauthorized, remote.Status)
	assert.Empty(t, remote.Message)
}
