// Package api implements the catalog and user gateways over the external
// products and users HTTP APIs.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"

	"storefront/internal/domain"
)

const maxBodyBytes = 1 << 20

var requests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Requests made to the external API by endpoint and status.",
	},
	[]string{"endpoint", "status"},
)

// Collectors returns the Prometheus collectors of this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{requests}
}

// Config holds client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the external API. It implements domain.CatalogGateway and
// domain.UserGateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var (
	_ domain.CatalogGateway = (*Client)(nil)
	_ domain.UserGateway    = (*Client)(nil)
)

// New creates a Client. A zero timeout defaults to ten seconds.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do sends one request and decodes a JSON response into out. Non-2xx
// responses become *domain.RemoteError carrying the body's "message" field.
// Requests that never produce a usable response wrap domain.ErrUnavailable.
// An empty body leaves out untouched.
func (c *Client) do(ctx context.Context, hc *http.Client, endpoint, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		requests.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("%w: %s %s: %w", domain.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()
	requests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", domain.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.RemoteError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %w", domain.ErrUnavailable, method, path, err)
	}
	return nil
}

// errorMessage extracts the "message" field of a JSON error body. Plain-text
// bodies yield "".
func errorMessage(raw []byte) string {
	if !gjson.ValidBytes(raw) {
		return ""
	}
	return strings.TrimSpace(gjson.GetBytes(raw, "message").String())
}
