// Package adapthttp implements the HTTP adapter for the storefront: server
// rendered pages, form actions and the per-browser client registry.
package adapthttp

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"storefront/internal/app"
	"storefront/internal/domain"
)

// Config holds the adapter settings.
type Config struct {
	APIBaseURL      string
	SessionCapacity int
	SessionTTL      time.Duration
	SecureCookies   bool
	RateLimit       rate.Limit
	RateBurst       int
	Logger          logrus.FieldLogger
	Registry        *prometheus.Registry
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	catalog    *app.CatalogService
	accounts   *app.AccountService
	clients    *clients
	pages      *renderer
	apiBaseURL string
	log        logrus.FieldLogger
	registry   *prometheus.Registry
	metrics    *httpMetrics
}

// New creates a Server wired to the given application services. users and
// storage back the per-client auth stores.
func New(catalog *app.CatalogService, accounts *app.AccountService, users domain.UserGateway, storage domain.StorageRepository, cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if cfg.SessionCapacity <= 0 {
		cfg.SessionCapacity = 10000
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = rate.Inf
	}

	s := &Server{
		catalog:    catalog,
		accounts:   accounts,
		clients:    newClients(storage, users, log, cfg),
		pages:      mustParseTemplates(),
		apiBaseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		log:        log,
		registry:   reg,
		metrics:    newHTTPMetrics(reg),
	}
	s.metrics.watchSessions(reg, s.clients)
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(s.metricsMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler()))
	r.Get("/oauth/{provider}", s.handleOAuth)

	r.Group(func(r chi.Router) {
		r.Use(withNoCache)
		r.Use(s.withClient)
		r.Use(s.rateLimit)

		r.Post("/cart/add", s.handleCartAdd)
		r.Post("/cart/update", s.handleCartUpdate)
		r.Post("/cart/remove", s.handleCartRemove)
		r.Post("/cart/checkout", s.handleCheckout)

		r.Post("/login", s.handleLogin)
		r.Post("/signup", s.handleSignup)
		r.Post("/logout", s.handleLogout)

		r.Post("/account/products", s.handleCreateProduct)
		r.Post("/account/subscription-boxes", s.handleCreateSubscriptionBox)

		r.Get("/*", s.handlePage)
	})

	return r
}
