package adapthttp

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"storefront/internal/app"
	"storefront/internal/domain"
)

const (
	clientCookie       = "client_id"
	clientCookieMaxAge = 365 * 24 * 60 * 60

	// startTimeout bounds the page-load rehydration of a new client.
	startTimeout = 15 * time.Second
)

type contextKey string

const clientContextKey contextKey = "client"

// flash is the message slot shown once on the next rendered page.
type flash struct {
	Error   string
	Success string
}

// navLog records the paths the router pushes while an action runs. The last
// one becomes the redirect target of the action.
type navLog struct {
	pushed []string
}

func (n *navLog) Push(path string) {
	n.pushed = append(n.pushed, path)
}

// take returns the last pushed path, or "" if nothing was pushed, and resets
// the log.
func (n *navLog) take() string {
	if len(n.pushed) == 0 {
		return ""
	}
	last := n.pushed[len(n.pushed)-1]
	n.pushed = n.pushed[:0]
	return last
}

// client is one browser's page session. mu is held for the whole of each
// request so that a client's actions apply one at a time.
type client struct {
	id      string
	mu      sync.Mutex
	shell   *app.Shell
	nav     *navLog
	limiter *rate.Limiter
	flash   flash
}

// takeFlash returns the pending flash and clears it.
func (c *client) takeFlash() flash {
	f := c.flash
	c.flash = flash{}
	return f
}

// clients maps client ids to page sessions. Idle sessions expire after the
// configured TTL; the least recently used are evicted beyond capacity.
type clients struct {
	storage domain.StorageRepository
	users   domain.UserGateway
	log     logrus.FieldLogger
	secure  bool
	rate    rate.Limit
	burst   int

	mu    sync.Mutex
	cache *expirable.LRU[string, *client]
}

func newClients(storage domain.StorageRepository, users domain.UserGateway, log logrus.FieldLogger, cfg Config) *clients {
	cs := &clients{
		storage: storage,
		users:   users,
		log:     log,
		secure:  cfg.SecureCookies,
		rate:    cfg.RateLimit,
		burst:   cfg.RateBurst,
	}
	cs.cache = expirable.NewLRU[string, *client](cfg.SessionCapacity, func(id string, _ *client) {
		log.WithField("client", id).Debug("client session ended")
	}, cfg.SessionTTL)
	return cs
}

// acquire returns the locked client for r, starting a new page session when
// none is live. New ids are handed to the browser in a cookie.
func (cs *clients) acquire(w http.ResponseWriter, r *http.Request) *client {
	id := ""
	if ck, err := r.Cookie(clientCookie); err == nil {
		if _, err := uuid.Parse(ck.Value); err == nil {
			id = ck.Value
		}
	}
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     clientCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   cs.secure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   clientCookieMaxAge,
		})
	}

	cs.mu.Lock()
	c, ok := cs.cache.Get(id)
	if !ok {
		// Locked before it is visible so no action runs ahead of Start.
		c = cs.newClient(id)
		c.mu.Lock()
	}
	// Re-adding resets the idle expiry.
	cs.cache.Add(id, c)
	cs.mu.Unlock()

	if ok {
		c.mu.Lock()
		return c
	}
	// Rehydration must survive a cancelled first request.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), startTimeout)
	defer cancel()
	if _, err := c.shell.Start(ctx, r.URL.Path, cs.users); err != nil {
		cs.log.WithError(err).WithField("client", id).Warn("could not restore user from stored token")
	}
	return c
}

func (cs *clients) newClient(id string) *client {
	nav := &navLog{}
	burst := cs.burst
	if burst <= 0 {
		burst = 1
	}
	return &client{
		id:      id,
		shell:   app.NewClientShell(cs.storage, id, nav),
		nav:     nav,
		limiter: rate.NewLimiter(cs.rate, burst),
	}
}

// len reports the number of live page sessions.
func (cs *clients) len() int {
	return cs.cache.Len()
}

func (s *Server) withClient(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := s.clients.acquire(w, r)
		defer c.mu.Unlock()

		next.ServeHTTP(w, r.WithContext(contextWithClient(r.Context(), c)))
	})
}

func contextWithClient(ctx context.Context, c *client) context.Context {
	return context.WithValue(ctx, clientContextKey, c)
}

func clientFrom(ctx context.Context) *client {
	c, _ := ctx.Value(clientContextKey).(*client)
	return c
}
