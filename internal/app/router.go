package app

import (
	"sync"

	"storefront/internal/domain"
)

// History receives the paths the router navigates to.
type History interface {
	Push(path string)
}

// Router keeps the current location and the browser path in step.
type Router struct {
	history History

	mu  sync.RWMutex
	loc domain.Location
}

// NewRouter returns a router positioned at home.
func NewRouter(history History) *Router {
	return &Router{history: history, loc: domain.HomeLocation}
}

// Init sets the location from the path the client loaded.
func (r *Router) Init(path string) domain.Location {
	return r.set(domain.ParsePath(path))
}

// Pop handles back/forward: the location follows the new path and nothing
// is pushed.
func (r *Router) Pop(path string) domain.Location {
	return r.set(domain.ParsePath(path))
}

// Navigate moves to a page without a product and pushes its path.
func (r *Router) Navigate(kind domain.PageKind) domain.Location {
	return r.push(domain.PageLocation(kind))
}

// NavigateToProduct moves to the detail page of id and pushes its path.
func (r *Router) NavigateToProduct(id int64) domain.Location {
	if id < 0 {
		return r.push(domain.HomeLocation)
	}
	return r.push(domain.ProductLocation(id))
}

// Current returns the current location.
func (r *Router) Current() domain.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loc
}

func (r *Router) push(loc domain.Location) domain.Location {
	r.set(loc)
	if r.history != nil {
		r.history.Push(loc.Path())
	}
	return loc
}

func (r *Router) set(loc domain.Location) domain.Location {
	r.mu.Lock()
	r.loc = loc
	r.mu.Unlock()
	return loc
}
