package adapthttp

import (
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func formInt64(r *http.Request, key string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue(key)), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func formInt(r *http.Request, key string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue(key)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// formPrice parses a price field. Blank or malformed input yields -1, which
// draft validation rejects.
func formPrice(r *http.Request, key string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.PostFormValue(key)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return -1
	}
	return v
}

// seeOther answers an action with 303 to the last path the router pushed.
// An action that did not navigate returns to the page it was posted from,
// or to the current location when the origin is unknown.
func (s *Server) seeOther(w http.ResponseWriter, r *http.Request, c *client, query string) {
	target := c.nav.take()
	if target == "" {
		if from, ok := originPath(r); ok {
			target = c.shell.Router.Pop(from).Path()
		} else {
			target = c.shell.Router.Current().Path()
		}
	}
	if query != "" {
		target += "?" + query
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// originPath is the path of the page a form was posted from: the "from"
// field, else the Referer. Only the path is kept; the router maps it to a
// known page.
func originPath(r *http.Request) (string, bool) {
	if from := strings.TrimSpace(r.PostFormValue("from")); strings.HasPrefix(from, "/") {
		if u, err := url.Parse(from); err == nil && u.Path != "" {
			return u.Path, true
		}
	}
	if ref := r.Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && u.Path != "" {
			return u.Path, true
		}
	}
	return "", false
}
