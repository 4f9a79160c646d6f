package app_test

import (
	"testing"

	"storefront/internal/app"
	"storefront/internal/domain"
)

func TestRouter_InitResolvesDeepLink(t *testing.T) {
	h := &recordingHistory{}
	r := app.NewRouter(h)

	got := r.Init("/products/42")
	want := domain.Location{Page: domain.PageProductDetail, ProductID: 42}
	if got != want || r.Current() != want {
		t.Fatalf("expected %+v, got %+v (current %+v)", want, got, r.Current())
	}
	if len(h.pushed) != 0 {
		t.Errorf("init must not push history, got %v", h.pushed)
	}
}

func TestRouter_InitUnknownPathIsHome(t *testing.T) {
	r := app.NewRouter(&recordingHistory{})
	if got := r.Init("/nonsense"); got.Page != domain.PageHome {
		t.Fatalf("expected home, got %+v", got)
	}
}

func TestRouter_NavigateToProduct(t *testing.T) {
	h := &recordingHistory{}
	r := app.NewRouter(h)
	r.Init("/")

	r.NavigateToProduct(7)

	cur := r.Current()
	if cur.Page != domain.PageProductDetail || cur.ProductID != 7 {
		t.Fatalf("unexpected location %+v", cur)
	}
	if len(h.pushed) != 1 || h.pushed[0] != "/products/7" {
		t.Fatalf("expected push of /products/7, got %v", h.pushed)
	}
}

func TestRouter_NavigateClearsProduct(t *testing.T) {
	tests := []struct {
		kind     domain.PageKind
		wantPath string
	}{
		{domain.PageHome, "/"},
		{domain.PageProductList, "/products"},
		{domain.PageCart, "/cart"},
		{domain.PageLogin, "/login"},
		{domain.PageAccount, "/account"},
	}
	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			h := &recordingHistory{}
			r := app.NewRouter(h)
			r.Init("/products/3")

			loc := r.Navigate(tc.kind)

			if loc.Page != tc.kind || loc.ProductID != 0 {
				t.Fatalf("unexpected location %+v", loc)
			}
			if len(h.pushed) != 1 || h.pushed[0] != tc.wantPath {
				t.Fatalf("expected push of %s, got %v", tc.wantPath, h.pushed)
			}
		})
	}
}

func TestRouter_PopDoesNotPush(t *testing.T) {
	h := &recordingHistory{}
	r := app.NewRouter(h)
	r.Init("/")
	r.Navigate(domain.PageCart)
	r.NavigateToProduct(5)

	loc := r.Pop("/cart")

	if loc.Page != domain.PageCart {
		t.Fatalf("expected cart after pop, got %+v", loc)
	}
	if len(h.pushed) != 2 {
		t.Fatalf("pop must not push, history is %v", h.pushed)
	}
}

func TestRouter_NavigateToProductZero(t *testing.T) {
	h := &recordingHistory{}
	r := app.NewRouter(h)
	r.Init("/")

	r.NavigateToProduct(0)

	if r.Current() != domain.ProductLocation(0) {
		t.Fatalf("unexpected location %+v", r.Current())
	}
	if len(h.pushed) != 1 || h.pushed[0] != "/products/0" {
		t.Fatalf("expected push of /products/0, got %v", h.pushed)
	}
}

func TestRouter_PathAndPageStayConsistent(t *testing.T) {
	h := &recordingHistory{}
	r := app.NewRouter(h)
	r.Init("/")

	r.NavigateToProduct(11)
	r.Navigate(domain.PageAccount)
	r.NavigateToProduct(-3)

	last := h.pushed[len(h.pushed)-1]
	if domain.ParsePath(last) != r.Current() {
		t.Fatalf("last pushed path %s does not match current %+v", last, r.Current())
	}
	if r.Current() != domain.HomeLocation {
		t.Fatalf("invalid product id should land on home, got %+v", r.Current())
	}
}
