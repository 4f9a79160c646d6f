package domain_test

import (
	"testing"

	"storefront/internal/domain"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		path string
		want domain.Location
	}{
		{"/", domain.Location{Page: domain.PageHome}},
		{"", domain.Location{Page: domain.PageHome}},
		{"/products", domain.Location{Page: domain.PageProductList}},
		{"/products/", domain.Location{Page: domain.PageProductList}},
		{"/products/42", domain.Location{Page: domain.PageProductDetail, ProductID: 42}},
		{"/products/42/", domain.Location{Page: domain.PageProductDetail, ProductID: 42}},
		{"/products/0", domain.Location{Page: domain.PageProductDetail, ProductID: 0}},
		{"/products/007", domain.Location{Page: domain.PageProductDetail, ProductID: 7}},
		{"/cart", domain.Location{Page: domain.PageCart}},
		{"/login", domain.Location{Page: domain.PageLogin}},
		{"/account", domain.Location{Page: domain.PageAccount}},
		{"/nonsense", domain.Location{Page: domain.PageHome}},
		{"/products/abc", domain.Location{Page: domain.PageHome}},
		{"/products/-1", domain.Location{Page: domain.PageHome}},
		{"/products/4/2", domain.Location{Page: domain.PageHome}},
		{"/products/99999999999999999999", domain.Location{Page: domain.PageHome}},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got := domain.ParsePath(tc.path)
			if got != tc.want {
				t.Errorf("ParsePath(%q) = %+v; want %+v", tc.path, got, tc.want)
			}
		})
	}
}

func TestLocationPath(t *testing.T) {
	tests := []struct {
		loc  domain.Location
		want string
	}{
		{domain.HomeLocation, "/"},
		{domain.PageLocation(domain.PageProductList), "/products"},
		{domain.PageLocation(domain.PageCart), "/cart"},
		{domain.PageLocation(domain.PageLogin), "/login"},
		{domain.PageLocation(domain.PageAccount), "/account"},
		{domain.ProductLocation(7), "/products/7"},
	}
	for _, tc := range tests {
		if got := tc.loc.Path(); got != tc.want {
			t.Errorf("%+v.Path() = %q; want %q", tc.loc, got, tc.want)
		}
		if back := domain.ParsePath(tc.want); back != tc.loc {
			t.Errorf("ParsePath(%q) = %+v; want %+v", tc.want, back, tc.loc)
		}
	}
}

func TestPageLocation_ProductDetailWithoutIDIsHome(t *testing.T) {
	if got := domain.PageLocation(domain.PageProductDetail); got != domain.HomeLocation {
		t.Errorf("expected home, got %+v", got)
	}
	if got := domain.PageLocation("bogus"); got != domain.HomeLocation {
		t.Errorf("expected home, got %+v", got)
	}
}
