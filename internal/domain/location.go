package domain

import (
	"strconv"
	"strings"
)

// PageKind enumerates the pages the storefront can show.
type PageKind string

const (
	PageHome          PageKind = "home"
	PageProductList   PageKind = "product-list"
	PageProductDetail PageKind = "product-detail"
	PageCart          PageKind = "cart"
	PageLogin         PageKind = "login"
	PageAccount       PageKind = "account"
)

// Location is the page currently shown. ProductID is only meaningful when
// Page is PageProductDetail; zero is a valid id there.
type Location struct {
	Page      PageKind
	ProductID int64
}

// HomeLocation is where unknown paths end up.
var HomeLocation = Location{Page: PageHome}

// ProductLocation returns the detail location for id.
func ProductLocation(id int64) Location {
	return Location{Page: PageProductDetail, ProductID: id}
}

// PageLocation returns the location for a page that carries no product.
// PageProductDetail without an id is not addressable and maps to home.
func PageLocation(kind PageKind) Location {
	if kind == PageProductDetail {
		return HomeLocation
	}
	if _, ok := canonicalPaths[kind]; !ok {
		return HomeLocation
	}
	return Location{Page: kind}
}

var canonicalPaths = map[PageKind]string{
	PageHome:        "/",
	PageProductList: "/products",
	PageCart:        "/cart",
	PageLogin:       "/login",
	PageAccount:     "/account",
}

// Path returns the canonical URL path for the location.
func (l Location) Path() string {
	if l.Page == PageProductDetail {
		return "/products/" + strconv.FormatInt(l.ProductID, 10)
	}
	if p, ok := canonicalPaths[l.Page]; ok {
		return p
	}
	return "/"
}

// ParsePath maps a URL path to a location. Unrecognised paths resolve to home.
func ParsePath(path string) Location {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	switch path {
	case "", "/":
		return HomeLocation
	case "/products":
		return Location{Page: PageProductList}
	case "/cart":
		return Location{Page: PageCart}
	case "/login":
		return Location{Page: PageLogin}
	case "/account":
		return Location{Page: PageAccount}
	}

	rest, ok := strings.CutPrefix(path, "/products/")
	if !ok || !allDigits(rest) {
		return HomeLocation
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return HomeLocation
	}
	return ProductLocation(id)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
