package adapthttp

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"storefront/internal/app"
	"storefront/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = map[domain.PageKind]string{
	domain.PageHome:          "home.html",
	domain.PageProductList:   "products.html",
	domain.PageProductDetail: "product.html",
	domain.PageCart:          "cart.html",
	domain.PageLogin:         "login.html",
	domain.PageAccount:       "account.html",
}

var pageTitles = map[domain.PageKind]string{
	domain.PageHome:          "Mixie Melts",
	domain.PageProductList:   "Our Collection",
	domain.PageProductDetail: "Product",
	domain.PageCart:          "Your Shopping Cart",
	domain.PageLogin:         "Login",
	domain.PageAccount:       "My Account",
}

// pageData is the input of every page template. Only the fields of the
// rendered page are set.
type pageData struct {
	Title     string
	Page      domain.PageKind
	Path      string
	User      *domain.User
	CartCount int
	Flash     flash

	// Error is the load error of the page's own data.
	Error string

	Featured       []domain.Product
	Products       []domain.Product
	Boxes          []domain.SubscriptionBox
	BoxesError     string
	SelectionError string
	Product        *domain.Product
	Cart           domain.Cart
	Signup         bool
	History        app.AccountHistory
}

// productCard is the input of the product-card partial. From is the path of
// the page showing the card.
type productCard struct {
	Product domain.Product
	From    string
}

type renderer struct {
	pages map[domain.PageKind]*template.Template
}

var templateFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"amount": func(v float64) string {
		return fmt.Sprintf("%g", v)
	},
	"card": func(p domain.Product, from string) productCard {
		return productCard{Product: p, From: from}
	},
}

func mustParseTemplates() *renderer {
	r := &renderer{pages: make(map[domain.PageKind]*template.Template, len(pageTemplates))}
	for kind, file := range pageTemplates {
		r.pages[kind] = template.Must(template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+file))
	}
	return r
}

// render writes the page for data.Page. Template failures are logged and
// answered with 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, data pageData) {
	tmpl, ok := s.pages.pages[data.Page]
	if !ok {
		tmpl = s.pages.pages[domain.PageHome]
	}
	if data.Title == "" {
		data.Title = pageTitles[data.Page]
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.log.WithError(err).WithField("page", data.Page).Error("render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
