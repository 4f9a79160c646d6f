package adapthttp

import (
	"context"
	"net/http"

	"storefront/internal/app"
	"storefront/internal/domain"
)

// handlePage serves every page view. The router resolves the path; unknown
// paths land on home.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c := clientFrom(ctx)
	loc := c.shell.Router.Pop(r.URL.Path)
	data := s.baseData(c, loc)

	switch loc.Page {
	case domain.PageHome:
		products, err := s.catalog.Featured(ctx)
		data.Featured = products
		data.Error = app.UserMessage(err, app.MsgFetchProducts)

	case domain.PageProductList:
		products, err := s.catalog.Products(ctx)
		data.Products = products
		data.Error = app.UserMessage(err, app.MsgFetchProducts)
		boxes, err := s.catalog.SubscriptionBoxes(ctx)
		data.Boxes = boxes
		data.BoxesError = app.UserMessage(err, app.MsgFetchBoxes)

	case domain.PageProductDetail:
		p, err := s.catalog.Product(ctx, loc.ProductID)
		switch {
		case err != nil:
			data.Error = app.DetailMessage(err)
		case p == nil:
			data.Error = app.MsgProductNotFound
		default:
			data.Product = p
			data.Title = p.Name
		}

	case domain.PageCart:
		data.Cart = c.shell.Cart.Snapshot()

	case domain.PageLogin:
		data.Signup = r.URL.Query().Get("mode") == "signup"

	case domain.PageAccount:
		s.loadAccount(ctx, &data)
	}

	s.render(w, r, data)
}

func (s *Server) baseData(c *client, loc domain.Location) pageData {
	return pageData{
		Page:      loc.Page,
		Path:      loc.Path(),
		User:      c.shell.Auth.User(),
		CartCount: c.shell.Cart.Count(),
		Flash:     c.takeFlash(),
	}
}

// loadAccount fills the account page for the logged-in user. Admins also get
// the product list for the subscription box form.
func (s *Server) loadAccount(ctx context.Context, data *pageData) {
	if data.User == nil {
		return
	}
	history, err := s.accounts.History(ctx, data.User)
	data.History = history
	data.Error = app.UserMessage(err, app.MsgHistory)

	if data.User.IsAdmin {
		products, err := s.catalog.Products(ctx)
		data.Products = products
		data.SelectionError = app.UserMessage(err, app.MsgFetchProducts)
	}
}
