package adapthttp

import (
	"net/http"

	"storefront/internal/app"
)

// handleCartAdd adds one unit of a product. The product is looked up in the
// catalog so the cart never holds client-supplied names or prices.
func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c := clientFrom(ctx)
	c.flash = flash{}

	id, ok := formInt64(r, "product_id")
	if !ok {
		c.flash.Error = app.MsgProductNotFound
		s.seeOther(w, r, c, "")
		return
	}

	p, err := s.catalog.Product(ctx, id)
	switch {
	case err != nil:
		c.flash.Error = app.DetailMessage(err)
	case p == nil:
		c.flash.Error = app.MsgProductNotFound
	default:
		c.shell.Cart.Add(*p)
	}
	s.seeOther(w, r, c, "")
}

// handleCartUpdate sets a line's quantity. Zero or less removes the line;
// input that is not a number is ignored.
func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	c := clientFrom(r.Context())
	c.flash = flash{}

	id, okID := formInt64(r, "product_id")
	qty, okQty := formInt(r, "quantity")
	if okID && okQty {
		c.shell.Cart.SetQuantity(id, qty)
	}
	s.seeOther(w, r, c, "")
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	c := clientFrom(r.Context())
	c.flash = flash{}

	if id, ok := formInt64(r, "product_id"); ok {
		c.shell.Cart.Remove(id)
	}
	s.seeOther(w, r, c, "")
}

// handleCheckout acknowledges the checkout. No order is placed.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	c := clientFrom(r.Context())
	c.flash = flash{}

	if !c.shell.Cart.Snapshot().Empty() {
		c.flash.Success = app.MsgCheckout
		s.log.WithField("client", c.id).WithField("total", c.shell.Cart.Total()).Info("checkout initiated")
	}
	s.seeOther(w, r, c, "")
}
