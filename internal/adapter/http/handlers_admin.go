package adapthttp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/app"
	"storefront/internal/domain"
)

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c := clientFrom(ctx)
	c.flash = flash{}

	draft := domain.ProductDraft{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Scent:       strings.TrimSpace(r.PostFormValue("scent")),
		Price:       formPrice(r, "price"),
		Image:       strings.TrimSpace(r.PostFormValue("image")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}
	_, err := s.catalog.CreateProduct(ctx, c.shell.Auth.User(), draft)
	if forbidden(err) {
		http.Error(w, app.UserMessage(err, ""), http.StatusForbidden)
		return
	}
	if err != nil {
		c.flash.Error = app.UserMessage(err, app.MsgAddProduct)
	} else {
		c.flash.Success = app.MsgProductAdded
	}
	c.shell.Router.Navigate(domain.PageAccount)
	s.seeOther(w, r, c, "")
}

func (s *Server) handleCreateSubscriptionBox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c := clientFrom(ctx)
	c.flash = flash{}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	ids := []int64{}
	for _, v := range r.PostForm["product_ids"] {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	draft := domain.SubscriptionBoxDraft{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Price:       formPrice(r, "price"),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		ProductIDs:  ids,
	}
	_, err := s.catalog.CreateSubscriptionBox(ctx, c.shell.Auth.User(), draft)
	if forbidden(err) {
		http.Error(w, app.UserMessage(err, ""), http.StatusForbidden)
		return
	}
	if err != nil {
		c.flash.Error = app.UserMessage(err, app.MsgAddBox)
	} else {
		c.flash.Success = app.MsgBoxAdded
	}
	c.shell.Router.Navigate(domain.PageAccount)
	s.seeOther(w, r, c, "")
}

func forbidden(err error) bool {
	return errors.Is(err, app.ErrForbidden) || errors.Is(err, app.ErrNotLoggedIn)
}
