// Package app holds the storefront state stores, the view router and the
// page services that talk to the external API.
package app

import (
	"errors"

	"storefront/internal/domain"
)

var (
	// ErrPasswordMismatch indicates that the sign-up password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrDiscarded indicates that a request completed after its caller went away
	// and its result was dropped.
	ErrDiscarded = errors.New("result discarded")
	// ErrNotLoggedIn indicates that an operation needs a logged-in user.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrForbidden indicates that an operation needs an admin user.
	ErrForbidden = errors.New("admin only")
)

// Messages shown to shoppers.
const (
	MsgNetwork          = "Network error. Please check your connection and try again."
	MsgPasswordMismatch = "Passwords do not match"
	MsgMissingFields    = "Please fill in all required fields."
	MsgLoginFailed      = "Login failed"
	MsgSignUpFailed     = "Sign up failed"
	MsgAddProduct       = "Failed to add product"
	MsgAddBox           = "Failed to add subscription box"
	MsgFetchProducts    = "Failed to fetch products"
	MsgFetchBoxes       = "Failed to fetch subscription boxes"
	MsgNotLoggedIn      = "Please log in to see your account details."
	MsgForbidden        = "Only administrators can do that."
	MsgProductNotFound  = "Product not found"
	MsgHistory          = "Failed to load your order history"

	MsgCheckout     = "Checkout initiated! This is where we would call the order service."
	MsgSignedUp     = "Account created. Please log in."
	MsgProductAdded = "Product added successfully!"
	MsgBoxAdded     = "Subscription box added successfully!"
)

// UserMessage turns err into the string a view displays. A non-success API
// response yields its body message, or fallback when it carries none. A
// request that never completed yields MsgNetwork. Discarded results yield "".
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var remote *domain.RemoteError
	switch {
	case errors.Is(err, ErrDiscarded):
		return ""
	case errors.As(err, &remote):
		if remote.Message != "" {
			return remote.Message
		}
		return fallback
	case errors.Is(err, domain.ErrUnavailable):
		return MsgNetwork
	case errors.Is(err, ErrPasswordMismatch):
		return MsgPasswordMismatch
	case errors.Is(err, domain.ErrInvalidDraft):
		return MsgMissingFields
	case errors.Is(err, ErrNotLoggedIn):
		return MsgNotLoggedIn
	case errors.Is(err, ErrForbidden):
		return MsgForbidden
	}
	return fallback
}
