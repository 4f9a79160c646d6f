package adapthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/app"
	"storefront/internal/domain"
)

var oauthProviders = map[string]bool{
	"google":   true,
	"facebook": true,
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c := clientFrom(ctx)
	c.flash = flash{}

	creds := domain.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := s.accounts.Login(ctx, c.shell.Auth, creds); err != nil {
		s.log.WithError(err).WithField("client", c.id).Info("login failed")
		c.flash.Error = app.UserMessage(err, app.MsgLoginFailed)
		c.shell.Router.Navigate(domain.PageLogin)
		s.seeOther(w, r, c, "")
		return
	}

	c.shell.Router.Navigate(domain.PageHome)
	s.seeOther(w, r, c, "")
}

// handleSignup registers an account and switches the login page back to
// login mode.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c := clientFrom(ctx)
	c.flash = flash{}

	creds := domain.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	err := s.accounts.Register(ctx, creds, r.PostFormValue("confirm_password"))
	c.shell.Router.Navigate(domain.PageLogin)
	if err != nil {
		c.flash.Error = app.UserMessage(err, app.MsgSignUpFailed)
		s.seeOther(w, r, c, "mode=signup")
		return
	}

	c.flash.Success = app.MsgSignedUp
	s.seeOther(w, r, c, "")
}

// handleLogout ends the session locally and stays on the current page.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c := clientFrom(ctx)
	c.flash = flash{}

	if err := s.accounts.Logout(ctx, c.shell.Auth); err != nil {
		s.log.WithError(err).WithField("client", c.id).Warn("logout: token not removed")
	}
	s.seeOther(w, r, c, "")
}

// handleOAuth sends the browser to the users API to start a provider login.
func (s *Server) handleOAuth(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	if !oauthProviders[provider] {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, s.apiBaseURL+"/api/users/oauth/"+provider+"/login", http.StatusFound)
}
