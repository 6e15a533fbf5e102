package main

import (
	"net/http"
	"strings"

	mw "github.com/searchscope/web/internal/middleware"
)

// AuthView drives the login and register forms.
type AuthView struct {
	Lang   string
	Mode   string // "login" or "register"
	Email  string
	Error  string
	Notice string
}

// LoginPage renders the login form.
func LoginPage(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	view := AuthView{Lang: lang, Mode: "login"}
	if r.URL.Query().Get("registered") == "1" {
		view.Notice = i18nBundle.T(lang, "auth.registered")
	}
	pd := basePage(r, "auth.login")
	pd.Auth = view
	renderPage(w, r, "auth", pd)
}

// LoginSubmit exchanges credentials for a bearer token and binds it to
// the session. The session id is regenerated to prevent fixation.
func LoginSubmit(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	s := mw.GetSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	tok, err := apiClient.Login(r.Context(), email, password)
	if err != nil || tok.AccessToken == "" {
		view := AuthView{Lang: lang, Mode: "login", Email: email}
		view.Error = i18nBundle.T(lang, "auth.login_failed")
		if err != nil {
			view.Error = view.Error + ": " + errorText(lang, err)
		}
		pd := basePage(r, "auth.login")
		pd.Auth = view
		renderPage(w, r, "auth", pd)
		return
	}

	if old := s.Token; old != "" {
		tierResolver.Invalidate(old)
	}
	s.Token = tok.AccessToken
	s.RegenerateID()
	http.Redirect(w, r, "/analyzer", http.StatusSeeOther)
}

// RegisterPage renders the registration form.
func RegisterPage(w http.ResponseWriter, r *http.Request) {
	pd := basePage(r, "auth.register")
	pd.Auth = AuthView{Lang: mw.Lang(r), Mode: "register"}
	renderPage(w, r, "auth", pd)
}

// RegisterSubmit creates an account and sends the user to the login form.
func RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if err := apiClient.Register(r.Context(), email, password); err != nil {
		view := AuthView{Lang: lang, Mode: "register", Email: email}
		view.Error = i18nBundle.T(lang, "auth.register_failed") + ": " + errorText(lang, err)
		pd := basePage(r, "auth.register")
		pd.Auth = view
		renderPage(w, r, "auth", pd)
		return
	}
	http.Redirect(w, r, "/auth/login?registered=1", http.StatusSeeOther)
}

// LogoutHandler drops the token and the cached tier.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	s := mw.GetSession(r)
	if s.Token != "" {
		tierResolver.Invalidate(s.Token)
		s.Token = ""
		s.MarkDirty()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
