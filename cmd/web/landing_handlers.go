package main

import (
	"net/http"

	"go.uber.org/zap"

	mw "github.com/searchscope/web/internal/middleware"
	"github.com/searchscope/web/internal/observability"
	"github.com/searchscope/web/internal/seo"
)

// LandingHandler renders the marketing landing page.
func LandingHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	pd := basePage(r, "landing.hero_title")
	pd.Title = i18nBundle.T(lang, "brand.name")
	pd.SEO.Title = pd.Title + " | " + i18nBundle.T(lang, "brand.tagline")
	pd.SEO.JSONLD = []string{
		seo.JSON(seo.Organization(pd.Title, absoluteURL(r), "")),
		seo.JSON(seo.WebSite(pd.Title, absoluteOrigin(r))),
		seo.JSON(seo.SoftwareApplication(pd.Title, pd.SEO.Description, absoluteURL(r))),
	}
	pd.Landing = buildLandingView(lang, r.URL.Query().Get("checkout") == "failed")
	renderPage(w, r, "landing", pd)
}

// CheckoutHandler starts a hosted checkout for the selected plan.
// Enterprise routes to the inquiry section and free straight into the
// product; only pro reaches the billing backend.
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	s := mw.GetSession(r)

	switch r.FormValue("plan") {
	case "enterprise":
		http.Redirect(w, r, "/#inquiry", http.StatusSeeOther)
	case "free":
		http.Redirect(w, r, "/analyzer", http.StatusSeeOther)
	case "pro":
		if s.Token == "" {
			http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
			return
		}
		base := absoluteOrigin(r)
		session, err := apiClient.CreateCheckoutSession(r.Context(), s.Token, "pro",
			base+"/?checkout=success", base+"/?checkout=cancelled")
		if err != nil || session.CheckoutURL == "" {
			observability.FromContext(r.Context()).Warn("checkout session failed", zap.Error(err))
			http.Redirect(w, r, "/?checkout=failed", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, session.CheckoutURL, http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func absoluteOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
