package handlers

import (
	"github.com/searchscope/web/internal/nav"
	"github.com/searchscope/web/internal/seo"
)

// PageData is the generic view model for pages using the shared layout.
type PageData struct {
	Title     string
	Lang      string
	DocLang   string
	SEO       SEOData
	Analytics Analytics

	Path      string
	Nav       []nav.RenderedItem
	LoggedIn  bool
	CSRFToken string

	// Optional per-page view model payloads
	Landing   any
	Analyzer  any
	Keyword   any
	Prompt    any
	Optimizer any
	Auth      any
}

// SEOData carries the document head metadata for one page.
type SEOData struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          seo.OpenGraph
	Twitter     seo.Twitter
	Alternates  []struct{ Href, Hreflang string }
	JSONLD      []string
}
