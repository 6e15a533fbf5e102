package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/searchscope/web/internal/format"
	"github.com/searchscope/web/internal/handlers"
	"github.com/searchscope/web/internal/i18n"
	mw "github.com/searchscope/web/internal/middleware"
	"github.com/searchscope/web/internal/nav"
	"github.com/searchscope/web/internal/report"
)

var tmplCache *template.Template

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		"t": func(lang, key string) string {
			return i18nBundle.T(lang, key)
		},
		"latency": format.Latency,
		// chartjson serializes a chart config for the page bootstrap script
		"chartjson": func(v any) template.JS {
			b, err := json.Marshal(v)
			if err != nil {
				return "null"
			}
			return template.JS(b)
		},
		// safeJSONLD injects a pre-marshaled schema.org payload verbatim
		"safeJSONLD": func(s string) template.JS { return template.JS(s) },
		"badgeClass": report.BadgeClass,
		"badgeKey":   report.BadgeLabelKey,
		"issueRows": func(lang string, rows any) map[string]any {
			return map[string]any{"Lang": lang, "Rows": rows}
		},
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func currentTemplates(w http.ResponseWriter) *template.Template {
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	if tmplCache == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return nil
	}
	return tmplCache
}

// renderPage executes a full page template. In dev mode, templates are
// reparsed on each request.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data handlers.PageData) {
	t := currentTemplates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// renderTemplate executes a fragment template for HTMX swaps.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := currentTemplates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// i18nOrDefault resolves key for lang and falls back to def when the
// bundle has no translation at all.
func i18nOrDefault(lang, key, def string) string {
	if v := i18nBundle.T(lang, key); v != key {
		return v
	}
	return def
}

// basePage builds the shared layout fields for one request.
func basePage(r *http.Request, titleKey string) handlers.PageData {
	lang := mw.Lang(r)
	s := mw.GetSession(r)
	title := i18nBundle.T(lang, titleKey)
	brand := i18nBundle.T(lang, "brand.name")

	pd := handlers.PageData{
		Title:     title,
		Lang:      lang,
		DocLang:   i18n.DocumentLang(lang),
		Path:      r.URL.Path,
		Nav:       nav.Build(r.URL.Path),
		LoggedIn:  s.Authenticated(),
		CSRFToken: s.CSRFToken,
		Analytics: handlers.LoadAnalyticsFromEnv(),
	}
	pd.SEO.Title = title + " | " + brand
	pd.SEO.Description = i18nBundle.T(lang, "brand.tagline")
	pd.SEO.Canonical = absoluteURL(r)
	pd.SEO.OG.URL = pd.SEO.Canonical
	pd.SEO.OG.SiteName = brand
	pd.SEO.OG.Title = pd.SEO.Title
	pd.SEO.OG.Description = pd.SEO.Description
	pd.SEO.OG.Type = "website"
	pd.SEO.Twitter.Card = "summary_large_image"
	return pd
}

func absoluteURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path
}

// splitLines breaks a textarea value into trimmed non-empty lines.
func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
