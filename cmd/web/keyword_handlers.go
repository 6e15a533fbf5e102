package main

import (
	"net/http"
	"strings"

	"github.com/searchscope/web/internal/account"
	"github.com/searchscope/web/internal/backend"
	"github.com/searchscope/web/internal/entitlement"
	mw "github.com/searchscope/web/internal/middleware"
	"github.com/searchscope/web/internal/snapshot"
)

// KeywordPage renders the keyword rank tracker.
func KeywordPage(w http.ResponseWriter, r *http.Request) {
	snap, ok := restorePage(r, pageKeyword)
	if !ok {
		snap = snapshot.New(pageKeyword)
	}
	pd := basePage(r, "keyword.title")
	pd.Keyword = buildKeywordView(mw.Lang(r), snap)
	renderPage(w, r, "keyword", pd)
}

// KeywordSubmit runs rank tracking for the submitted keyword list. Free
// tier is limited to a single keyword; larger batches get the sample.
func KeywordSubmit(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	s := mw.GetSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	queriesRaw := r.FormValue("queries")
	targetURL := strings.TrimSpace(r.FormValue("url"))
	engines := r.Form["engines"]
	if len(engines) == 0 {
		engines = []string{"google"}
	}
	queries := splitLines(queriesRaw)

	snap := snapshot.New(pageKeyword)
	snap.Form = map[string]string{
		"queries": queriesRaw,
		"url":     targetURL,
		"engines": strings.Join(engines, ","),
	}

	if len(queries) == 0 {
		snap.OutputState = snapshot.StateError
		snap.ErrorText = i18nBundle.T(lang, "keyword.missing_query")
	} else {
		token := s.Token
		tier := account.TierFree
		if token != "" {
			tier = tierResolver.ResolveTier(r.Context(), token)
		}
		gate := entitlement.GateBatch(tier, len(queries), policies.KeywordRank, "sample.keyword")
		if !gate.Allowed {
			snap.OutputState = snapshot.StateSample
			snap.Form["reason"] = string(gate.Reason)
		} else {
			_, raw, err := apiClient.SearchRank(r.Context(), token, backend.SearchRankRequest{
				Query:     queries[0],
				Queries:   queries,
				TargetURL: targetURL,
				Engines:   engines,
			})
			if err != nil {
				snap.OutputState = snapshot.StateError
				snap.ErrorText = errorText(lang, err)
			} else {
				snap.OutputState = snapshot.StateResult
				snap.HasResult = true
				snap.Result = raw
			}
		}
	}

	savePage(r, snap)
	view := buildKeywordView(lang, snap)
	if mw.IsHTMX(r.Context()) {
		renderTemplate(w, r, "frag_keyword_output", view)
		return
	}
	pd := basePage(r, "keyword.title")
	pd.Keyword = view
	renderPage(w, r, "keyword", pd)
}
