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

// OptimizerPage renders the recommendation workflow page.
func OptimizerPage(w http.ResponseWriter, r *http.Request) {
	snap, ok := restorePage(r, pageOptimizer)
	if !ok {
		snap = snapshot.New(pageOptimizer)
	}
	pd := basePage(r, "optimizer.title")
	pd.Optimizer = buildOptimizerView(mw.Lang(r), snap)
	renderPage(w, r, "optimizer", pd)
}

// OptimizerSubmit generates recommendations. The feature requires a
// login and a paid tier; free tier sees the sample payload.
func OptimizerSubmit(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	s := mw.GetSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	targetURL := strings.TrimSpace(r.FormValue("url"))

	snap := snapshot.New(pageOptimizer)
	snap.Form = map[string]string{"url": targetURL}

	switch {
	case targetURL == "":
		snap.OutputState = snapshot.StateError
		snap.ErrorText = i18nBundle.T(lang, "analyzer.missing_url")
	case s.Token == "":
		snap.OutputState = snapshot.StateSample
		snap.Form["reason"] = string(entitlement.ReasonLoginRequired)
	default:
		tier := tierResolver.ResolveTier(r.Context(), s.Token)
		gate := entitlement.GateFeature(tier, "sample.optimizer", account.TierPro, account.TierEnterprise)
		if !gate.Allowed {
			snap.OutputState = snapshot.StateSample
			snap.Form["reason"] = string(gate.Reason)
		} else {
			_, raw, err := apiClient.Recommend(r.Context(), s.Token, backend.RecommendRequest{URL: targetURL})
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
	view := buildOptimizerView(lang, snap)
	if mw.IsHTMX(r.Context()) {
		renderTemplate(w, r, "frag_optimizer_output", view)
		return
	}
	pd := basePage(r, "optimizer.title")
	pd.Optimizer = view
	renderPage(w, r, "optimizer", pd)
}
