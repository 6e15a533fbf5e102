package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/searchscope/web/internal/account"
	"github.com/searchscope/web/internal/backend"
	"github.com/searchscope/web/internal/entitlement"
	mw "github.com/searchscope/web/internal/middleware"
	"github.com/searchscope/web/internal/snapshot"
)

// PromptPage renders the prompt tracker.
func PromptPage(w http.ResponseWriter, r *http.Request) {
	snap, ok := restorePage(r, pagePrompt)
	if !ok {
		snap = snapshot.New(pagePrompt)
	}
	pd := basePage(r, "prompt.title")
	pd.Prompt = buildPromptView(mw.Lang(r), snap)
	renderPage(w, r, "prompt", pd)
}

// PromptSubmit runs prompt tracking. Guests get one capped demo run
// (identified to the backend by a demo client id), logged-in free tier
// gets the sample, paid tiers run live with overage metered per block.
func PromptSubmit(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	s := mw.GetSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	queriesRaw := r.FormValue("queries")
	targetURL := strings.TrimSpace(r.FormValue("url"))
	brand := strings.TrimSpace(r.FormValue("brand"))
	sources := r.Form["sources"]
	if len(sources) == 0 {
		sources = []string{"chatgpt"}
	}
	engines := r.Form["engines"]
	if len(engines) == 0 {
		engines = []string{"google"}
	}
	queries := splitLines(queriesRaw)

	snap := snapshot.New(pagePrompt)
	snap.Form = map[string]string{
		"queries": queriesRaw,
		"url":     targetURL,
		"brand":   brand,
		"sources": strings.Join(sources, ","),
		"engines": strings.Join(engines, ","),
	}

	if len(queries) == 0 {
		snap.OutputState = snapshot.StateError
		snap.ErrorText = i18nBundle.T(lang, "prompt.missing_query")
	} else {
		runPromptTracking(r, s, &snap, backend.PromptTrackRequest{
			Query:         queries[0],
			Queries:       queries,
			TargetURL:     targetURL,
			BrandName:     brand,
			LLMSources:    sources,
			SearchEngines: engines,
		}, len(queries))
	}

	savePage(r, snap)
	view := buildPromptView(lang, snap)
	if mw.IsHTMX(r.Context()) {
		renderTemplate(w, r, "frag_prompt_output", view)
		return
	}
	pd := basePage(r, "prompt.title")
	pd.Prompt = view
	renderPage(w, r, "prompt", pd)
}

func runPromptTracking(r *http.Request, s *mw.SessionData, snap *snapshot.PageSnapshot, req backend.PromptTrackRequest, batch int) {
	ctx := r.Context()
	token := s.Token

	if token == "" {
		// open beta demo: the backend caps usage per demo client, so the
		// id must stay stable across a guest's submits
		req.DemoClientID = s.EnsureDemoClientID()
	} else {
		tier := tierResolver.ResolveTier(ctx, token)
		if gate := entitlement.GateFeature(tier, "sample.prompt", account.TierPro, account.TierEnterprise); !gate.Allowed {
			snap.OutputState = snapshot.StateSample
			snap.Form["reason"] = string(gate.Reason)
			return
		}
		meter := entitlement.GateBatch(tier, batch, policies.PromptTrack, "sample.prompt")
		if !meter.Allowed {
			snap.OutputState = snapshot.StateSample
			snap.Form["reason"] = string(meter.Reason)
			return
		}
		if meter.AddOnCost > 0 {
			snap.Form["addon_cost"] = strconv.Itoa(meter.AddOnCost)
		}
	}

	_, raw, err := apiClient.PromptTrack(ctx, token, req)
	if err != nil {
		snap.OutputState = snapshot.StateError
		snap.ErrorText = errorText(mw.Lang(r), err)
		return
	}
	snap.OutputState = snapshot.StateResult
	snap.HasResult = true
	snap.Result = raw
}
