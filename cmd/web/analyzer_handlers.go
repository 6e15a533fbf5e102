package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/searchscope/web/internal/account"
	"github.com/searchscope/web/internal/backend"
	"github.com/searchscope/web/internal/entitlement"
	mw "github.com/searchscope/web/internal/middleware"
	"github.com/searchscope/web/internal/observability"
	"github.com/searchscope/web/internal/snapshot"
)

const maxCompetitorFetches = 4

// AnalyzerPage renders the dashboard page, replaying the saved display
// state when one exists.
func AnalyzerPage(w http.ResponseWriter, r *http.Request) {
	snap, ok := restorePage(r, pageAnalyzer)
	if !ok {
		snap = snapshot.New(pageAnalyzer)
	}
	pd := basePage(r, "analyzer.title")
	pd.Analyzer = buildAnalyzerView(mw.Lang(r), snap)
	renderPage(w, r, "analyzer", pd)
}

// AnalyzerSubmit runs one analysis and saves the outcome as the page's
// new display state.
func AnalyzerSubmit(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	s := mw.GetSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	targetURL := strings.TrimSpace(r.FormValue("url"))
	competitorsRaw := r.FormValue("competitors")

	snap := snapshot.New(pageAnalyzer)
	snap.Form = map[string]string{"url": targetURL, "competitors": competitorsRaw}

	switch {
	case targetURL == "":
		snap.OutputState = snapshot.StateError
		snap.ErrorText = i18nBundle.T(lang, "analyzer.missing_url")
	default:
		runAnalysis(r, s, snap.Form, &snap, targetURL, splitLines(competitorsRaw))
	}

	savePage(r, snap)
	view := buildAnalyzerView(lang, snap)
	if mw.IsHTMX(r.Context()) {
		renderTemplate(w, r, "frag_analyzer_output", view)
		return
	}
	pd := basePage(r, "analyzer.title")
	pd.Analyzer = view
	renderPage(w, r, "analyzer", pd)
}

func runAnalysis(r *http.Request, s *mw.SessionData, form map[string]string, snap *snapshot.PageSnapshot, targetURL string, competitors []string) {
	ctx := r.Context()
	token := s.Token

	if d := entitlement.GateGuestQuota(token != "", s.GuestAnalysisUsed, "sample.analyzer"); !d.Allowed {
		snap.OutputState = snapshot.StateSample
		form["reason"] = string(d.Reason)
		return
	}

	tier := account.TierFree
	if token != "" {
		tier = tierResolver.ResolveTier(ctx, token)
	}
	gate := entitlement.GateBatch(tier, len(competitors), policies.Competitors, "sample.analyzer")
	if !gate.Allowed {
		snap.OutputState = snapshot.StateSample
		form["reason"] = string(gate.Reason)
		return
	}

	_, primaryRaw, err := apiClient.Analyze(ctx, token, backend.AnalyzeRequest{
		URL:        targetURL,
		IncludeAEO: true,
	})
	if err != nil {
		snap.OutputState = snapshot.StateError
		snap.ErrorText = errorText(mw.Lang(r), err)
		return
	}

	payload := analyzerPayload{
		Primary:     primaryRaw,
		Competitors: fetchCompetitors(r, token, competitors),
		AddOnCost:   gate.AddOnCost,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		snap.OutputState = snapshot.StateError
		snap.ErrorText = i18nBundle.T(mw.Lang(r), "error.generic")
		return
	}

	snap.OutputState = snapshot.StateResult
	snap.HasResult = true
	snap.Result = body
	if token == "" {
		s.GuestAnalysisUsed = true
		s.MarkDirty()
	}
}

// fetchCompetitors analyzes competitor URLs concurrently. A failed fetch
// drops that competitor from the comparison instead of failing the page.
func fetchCompetitors(r *http.Request, token string, urls []string) []json.RawMessage {
	if len(urls) == 0 {
		return nil
	}
	results := make([]json.RawMessage, len(urls))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(maxCompetitorFetches)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			_, raw, err := apiClient.Analyze(ctx, token, backend.AnalyzeRequest{URL: u, IncludeAEO: true})
			if err != nil {
				observability.FromContext(ctx).Debug("competitor fetch dropped",
					zap.String("url", u), zap.Error(err))
				return nil
			}
			results[i] = raw
			return nil
		})
	}
	_ = g.Wait()

	kept := results[:0]
	for _, raw := range results {
		if raw != nil {
			kept = append(kept, raw)
		}
	}
	return kept
}
