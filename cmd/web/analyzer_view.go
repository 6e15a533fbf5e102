package main

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/searchscope/web/internal/backend"
	"github.com/searchscope/web/internal/entitlement"
	"github.com/searchscope/web/internal/format"
	"github.com/searchscope/web/internal/report"
	"github.com/searchscope/web/internal/snapshot"
)

// AnalyzerView is everything the analyzer page and its output fragment need.
type AnalyzerView struct {
	Lang           string
	URL            string
	CompetitorsRaw string
	State          snapshot.State
	ErrorText      string
	Notice         string
	AddOnCost      int
	SampleJSON     string
	Dashboard      *report.Dashboard
	Comparison     *report.Comparison
	GeneratedAt    time.Time
}

// analyzerPayload is the snapshot body for a successful analysis: raw
// backend responses, so a restore decodes through the same path as a
// live response.
type analyzerPayload struct {
	Primary     json.RawMessage   `json:"primary"`
	Competitors []json.RawMessage `json:"competitors"`
	AddOnCost   int               `json:"addon_cost"`
}

// buildAnalyzerView maps a snapshot (fresh or restored) into the view.
// Localized texts resolve at render time so a locale switch re-renders a
// restored result translated.
func buildAnalyzerView(lang string, snap snapshot.PageSnapshot) AnalyzerView {
	view := AnalyzerView{
		Lang:           lang,
		URL:            snap.Form["url"],
		CompetitorsRaw: snap.Form["competitors"],
		State:          snap.OutputState,
		GeneratedAt:    snap.SavedAt,
	}
	if reason := snap.Form["reason"]; reason != "" {
		if key := noticeKey(pageAnalyzer, entitlement.Reason(reason)); key != "" {
			view.Notice = i18nBundle.T(lang, key)
		}
	}

	switch snap.OutputState {
	case snapshot.StateResult:
		var payload analyzerPayload
		if err := json.Unmarshal(snap.Result, &payload); err != nil {
			view.State = snapshot.StateIdle
			return view
		}
		var primary backend.AnalysisReport
		if err := json.Unmarshal(payload.Primary, &primary); err != nil {
			view.State = snapshot.StateIdle
			return view
		}
		t := i18nBundle.Func(lang)
		dash := report.BuildDashboard(primary, t)
		view.Dashboard = &dash
		view.AddOnCost = payload.AddOnCost
		if payload.AddOnCost > 0 {
			view.Notice = strings.ReplaceAll(
				i18nBundle.T(lang, "analyzer.addon_notice"),
				"${amount}", format.USD(float64(payload.AddOnCost)))
		}
		if len(payload.Competitors) > 0 {
			reports := make([]backend.AnalysisReport, 0, len(payload.Competitors))
			for _, raw := range payload.Competitors {
				var rep backend.AnalysisReport
				if err := json.Unmarshal(raw, &rep); err == nil {
					reports = append(reports, rep)
				}
			}
			cmp := report.BuildComparison(primary, reports, t)
			view.Comparison = &cmp
		}
	case snapshot.StateError:
		view.ErrorText = snap.ErrorText
	case snapshot.StateSample:
		view.SampleJSON = i18nBundle.T(lang, "sample.analyzer")
	}
	return view
}
