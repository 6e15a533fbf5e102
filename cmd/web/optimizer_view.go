package main

import (
	"encoding/json"
	"time"

	"github.com/searchscope/web/internal/backend"
	"github.com/searchscope/web/internal/entitlement"
	"github.com/searchscope/web/internal/report"
	"github.com/searchscope/web/internal/snapshot"
)

// OptimizerView is the optimizer page view model.
type OptimizerView struct {
	Lang        string
	URL         string
	State       snapshot.State
	ErrorText   string
	Notice      string
	SampleJSON  string
	Board       *report.RecommendationBoard
	GeneratedAt time.Time
}

func buildOptimizerView(lang string, snap snapshot.PageSnapshot) OptimizerView {
	view := OptimizerView{
		Lang:        lang,
		URL:         snap.Form["url"],
		State:       snap.OutputState,
		GeneratedAt: snap.SavedAt,
	}
	if reason := snap.Form["reason"]; reason != "" {
		if key := noticeKey(pageOptimizer, entitlement.Reason(reason)); key != "" {
			view.Notice = i18nBundle.T(lang, key)
		}
	}

	switch snap.OutputState {
	case snapshot.StateResult:
		var res backend.RecommendResult
		if err := json.Unmarshal(snap.Result, &res); err != nil {
			view.State = snapshot.StateIdle
			return view
		}
		board := report.BuildRecommendationBoard(res.Result.Recommendations)
		view.Board = &board
	case snapshot.StateError:
		view.ErrorText = snap.ErrorText
	case snapshot.StateSample:
		view.SampleJSON = i18nBundle.T(lang, "sample.optimizer")
	}
	return view
}
