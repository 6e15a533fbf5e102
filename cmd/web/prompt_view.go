package main

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/searchscope/web/internal/backend"
	"github.com/searchscope/web/internal/entitlement"
	"github.com/searchscope/web/internal/format"
	"github.com/searchscope/web/internal/report"
	"github.com/searchscope/web/internal/snapshot"
)

var (
	promptSources = []string{"chatgpt", "perplexity", "gemini"}
	promptEngines = []string{"google", "bing"}
)

// PromptView is the prompt tracker page view model.
type PromptView struct {
	Lang        string
	QueriesRaw  string
	URL         string
	Brand       string
	Sources     []EngineOption
	Engines     []EngineOption
	State       snapshot.State
	ErrorText   string
	Notice      string
	SampleJSON  string
	Board       *report.MentionBoard
	GeneratedAt time.Time
}

func checkedOptions(all []string, selected, fallback string) []EngineOption {
	if selected == "" {
		selected = fallback
	}
	opts := make([]EngineOption, 0, len(all))
	for _, id := range all {
		opts = append(opts, EngineOption{
			ID:      id,
			Checked: strings.Contains(","+selected+",", ","+id+","),
		})
	}
	return opts
}

func buildPromptView(lang string, snap snapshot.PageSnapshot) PromptView {
	view := PromptView{
		Lang:        lang,
		QueriesRaw:  snap.Form["queries"],
		URL:         snap.Form["url"],
		Brand:       snap.Form["brand"],
		Sources:     checkedOptions(promptSources, snap.Form["sources"], "chatgpt"),
		Engines:     checkedOptions(promptEngines, snap.Form["engines"], "google"),
		State:       snap.OutputState,
		GeneratedAt: snap.SavedAt,
	}
	if reason := snap.Form["reason"]; reason != "" {
		if key := noticeKey(pagePrompt, entitlement.Reason(reason)); key != "" {
			view.Notice = i18nBundle.T(lang, key)
		}
	}
	if raw := snap.Form["addon_cost"]; raw != "" {
		if cost, err := strconv.Atoi(raw); err == nil && cost > 0 {
			view.Notice = strings.ReplaceAll(
				i18nBundle.T(lang, "prompt.addon_estimate"),
				"${amount}", format.USD(float64(cost)))
		}
	}

	switch snap.OutputState {
	case snapshot.StateResult:
		var res backend.PromptTrackResult
		if err := json.Unmarshal(snap.Result, &res); err != nil {
			view.State = snapshot.StateIdle
			return view
		}
		board := report.BuildMentionBoard(res, i18nBundle.Func(lang))
		view.Board = &board
	case snapshot.StateError:
		view.ErrorText = snap.ErrorText
	case snapshot.StateSample:
		view.SampleJSON = i18nBundle.T(lang, "sample.prompt")
	}
	return view
}
