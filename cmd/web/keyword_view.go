package main

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/searchscope/web/internal/backend"
	"github.com/searchscope/web/internal/entitlement"
	"github.com/searchscope/web/internal/report"
	"github.com/searchscope/web/internal/snapshot"
)

var keywordEngines = []string{"google", "bing"}

// EngineOption is one engine checkbox on the keyword form.
type EngineOption struct {
	ID      string
	Checked bool
}

// KeywordView is the keyword rank page view model.
type KeywordView struct {
	Lang        string
	QueriesRaw  string
	URL         string
	Engines     []EngineOption
	State       snapshot.State
	ErrorText   string
	Notice      string
	SampleJSON  string
	Table       *report.RankTable
	GeneratedAt time.Time
}

func buildKeywordView(lang string, snap snapshot.PageSnapshot) KeywordView {
	selected := snap.Form["engines"]
	if selected == "" {
		selected = "google"
	}
	view := KeywordView{
		Lang:        lang,
		QueriesRaw:  snap.Form["queries"],
		URL:         snap.Form["url"],
		State:       snap.OutputState,
		GeneratedAt: snap.SavedAt,
	}
	for _, engine := range keywordEngines {
		view.Engines = append(view.Engines, EngineOption{
			ID:      engine,
			Checked: strings.Contains(","+selected+",", ","+engine+","),
		})
	}
	if reason := snap.Form["reason"]; reason != "" {
		if key := noticeKey(pageKeyword, entitlement.Reason(reason)); key != "" {
			view.Notice = i18nBundle.T(lang, key)
		}
	}

	switch snap.OutputState {
	case snapshot.StateResult:
		var res backend.SearchRankResult
		if err := json.Unmarshal(snap.Result, &res); err != nil {
			view.State = snapshot.StateIdle
			return view
		}
		table := report.BuildRankTable(res, i18nBundle.Func(lang))
		view.Table = &table
	case snapshot.StateError:
		view.ErrorText = snap.ErrorText
	case snapshot.StateSample:
		view.SampleJSON = i18nBundle.T(lang, "sample.keyword")
	}
	return view
}
