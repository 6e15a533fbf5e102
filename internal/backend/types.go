package backend

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number decodes any JSON scalar into a float64, coercing non-numeric or
// missing values to 0. The backend is loose about numeric fields (status
// codes as strings, absent counts), and renderers must treat all of them
// as zero rather than propagating decode failures.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*n = Number(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*n = Number(f)
			return nil
		}
	}
	*n = 0
	return nil
}

func (n Number) Int() int       { return int(n) }
func (n Number) Float() float64 { return float64(n) }

// Check is the uniform shape of one backend-evaluated signal.
type Check struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// ContentCheck extends Check with the measured word count.
type ContentCheck struct {
	Check
	WordCount Number `json:"word_count"`
}

// ImagesCheck extends Check with the count of images missing alt text.
type ImagesCheck struct {
	Check
	MissingAlt Number `json:"missing_alt"`
}

// GeoSignals lists localization hints found on the page.
type GeoSignals struct {
	FoundCurrencies []string `json:"found_currencies"`
	FoundPhones     []string `json:"found_phones"`
}

// SEOResult carries the scored technical checks of one analysis.
type SEOResult struct {
	Score            Number        `json:"score"`
	MetaTitle        *Check        `json:"meta_title"`
	MetaDescription  *Check        `json:"meta_description"`
	Canonical        *Check        `json:"canonical"`
	Robots           *Check        `json:"robots"`
	Viewport         *Check        `json:"viewport"`
	OpenGraph        *Check        `json:"open_graph"`
	StructuredData   *Check        `json:"structured_data"`
	Hreflang         *Check        `json:"hreflang"`
	HeadingStructure *Check        `json:"heading_structure"`
	Images           *ImagesCheck  `json:"images"`
	ContentLength    *ContentCheck `json:"content_length"`
	GeoSignals       *GeoSignals   `json:"geo_signals"`
}

// AEOResult carries the answer-engine signal checks.
type AEOResult struct {
	AnswerFirst      *Check `json:"answer_first"`
	ContentStructure *Check `json:"content_structure"`
	AEOSchema        *Check `json:"structured_data_deep_dive"`
	Readability      *Check `json:"readability_signal"`
	EEATSignals      *Check `json:"e_e_a_t_signals"`
}

// GeoProbe is one regional reachability probe.
type GeoProbe struct {
	Status     Number `json:"status"`
	LoadTimeMS Number `json:"load_time_ms"`
}

// AnalysisReport is the full response of POST /api/analyze.
type AnalysisReport struct {
	URL       string              `json:"url"`
	SEOResult SEOResult           `json:"seo_result"`
	AEOResult AEOResult           `json:"aeo_result"`
	GeoResult map[string]GeoProbe `json:"geo_result"`
}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	URL              string `json:"url"`
	IncludeAEO       bool   `json:"include_aeo"`
	IncludePagespeed bool   `json:"include_pagespeed"`
}

// SearchRankRequest is the body of POST /api/search-rank.
type SearchRankRequest struct {
	Query     string   `json:"query"`
	Queries   []string `json:"queries"`
	TargetURL string   `json:"target_url"`
	Engines   []string `json:"engines"`
}

// EngineRank is one engine's placement for one query. Rank is nil when
// the target URL did not appear in the result set.
type EngineRank struct {
	Rank        *int   `json:"rank"`
	Status      string `json:"status"`
	ResultCount Number `json:"result_count"`
}

// SearchRankResult is the response of POST /api/search-rank, keyed
// query -> engine.
type SearchRankResult struct {
	Query     string                           `json:"query"`
	TargetURL string                           `json:"target_url"`
	Results   map[string]map[string]EngineRank `json:"results"`
}

// PromptTrackRequest is the body of POST /api/prompt-track.
type PromptTrackRequest struct {
	Query         string   `json:"query"`
	Queries       []string `json:"queries"`
	TargetURL     string   `json:"target_url"`
	BrandName     string   `json:"brand_name,omitempty"`
	LLMSources    []string `json:"llm_sources"`
	SearchEngines []string `json:"search_engines"`
	DemoClientID  string   `json:"demo_client_id,omitempty"`
}

// LLMMention is one LLM source's mention evaluation.
type LLMMention struct {
	Source           string `json:"source"`
	Tier             string `json:"tier"`
	Score            Number `json:"score"`
	Reason           string `json:"reason"`
	ResponseShareURL string `json:"response_share_url"`
}

// PromptQueryResult groups mention evaluations for one prompt.
type PromptQueryResult struct {
	Query      string       `json:"query"`
	LLMResults []LLMMention `json:"llm_results"`
}

// PromptTrackResult is the response of POST /api/prompt-track.
type PromptTrackResult struct {
	Results []PromptQueryResult `json:"results"`
}

// RecommendRequest is the body of POST /api/aeo-optimizer/recommend.
type RecommendRequest struct {
	URL string `json:"url"`
}

// Recommendation is one optimizer suggestion; Detail may carry markdown.
type Recommendation struct {
	Priority string `json:"priority"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
}

// RecommendResult is the response of POST /api/aeo-optimizer/recommend.
type RecommendResult struct {
	Result struct {
		Recommendations []Recommendation `json:"recommendations"`
	} `json:"result"`
}

// UserInfo is the response of GET /api/users/me.
type UserInfo struct {
	Tier string `json:"tier"`
}

// TokenResponse is the response of POST /api/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// CheckoutSession is the response of POST /api/billing/create-checkout-session.
type CheckoutSession struct {
	CheckoutURL string `json:"checkout_url"`
}
