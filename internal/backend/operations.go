package backend

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// Analyze runs a single-URL SEO/AEO/GEO audit. The raw response is
// returned alongside the decoded report so callers can snapshot it and
// replay the exact payload through the same render path later.
func (c *Client) Analyze(ctx context.Context, token string, req AnalyzeRequest) (AnalysisReport, json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.postJSON(ctx, "/api/analyze", token, req, &raw); err != nil {
		return AnalysisReport{}, nil, err
	}
	var report AnalysisReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return AnalysisReport{}, nil, err
	}
	return report, raw, nil
}

// SearchRank runs keyword rank tracking.
func (c *Client) SearchRank(ctx context.Context, token string, req SearchRankRequest) (SearchRankResult, json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.postJSON(ctx, "/api/search-rank", token, req, &raw); err != nil {
		return SearchRankResult{}, nil, err
	}
	var result SearchRankResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return SearchRankResult{}, nil, err
	}
	return result, raw, nil
}

// PromptTrack runs LLM prompt mention tracking.
func (c *Client) PromptTrack(ctx context.Context, token string, req PromptTrackRequest) (PromptTrackResult, json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.postJSON(ctx, "/api/prompt-track", token, req, &raw); err != nil {
		return PromptTrackResult{}, nil, err
	}
	var result PromptTrackResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return PromptTrackResult{}, nil, err
	}
	return result, raw, nil
}

// Recommend generates AEO optimizer recommendations for a URL.
func (c *Client) Recommend(ctx context.Context, token string, req RecommendRequest) (RecommendResult, json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.postJSON(ctx, "/api/aeo-optimizer/recommend", token, req, &raw); err != nil {
		return RecommendResult{}, nil, err
	}
	var result RecommendResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return RecommendResult{}, nil, err
	}
	return result, raw, nil
}

// Me resolves the authenticated user's subscription info.
func (c *Client) Me(ctx context.Context, token string) (UserInfo, error) {
	var info UserInfo
	if err := c.getJSON(ctx, "/api/users/me", token, &info); err != nil {
		return UserInfo{}, err
	}
	return info, nil
}

// Login exchanges credentials for a bearer token. The identity endpoint
// expects form encoding with the email posted as username.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("username", strings.TrimSpace(email))
	form.Set("password", password)
	var tok TokenResponse
	if err := c.postForm(ctx, "/api/token", form, &tok); err != nil {
		return TokenResponse{}, err
	}
	return tok, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, password string) error {
	body := map[string]string{"email": strings.TrimSpace(email), "password": password}
	return c.postJSON(ctx, "/api/register", "", body, nil)
}

// CreateCheckoutSession starts a billing checkout for the given plan.
func (c *Client) CreateCheckoutSession(ctx context.Context, token, plan, successURL, cancelURL string) (CheckoutSession, error) {
	body := map[string]string{
		"plan":        plan,
		"success_url": successURL,
		"cancel_url":  cancelURL,
	}
	var session CheckoutSession
	if err := c.postJSON(ctx, "/api/billing/create-checkout-session", token, body, &session); err != nil {
		return CheckoutSession{}, err
	}
	return session, nil
}
