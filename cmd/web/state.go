package main

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/searchscope/web/internal/backend"
	"github.com/searchscope/web/internal/entitlement"
	mw "github.com/searchscope/web/internal/middleware"
	"github.com/searchscope/web/internal/observability"
	"github.com/searchscope/web/internal/snapshot"
)

// Page identifiers double as snapshot scopes.
const (
	pageAnalyzer  = "analyzer"
	pageKeyword   = "keyword-rank"
	pagePrompt    = "prompt-tracker"
	pageOptimizer = "optimizer"
)

// restorePage loads the saved display state for the session, if any.
func restorePage(r *http.Request, page string) (snapshot.PageSnapshot, bool) {
	key := mw.GetSession(r).EnsureSnapshotKey()
	return snapshots.Restore(r.Context(), key, page)
}

// savePage persists the terminal display state for the session. Failures
// only cost the replay, so they are logged and swallowed.
func savePage(r *http.Request, snap snapshot.PageSnapshot) {
	key := mw.GetSession(r).EnsureSnapshotKey()
	snap.SavedAt = time.Now().UTC()
	if err := snapshots.Save(r.Context(), key, snap.Page, snap); err != nil {
		observability.FromContext(r.Context()).Warn("snapshot save failed",
			zap.String("page", snap.Page), zap.Error(err))
	}
}

// noticeKey maps an entitlement denial to the page's localized message.
func noticeKey(page string, reason entitlement.Reason) string {
	switch reason {
	case entitlement.ReasonLoginRequired:
		return "optimizer.login_required"
	case entitlement.ReasonQuotaExceeded:
		return "analyzer.guest_quota"
	case entitlement.ReasonCapExceeded:
		return "error.batch_cap"
	case entitlement.ReasonTierRequired:
		switch page {
		case pageKeyword:
			return "keyword.batch_blocked"
		case pagePrompt:
			return "prompt.free_disabled"
		case pageOptimizer:
			return "optimizer.free_disabled"
		default:
			return "analyzer.competitors_blocked"
		}
	}
	return ""
}

// errorText extracts a user-facing message from a backend failure.
func errorText(lang string, err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return i18nBundle.T(lang, "error.generic")
}
