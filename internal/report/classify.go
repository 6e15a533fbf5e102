package report

import "strings"

// StatusKind is the normalized classification of a free-text check status.
type StatusKind string

const (
	KindPass StatusKind = "pass"
	KindWarn StatusKind = "warn"
	KindFail StatusKind = "fail"
	KindInfo StatusKind = "info"
)

// ClassifyStatus maps an arbitrary status string to a StatusKind by
// case-insensitive substring containment. The order pass -> warn -> fail
// is deliberate: when a status ambiguously contains several keywords,
// pass wins. Anything unmatched (including empty) is info.
func ClassifyStatus(status string) StatusKind {
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "pass"):
		return KindPass
	case strings.Contains(lower, "warn"):
		return KindWarn
	case strings.Contains(lower, "fail"):
		return KindFail
	default:
		return KindInfo
	}
}

// BadgeLabelKey returns the i18n key of the badge label for a kind.
func BadgeLabelKey(kind StatusKind) string {
	return "badge." + string(kind)
}

// BadgeClass returns the CSS class for a kind's status badge.
func BadgeClass(kind StatusKind) string {
	return "badge-" + string(kind)
}
