package report

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/searchscope/web/internal/backend"
)

// RecommendationRow is one optimizer suggestion ready for the template.
// DetailHTML is already sanitized and safe to inject.
type RecommendationRow struct {
	Priority   string
	Category   string
	Title      string
	DetailHTML template.HTML
}

// RecommendationBoard groups suggestions by priority, highest first.
type RecommendationBoard struct {
	P0 []RecommendationRow
	P1 []RecommendationRow
	P2 []RecommendationRow
}

func (b RecommendationBoard) Total() int { return len(b.P0) + len(b.P1) + len(b.P2) }

var (
	recommendMarkdown = goldmark.New()
	recommendPolicy   = bluemonday.UGCPolicy()
)

// renderDetail converts markdown detail text to sanitized HTML. A render
// failure falls back to the escaped source text rather than dropping the row.
func renderDetail(detail string) template.HTML {
	var buf bytes.Buffer
	if err := recommendMarkdown.Convert([]byte(detail), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(detail))
	}
	return template.HTML(recommendPolicy.Sanitize(buf.String()))
}

// BuildRecommendationBoard buckets suggestions by their reported priority.
// Anything that is not P0 or P1 lands in P2.
func BuildRecommendationBoard(recs []backend.Recommendation) RecommendationBoard {
	var board RecommendationBoard
	for _, rec := range recs {
		row := RecommendationRow{
			Priority:   strings.ToUpper(strings.TrimSpace(rec.Priority)),
			Category:   rec.Category,
			Title:      rec.Title,
			DetailHTML: renderDetail(rec.Detail),
		}
		switch row.Priority {
		case PriorityP0:
			board.P0 = append(board.P0, row)
		case PriorityP1:
			board.P1 = append(board.P1, row)
		default:
			row.Priority = PriorityP2
			board.P2 = append(board.P2, row)
		}
	}
	return board
}
