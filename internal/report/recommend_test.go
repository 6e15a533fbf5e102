package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchscope/web/internal/backend"
)

func TestBuildRecommendationBoardBuckets(t *testing.T) {
	board := BuildRecommendationBoard([]backend.Recommendation{
		{Priority: "P0", Title: "Fix canonical"},
		{Priority: "p1", Title: "Shorten title"},
		{Priority: "P2", Title: "Add FAQ"},
		{Priority: "urgent", Title: "Unknown bucket"},
		{Priority: "", Title: "No priority"},
	})

	require.Len(t, board.P0, 1)
	require.Len(t, board.P1, 1)
	require.Len(t, board.P2, 3)
	assert.Equal(t, 5, board.Total())
	// unknown priorities are rewritten so the badge always shows a bucket
	assert.Equal(t, PriorityP2, board.P2[1].Priority)
	assert.Equal(t, PriorityP2, board.P2[2].Priority)
}

func TestRenderDetailMarkdown(t *testing.T) {
	html := string(renderDetail("Use **answer-first** paragraphs."))
	assert.Contains(t, html, "<strong>answer-first</strong>")
}

func TestRenderDetailSanitizes(t *testing.T) {
	html := string(renderDetail(`Click <script>alert(1)</script> [here](https://docs.test)`))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, `href="https://docs.test"`)
}
