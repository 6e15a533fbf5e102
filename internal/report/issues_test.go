package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupIssuesExcludesPass(t *testing.T) {
	rows := []CheckRow{
		{Label: "Meta Title", Kind: KindPass},
		{Label: "Canonical", Kind: KindFail},
		{Label: "Images", Kind: KindWarn},
		{Label: "Robots", Kind: KindInfo},
	}
	board := GroupIssues(rows)
	require.Len(t, board.P0, 1)
	assert.Equal(t, "Canonical", board.P0[0].Label)
	require.Len(t, board.P1, 1)
	assert.Equal(t, "Images", board.P1[0].Label)
	require.Len(t, board.P2, 1)
	assert.Equal(t, "Robots", board.P2[0].Label)
}

func TestTopIssuesKeepsCheckOrder(t *testing.T) {
	rows := []CheckRow{
		{Label: "a", Kind: KindInfo},
		{Label: "b", Kind: KindFail},
		{Label: "c", Kind: KindPass},
		{Label: "d", Kind: KindWarn},
	}
	top := TopIssues(rows, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "a", top[0].Label)
	assert.Equal(t, "b", top[1].Label)
	assert.Equal(t, "d", top[2].Label)
}

func TestTopIssuesHonorsLimit(t *testing.T) {
	rows := []CheckRow{{Kind: KindFail}, {Kind: KindFail}, {Kind: KindFail}}
	assert.Len(t, TopIssues(rows, 2), 2)
	assert.Empty(t, TopIssues(nil, 2))
}
