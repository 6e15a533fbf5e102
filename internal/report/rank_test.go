package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchscope/web/internal/backend"
)

func intPtr(n int) *int { return &n }

func TestBuildRankTable(t *testing.T) {
	res := backend.SearchRankResult{
		Results: map[string]map[string]backend.EngineRank{
			"seo audit tool": {
				"google": {Rank: intPtr(3), ResultCount: 10},
				"bing":   {Status: "not found", ResultCount: 10},
			},
			"aeo checker": {
				"google": {ResultCount: 8},
			},
		},
	}
	table := BuildRankTable(res, keyT)

	assert.Equal(t, 2, table.Queries)
	assert.Equal(t, 1, table.RankedRows)
	require.Len(t, table.Rows, 3)

	// queries then engines, alphabetical
	assert.Equal(t, "aeo checker", table.Rows[0].Query)
	assert.Equal(t, "keyword.unranked", table.Rows[0].RankDisplay)
	assert.Equal(t, 8, table.Rows[0].ResultCount)

	assert.Equal(t, "bing", table.Rows[1].Engine)
	assert.Equal(t, "not found", table.Rows[1].RankDisplay)
	assert.False(t, table.Rows[1].Ranked)

	assert.Equal(t, "google", table.Rows[2].Engine)
	assert.True(t, table.Rows[2].Ranked)
	assert.Equal(t, "#3", table.Rows[2].RankDisplay)
}

func TestBuildRankTableEmpty(t *testing.T) {
	table := BuildRankTable(backend.SearchRankResult{}, keyT)
	assert.Zero(t, table.Queries)
	assert.Empty(t, table.Rows)
}
