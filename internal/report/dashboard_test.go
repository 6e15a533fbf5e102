package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchscope/web/internal/backend"
)

func sampleReport() backend.AnalysisReport {
	return backend.AnalysisReport{
		URL: "https://example.test",
		SEOResult: backend.SEOResult{
			Score:         backend.Number(72),
			MetaTitle:     check("Pass", ""),
			Canonical:     check("Fail", "missing canonical"),
			Images:        &backend.ImagesCheck{Check: backend.Check{Status: "Warning"}, MissingAlt: 4},
			ContentLength: &backend.ContentCheck{Check: backend.Check{Status: "Pass"}, WordCount: 1200},
			GeoSignals:    &backend.GeoSignals{FoundCurrencies: []string{"USD"}, FoundPhones: []string{"+1", "+82"}},
		},
		AEOResult: backend.AEOResult{
			AnswerFirst: check("Pass", ""),
			Readability: check("Warning", "long sentences"),
		},
		GeoResult: map[string]backend.GeoProbe{
			"us-east": {Status: 200, LoadTimeMS: 110},
			"eu-west": {Status: 500, LoadTimeMS: 300},
		},
	}
}

func TestBuildDashboard(t *testing.T) {
	d := BuildDashboard(sampleReport(), keyT)

	assert.Equal(t, "https://example.test", d.URL)
	assert.Equal(t, 72, d.SEOScore)
	assert.Len(t, d.SEOChecks, 4)
	assert.Len(t, d.AEOChecks, 2)
	assert.Equal(t, 2, d.SEOPass)
	assert.Equal(t, 1, d.AEOPass)
	assert.Equal(t, StatusCounts{Pass: 3, Warn: 2, Fail: 1}, d.Counts)

	assert.Equal(t, 1200, d.WordCount)
	assert.Equal(t, 4, d.MissingAlt)
	assert.Equal(t, 1, d.Currencies)
	assert.Equal(t, 2, d.Phones)

	assert.Equal(t, 1, d.Geo.ReachableCount)
	require.Len(t, d.Issues, 3)
	assert.Equal(t, "Canonical", d.Issues[0].Label)
	require.Len(t, d.Board.P0, 1)

	// charts derive from the same aggregates as the tiles
	require.Len(t, d.ScoreChart.Data.Datasets, 1)
	assert.Equal(t, []float64{72, 28}, d.ScoreChart.Data.Datasets[0].Data)
	assert.Equal(t, []float64{3, 2, 1, 0}, d.StatusChart.Data.Datasets[0].Data)
	assert.Equal(t, []string{"eu-west", "us-east"}, d.LatencyChart.Data.Labels)
}

func TestBuildDashboardCapsScoreChart(t *testing.T) {
	r := sampleReport()
	r.SEOResult.Score = backend.Number(120)
	d := BuildDashboard(r, keyT)
	assert.Equal(t, []float64{120, 0}, d.ScoreChart.Data.Datasets[0].Data)
}
