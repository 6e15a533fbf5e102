package report

import (
	"fmt"
	"math"

	"github.com/searchscope/web/internal/backend"
)

// ComparisonRow is one site in the competitor board.
type ComparisonRow struct {
	Label string
	URL   string
	Score int
}

// Comparison is the competitor board view model. Gap is signed
// (primary minus competitor mean); a non-negative gap is favorable.
type Comparison struct {
	Primary     ComparisonRow
	Competitors []ComparisonRow
	Mean        float64
	Gap         float64
	Favorable   bool
}

// BuildComparison computes competitor scores, their arithmetic mean
// (zero when there are no competitors) and the signed gap. t resolves
// the localized row labels.
func BuildComparison(primary backend.AnalysisReport, competitors []backend.AnalysisReport, t func(string) string) Comparison {
	cmp := Comparison{
		Primary: ComparisonRow{
			Label: t("analyzer.primary_label"),
			URL:   primary.URL,
			Score: primary.SEOResult.Score.Int(),
		},
	}
	sum := 0.0
	for i, report := range competitors {
		score := report.SEOResult.Score.Int()
		sum += float64(score)
		cmp.Competitors = append(cmp.Competitors, ComparisonRow{
			Label: fmt.Sprintf("%s %d", t("analyzer.competitor_label"), i+1),
			URL:   report.URL,
			Score: score,
		})
	}
	if len(competitors) > 0 {
		cmp.Mean = sum / float64(len(competitors))
	}
	cmp.Gap = float64(cmp.Primary.Score) - cmp.Mean
	cmp.Favorable = cmp.Gap >= 0
	return cmp
}

// MeanDisplay renders the mean rounded to one decimal for the board header.
func (c Comparison) MeanDisplay() string {
	return fmt.Sprintf("%.1f", c.Mean)
}

// GapDisplay renders the signed gap rounded to one decimal.
func (c Comparison) GapDisplay() string {
	return fmt.Sprintf("%+.1f", math.Round(c.Gap*10)/10)
}
