package report

import "github.com/searchscope/web/internal/backend"

// Dashboard is the full analyzer view model. Everything in it derives
// from one AnalysisReport; the builder is pure so a restored snapshot
// renders identically to a live response.
type Dashboard struct {
	URL      string
	SEOScore int

	SEOChecks []CheckRow
	AEOChecks []CheckRow
	SEOPass   int
	AEOPass   int
	Counts    StatusCounts

	Geo        GeoStats
	WordCount  int
	MissingAlt int
	Currencies int
	Phones     int

	Issues []CheckRow
	Board  IssueBoard

	ScoreChart   ChartConfig
	LatencyChart ChartConfig
	StatusChart  ChartConfig
}

const immediateFixLimit = 6

// BuildDashboard maps one analysis report into the dashboard view model.
func BuildDashboard(r backend.AnalysisReport, t func(string) string) Dashboard {
	seoChecks := CollectSEOChecks(r.SEOResult)
	aeoChecks := CollectAEOChecks(r.AEOResult)
	all := append(append([]CheckRow{}, seoChecks...), aeoChecks...)
	counts := SummarizeStatusCounts(all)
	geo := BuildGeoStats(r.GeoResult)
	score := r.SEOResult.Score.Int()

	d := Dashboard{
		URL:       r.URL,
		SEOScore:  score,
		SEOChecks: seoChecks,
		AEOChecks: aeoChecks,
		SEOPass:   CountKind(seoChecks, KindPass),
		AEOPass:   CountKind(aeoChecks, KindPass),
		Counts:    counts,
		Geo:       geo,
		Issues:    TopIssues(all, immediateFixLimit),
		Board:     GroupIssues(all),

		ScoreChart:   ScoreChart(score, t),
		LatencyChart: LatencyChart(geo, t),
		StatusChart:  StatusMixChart(counts, t),
	}
	if c := r.SEOResult.ContentLength; c != nil {
		d.WordCount = c.WordCount.Int()
	}
	if img := r.SEOResult.Images; img != nil {
		d.MissingAlt = img.MissingAlt.Int()
	}
	if sig := r.SEOResult.GeoSignals; sig != nil {
		d.Currencies = len(sig.FoundCurrencies)
		d.Phones = len(sig.FoundPhones)
	}
	return d
}
