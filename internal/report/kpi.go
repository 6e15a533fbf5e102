package report

import (
	"math"
	"sort"

	"github.com/searchscope/web/internal/backend"
)

// StatusCounts aggregates classifications across merged SEO+AEO checks.
type StatusCounts struct {
	Pass int
	Warn int
	Fail int
	Info int
}

// SummarizeStatusCounts tallies rows by kind.
func SummarizeStatusCounts(rows []CheckRow) StatusCounts {
	var c StatusCounts
	for _, r := range rows {
		switch r.Kind {
		case KindPass:
			c.Pass++
		case KindWarn:
			c.Warn++
		case KindFail:
			c.Fail++
		default:
			c.Info++
		}
	}
	return c
}

// GeoRow is one regional probe prepared for display.
type GeoRow struct {
	Region    string
	Reachable bool
	LatencyMS int
}

// GeoStats aggregates the regional probe map. Regions are sorted by name
// so repeated renders of the same payload are byte-identical.
type GeoStats struct {
	Rows           []GeoRow
	RegionCount    int
	ReachableCount int
	AvgLatencyMS   int
}

// reachable treats HTTP status codes in [200,400) as a successful probe.
func reachable(status int) bool {
	return status >= 200 && status < 400
}

// BuildGeoStats computes regional reachability and latency aggregates.
func BuildGeoStats(geo map[string]backend.GeoProbe) GeoStats {
	regions := make([]string, 0, len(geo))
	for region := range geo {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	stats := GeoStats{RegionCount: len(regions)}
	totalLatency := 0.0
	for _, region := range regions {
		probe := geo[region]
		ok := reachable(probe.Status.Int())
		if ok {
			stats.ReachableCount++
		}
		totalLatency += probe.LoadTimeMS.Float()
		stats.Rows = append(stats.Rows, GeoRow{Region: region, Reachable: ok, LatencyMS: probe.LoadTimeMS.Int()})
	}
	if len(regions) > 0 {
		stats.AvgLatencyMS = int(math.Round(totalLatency / float64(len(regions))))
	}
	return stats
}
