package report

// Chart configs are emitted as data only; the page's bootstrap script
// feeds them verbatim to the charting library. Building them from the
// same aggregates as the KPI tiles keeps tiles and charts in agreement
// by construction.

// ChartDataset mirrors a charting-library dataset.
type ChartDataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor,omitempty"`
	BorderWidth     int       `json:"borderWidth"`
	BorderRadius    int       `json:"borderRadius,omitempty"`
	Cutout          string    `json:"cutout,omitempty"`
}

// ChartData groups labels with their datasets, matching the shape the
// charting library's constructor expects under its `data` key.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartConfig is one renderable chart, serialized exactly in the
// constructor shape: {type, data: {labels, datasets}}.
type ChartConfig struct {
	Type string    `json:"type"`
	Data ChartData `json:"data"`
}

// ScoreChart is the single-value gauge: score against the remainder to 100.
func ScoreChart(score int, t func(string) string) ChartConfig {
	remainder := 100 - score
	if remainder < 0 {
		remainder = 0
	}
	return ChartConfig{
		Type: "doughnut",
		Data: ChartData{
			Labels: []string{t("analyzer.score_label"), t("analyzer.score_remaining")},
			Datasets: []ChartDataset{{
				Data:            []float64{float64(score), float64(remainder)},
				BackgroundColor: []string{"#2d9cdb", "#e6edf6"},
				Cutout:          "72%",
			}},
		},
	}
}

// LatencyChart is the per-region latency bar chart.
func LatencyChart(geo GeoStats, t func(string) string) ChartConfig {
	labels := make([]string, 0, len(geo.Rows))
	data := make([]float64, 0, len(geo.Rows))
	for _, row := range geo.Rows {
		labels = append(labels, row.Region)
		data = append(data, float64(row.LatencyMS))
	}
	return ChartConfig{
		Type: "bar",
		Data: ChartData{
			Labels: labels,
			Datasets: []ChartDataset{{
				Label:           t("analyzer.latency_series"),
				Data:            data,
				BackgroundColor: []string{"#4c7cf0"},
				BorderRadius:    8,
			}},
		},
	}
}

// StatusMixChart is the pass/warn/fail/info distribution donut.
func StatusMixChart(counts StatusCounts, t func(string) string) ChartConfig {
	return ChartConfig{
		Type: "doughnut",
		Data: ChartData{
			Labels: []string{
				t("badge.pass"), t("badge.warn"), t("badge.fail"), t("badge.info"),
			},
			Datasets: []ChartDataset{{
				Data: []float64{
					float64(counts.Pass), float64(counts.Warn),
					float64(counts.Fail), float64(counts.Info),
				},
				BackgroundColor: []string{"#11a36a", "#f2b736", "#e94f37", "#8ea2c1"},
				Cutout:          "66%",
			}},
		},
	}
}
