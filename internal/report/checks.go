package report

import "github.com/searchscope/web/internal/backend"

// CheckRow is one check prepared for display: the English check label is
// part of the backend contract and stays untranslated, like the raw
// status text it accompanies.
type CheckRow struct {
	Label  string
	Status string
	Kind   StatusKind
	Detail string
}

func newCheckRow(label string, c *backend.Check) (CheckRow, bool) {
	if c == nil {
		return CheckRow{}, false
	}
	status := c.Status
	if status == "" {
		status = "Info"
	}
	return CheckRow{
		Label:  label,
		Status: status,
		Kind:   ClassifyStatus(c.Status),
		Detail: c.Details,
	}, true
}

// CollectSEOChecks flattens the named SEO check objects into rows,
// preserving the dashboard's fixed ordering and skipping absent checks.
func CollectSEOChecks(seo backend.SEOResult) []CheckRow {
	named := []struct {
		label string
		check *backend.Check
	}{
		{"Meta Title", seo.MetaTitle},
		{"Meta Description", seo.MetaDescription},
		{"Canonical", seo.Canonical},
		{"Robots", seo.Robots},
		{"Viewport", seo.Viewport},
		{"Open Graph", seo.OpenGraph},
		{"Structured Data", seo.StructuredData},
		{"Hreflang", seo.Hreflang},
		{"Heading Structure", seo.HeadingStructure},
		{"Images", imagesCheck(seo.Images)},
		{"Content Length", contentCheck(seo.ContentLength)},
	}
	rows := make([]CheckRow, 0, len(named))
	for _, n := range named {
		if row, ok := newCheckRow(n.label, n.check); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// CollectAEOChecks flattens the answer-engine signal checks.
func CollectAEOChecks(aeo backend.AEOResult) []CheckRow {
	named := []struct {
		label string
		check *backend.Check
	}{
		{"Answer First", aeo.AnswerFirst},
		{"Content Structure", aeo.ContentStructure},
		{"AEO Schema", aeo.AEOSchema},
		{"Readability", aeo.Readability},
		{"E-E-A-T Signals", aeo.EEATSignals},
	}
	rows := make([]CheckRow, 0, len(named))
	for _, n := range named {
		if row, ok := newCheckRow(n.label, n.check); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func imagesCheck(c *backend.ImagesCheck) *backend.Check {
	if c == nil {
		return nil
	}
	return &c.Check
}

func contentCheck(c *backend.ContentCheck) *backend.Check {
	if c == nil {
		return nil
	}
	return &c.Check
}

// CountKind returns how many rows classified as kind.
func CountKind(rows []CheckRow, kind StatusKind) int {
	n := 0
	for _, r := range rows {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
