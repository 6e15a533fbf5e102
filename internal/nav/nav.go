package nav

import (
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/analyzer"
	LabelKey string // i18n key, e.g. "nav.dashboard"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Main is the primary navigation definition: the landing page plus the
// four analysis tools.
var Main = []Item{
	{Path: "/", LabelKey: "nav.main"},
	{Path: "/analyzer", LabelKey: "nav.dashboard"},
	{Path: "/keyword-rank", LabelKey: "nav.keyword"},
	{Path: "/prompt-tracker", LabelKey: "nav.prompt"},
	{Path: "/optimizer", LabelKey: "nav.optimizer"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/analyzer" or "/analyzer/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}
