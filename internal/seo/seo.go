// Package seo holds the document-head metadata types and schema.org
// payload builders shared by all pages.
package seo

// OpenGraph is the og:* property set for one page.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

// Twitter is the twitter:* card property set.
type Twitter struct {
	Card  string
	Site  string
	Image string
}
