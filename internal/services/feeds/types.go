package feeds

import "time"

// DefaultItemLimit caps how many items a single fetch returns
const DefaultItemLimit = 1000

// FetchResult holds the items kept from one feed download
type FetchResult struct {
	Items []RawFeedItem
	// Total is how many items the feed published, before any limit
	Total int
}

// RawFeedItem is one <item> of an RSS/iTunes feed, as published
type RawFeedItem struct {
	Title         string
	Subtitle      string // itunes:subtitle
	Summary       string // itunes:summary
	Description   string
	RichContent   string // content:encoded
	Link          string
	GUID          string
	EnclosureURL  string
	PublishedDate string // raw pubDate text

	// PublishedParsed is the feed parser's reading of PublishedDate, nil when it could not parse it
	PublishedParsed *time.Time
}
