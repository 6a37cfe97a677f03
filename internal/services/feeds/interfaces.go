package feeds

import "context"

// FeedFetcher retrieves and parses a remote podcast feed
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string, limit int) (*FetchResult, error)
}
