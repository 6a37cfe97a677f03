package feeds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

// maxFeedBytes bounds how much of a feed document is read
const maxFeedBytes = 32 << 20

// Fetcher downloads RSS/iTunes feeds over HTTP and parses them with gofeed
type Fetcher struct {
	client    *http.Client
	userAgent string
	throttle  *HostThrottle
	logger    *zap.Logger
}

// Ensure Fetcher implements FeedFetcher interface
var _ FeedFetcher = (*Fetcher)(nil)

// Option is a functional option for configuring the fetcher
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client used for feed requests
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithUserAgent sets the User-Agent header sent with feed requests
func WithUserAgent(userAgent string) Option {
	return func(f *Fetcher) {
		if userAgent != "" {
			f.userAgent = userAgent
		}
	}
}

// WithHostThrottle spaces requests per host
func WithHostThrottle(throttle *HostThrottle) Option {
	return func(f *Fetcher) {
		f.throttle = throttle
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFetcher creates a fetcher whose requests give up after timeout
func NewFetcher(timeout time.Duration, opts ...Option) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	f := &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: "PodcastSync/1.0",
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves feedURL and returns at most limit items in feed order,
// along with the number of items the feed published
func (f *Fetcher) Fetch(ctx context.Context, feedURL string, limit int) (*FetchResult, error) {
	if limit <= 0 {
		limit = DefaultItemLimit
	}

	if err := validateFeedURL(feedURL); err != nil {
		return nil, newFetchError(ErrInvalidSource, feedURL, err)
	}

	if f.throttle != nil {
		if err := f.throttle.Wait(ctx, feedURL); err != nil {
			return nil, newFetchError(ErrFetchFailed, feedURL, fmt.Errorf("rate limiting: %w", err))
		}
	}

	feed, err := f.download(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	items := ConvertItems(feed.Items, limit)
	f.logger.Debug("feed fetched",
		zap.String("url", feedURL),
		zap.String("title", feed.Title),
		zap.Int("items", len(feed.Items)),
		zap.Int("returned", len(items)))

	return &FetchResult{Items: items, Total: len(feed.Items)}, nil
}

func (f *Fetcher) download(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, newFetchError(ErrInvalidSource, feedURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, newFetchError(ErrFetchFailed, feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{Kind: ErrFetchFailed, URL: feedURL, StatusCode: resp.StatusCode}
	}

	feed, err := gofeed.NewParser().Parse(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		// A body cut off by a timeout is a transport failure, not a malformed feed
		if ctx.Err() != nil || isTimeout(err) {
			return nil, newFetchError(ErrFetchFailed, feedURL, err)
		}
		return nil, newFetchError(ErrParse, feedURL, err)
	}
	return feed, nil
}

// ConvertItems maps parsed feed items to RawFeedItems, keeping at most limit of them
func ConvertItems(items []*gofeed.Item, limit int) []RawFeedItem {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	raw := make([]RawFeedItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		r := RawFeedItem{
			Title:           item.Title,
			Description:     item.Description,
			RichContent:     item.Content,
			Link:            item.Link,
			GUID:            item.GUID,
			PublishedDate:   item.Published,
			PublishedParsed: item.PublishedParsed,
		}
		if item.ITunesExt != nil {
			r.Subtitle = item.ITunesExt.Subtitle
			r.Summary = item.ITunesExt.Summary
		}
		for _, enc := range item.Enclosures {
			if enc != nil && strings.TrimSpace(enc.URL) != "" {
				r.EnclosureURL = strings.TrimSpace(enc.URL)
				break
			}
		}
		raw = append(raw, r)
	}
	return raw
}

func validateFeedURL(feedURL string) error {
	if strings.TrimSpace(feedURL) == "" {
		return errors.New("empty URL")
	}
	u, err := url.Parse(feedURL)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host in URL")
	}
	return nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
