package episodes

import (
	"strings"
	"time"
)

// publishedLayouts are tried in order against the raw pubDate text
var publishedLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsePublishedDate turns a feed pubDate into a calendar date, expressed as
// midnight UTC of the day the feed stated in its own offset. parsed is the feed
// parser's lenient reading and is used when none of the known layouts match.
func ParsePublishedDate(raw string, parsed *time.Time) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value != "" {
		for _, layout := range publishedLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return dateOf(t), nil
			}
		}
	}

	if parsed != nil && !parsed.IsZero() {
		return dateOf(*parsed), nil
	}

	return time.Time{}, DateParseError{Value: raw}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
