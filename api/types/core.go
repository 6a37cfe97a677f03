package types

// Core data types used across API responses

// Podcast represents a stored podcast and its latest sync state
type Podcast struct {
	ID               uint   `json:"id"`
	Title            string `json:"title"`
	FeedURL          string `json:"feedUrl"`
	UniqueWebsiteURL bool   `json:"uniqueWebsiteUrl"`
	StatusNotice     string `json:"statusNotice,omitempty"`
	LastSyncedAt     int64  `json:"lastSyncedAt,omitempty"` // Unix timestamp
	LastSyncError    string `json:"lastSyncError,omitempty"`
	LastItemCount    int    `json:"lastItemCount"`
}

// Episode represents a stored episode
type Episode struct {
	ID          uint   `json:"id"`
	PodcastID   uint   `json:"podcastId"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Subtitle    string `json:"subtitle,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Link        string `json:"link,omitempty"` // Episode webpage URL
	GUID        string `json:"guid,omitempty"`
	AudioURL    string `json:"audioUrl"`
	Secure      bool   `json:"secure"`                // AudioURL uses https
	PublishedAt string `json:"publishedAt,omitempty"` // YYYY-MM-DD
	Body        string `json:"body,omitempty"`
}
