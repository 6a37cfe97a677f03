package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Podcast represents a podcast feed the sync pipeline polls
type Podcast struct {
	gorm.Model
	Title            string `json:"title"`
	FeedURL          string `json:"feed_url" gorm:"uniqueIndex;not null"`
	// UniqueWebsiteURL marks feeds whose item links reliably identify an episode
	UniqueWebsiteURL bool   `json:"unique_website_url" gorm:"not null;default:false"`
	// StatusNotice is an advisory for downstream UI; sync only ever sets it
	StatusNotice     string `json:"status_notice" gorm:"not null;default:''"`

	// Sync bookkeeping
	LastSyncedAt  *time.Time `json:"last_synced_at"`
	LastSyncError string     `json:"last_sync_error"`
	LastItemCount int        `json:"last_item_count"`

	Episodes []Episode `json:"episodes,omitempty" gorm:"foreignKey:PodcastID"`
}

// Episode represents a stored podcast episode
type Episode struct {
	gorm.Model
	PodcastID   uint       `json:"podcast_id" gorm:"not null;index;uniqueIndex:idx_episodes_podcast_slug,priority:1"`
	Title       string     `json:"title" gorm:"index:idx_episodes_title"`
	Slug        string     `json:"slug" gorm:"not null;uniqueIndex:idx_episodes_podcast_slug,priority:2"`
	Subtitle    string     `json:"subtitle" gorm:"type:text"`
	Summary     string     `json:"summary" gorm:"type:text"`
	WebsiteURL  string     `json:"website_url" gorm:"index:idx_episodes_website_url"`
	GUID        string     `json:"guid" gorm:"column:guid;index:idx_episodes_guid"`
	MediaURL    string     `json:"media_url" gorm:"not null;index:idx_episodes_media_url"`
	PublishedAt *time.Time `json:"published_at"` // date precision, nil when the feed date was unusable
	Body        string     `json:"body" gorm:"type:text"`
}

// HasSecureMedia reports whether the episode's media URL uses https
func (e *Episode) HasSecureMedia() bool {
	return IsSecureURL(e.MediaURL)
}

// IsSecureURL reports whether rawURL uses the https scheme
func IsSecureURL(rawURL string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(rawURL)), "https:")
}

// All returns every model the database layer migrates
func All() []any {
	return []any{&Podcast{}, &Episode{}}
}
