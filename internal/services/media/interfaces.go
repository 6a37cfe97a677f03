package media

import (
	"context"

	"github.com/killallgit/podcast-sync/internal/models"
)

// Prober checks that a media URL is reachable
type Prober interface {
	Probe(ctx context.Context, mediaURL string) error
}

// EpisodeStore persists media URL changes
type EpisodeStore interface {
	UpdateMediaURL(ctx context.Context, episode *models.Episode, mediaURL string) error
}

// NoticeStore records podcast-level advisories
type NoticeStore interface {
	SetStatusNoticeIfEmpty(ctx context.Context, podcast *models.Podcast, notice string) (bool, error)
}
