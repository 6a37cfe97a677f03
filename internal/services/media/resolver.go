package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/killallgit/podcast-sync/internal/metrics"
	"github.com/killallgit/podcast-sync/internal/models"
	"github.com/killallgit/podcast-sync/internal/services/episodes"
	"github.com/killallgit/podcast-sync/internal/services/feeds"
	"go.uber.org/zap"
)

// AdvisoryNotice is set on a podcast whose media could not be served over https
const AdvisoryNotice = "This podcast may not be playable in the browser"

// Resolver chooses media URLs for episodes, preferring https
type Resolver struct {
	prober       Prober
	probeEnabled bool
	episodes     EpisodeStore
	notices      NoticeStore
	logger       *zap.Logger
}

// Ensure Resolver implements episodes.MediaResolver interface
var _ episodes.MediaResolver = (*Resolver)(nil)

// Option is a functional option for configuring the resolver
type Option func(*Resolver)

// WithProbing turns the reachability probe on or off. With probing off every
// upgraded URL is accepted as is.
func WithProbing(enabled bool) Option {
	return func(r *Resolver) {
		r.probeEnabled = enabled
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewResolver(prober Prober, episodes EpisodeStore, notices NoticeStore, opts ...Option) *Resolver {
	r := &Resolver{
		prober:       prober,
		probeEnabled: prober != nil,
		episodes:     episodes,
		notices:      notices,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.prober == nil {
		r.probeEnabled = false
	}
	return r
}

// SecureURL rewrites a leading http: scheme to https:. Other URLs are returned unchanged.
func SecureURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if len(trimmed) >= 5 && strings.EqualFold(trimmed[:5], "http:") {
		return "https:" + trimmed[5:]
	}
	return rawURL
}

// ResolveForCreate returns the https form of the item's enclosure when it is
// reachable, otherwise the enclosure as published. In the fallback case the
// podcast gets AdvisoryNotice unless it already carries a notice.
func (r *Resolver) ResolveForCreate(ctx context.Context, item feeds.RawFeedItem, podcast *models.Podcast) string {
	original := item.EnclosureURL
	if strings.TrimSpace(original) == "" {
		return ""
	}

	secure := SecureURL(original)
	if !r.probeEnabled {
		metrics.RecordProbe("skipped")
		return secure
	}

	err := r.prober.Probe(ctx, secure)
	if err == nil {
		metrics.RecordProbe("ok")
		return secure
	}

	metrics.RecordProbe("failed")
	r.logger.Warn("secure media URL not reachable, keeping original",
		zap.Uint("podcast_id", podcast.ID),
		zap.String("title", item.Title),
		zap.String("media_url", original),
		zap.Error(err))

	r.flagPodcast(ctx, podcast)
	return original
}

func (r *Resolver) flagPodcast(ctx context.Context, podcast *models.Podcast) {
	if r.notices == nil {
		return
	}
	set, err := r.notices.SetStatusNoticeIfEmpty(ctx, podcast, AdvisoryNotice)
	if err != nil {
		r.logger.Warn("failed to set podcast status notice",
			zap.Uint("podcast_id", podcast.ID),
			zap.Error(err))
		return
	}
	if set {
		r.logger.Info("podcast flagged as not browser playable", zap.Uint("podcast_id", podcast.ID))
	}
}

// UpgradeTransport moves an existing episode onto the item's https enclosure.
// Episodes already on https, and items without an https enclosure, are left alone.
func (r *Resolver) UpgradeTransport(ctx context.Context, episode *models.Episode, item feeds.RawFeedItem) error {
	if episode.HasSecureMedia() || !models.IsSecureURL(item.EnclosureURL) {
		return nil
	}
	if err := r.episodes.UpdateMediaURL(ctx, episode, item.EnclosureURL); err != nil {
		return fmt.Errorf("upgrading media URL for episode %d: %w", episode.ID, err)
	}
	r.logger.Debug("episode media upgraded to https",
		zap.Uint("episode_id", episode.ID),
		zap.String("media_url", item.EnclosureURL))
	return nil
}
