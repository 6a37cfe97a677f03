package podcasts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/killallgit/podcast-sync/internal/models"
	"gorm.io/gorm"
)

// maxSyncErrorLength bounds the stored last_sync_error text
const maxSyncErrorLength = 1000

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements PodcastRepository interface
var _ PodcastRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreatePodcast creates a new podcast
func (r *Repository) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Create(podcast).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("podcast with feed URL %s already exists: %w", podcast.FeedURL, err)
		}
		return fmt.Errorf("creating podcast: %w", err)
	}
	return nil
}

// GetPodcastByID retrieves a podcast by its database ID
func (r *Repository) GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("getting podcast: %w", err)
	}
	return &podcast, nil
}

// GetPodcastByFeedURL retrieves a podcast by feed URL
func (r *Repository) GetPodcastByFeedURL(ctx context.Context, feedURL string) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).
		Where("feed_url = ?", feedURL).
		First(&podcast).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{ID: feedURL}
		}
		return nil, fmt.Errorf("getting podcast by feed url: %w", err)
	}
	return &podcast, nil
}

// ListPodcasts returns one page of podcasts ordered by ID
func (r *Repository) ListPodcasts(ctx context.Context, page, limit int) ([]models.Podcast, int64, error) {
	var podcasts []models.Podcast
	var total int64

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := r.db.WithContext(ctx).Model(&models.Podcast{}).Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting podcasts: %w", err)
	}

	if err := query.
		Order("id ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&podcasts).Error; err != nil {
		return nil, 0, fmt.Errorf("listing podcasts: %w", err)
	}

	return podcasts, total, nil
}

// FindInBatches walks every podcast in ID order, batchSize rows at a time.
// Returning an error from fn stops the walk.
func (r *Repository) FindInBatches(ctx context.Context, batchSize int, fn func(batch []models.Podcast) error) error {
	if batchSize <= 0 {
		batchSize = 100
	}

	var batch []models.Podcast
	result := r.db.WithContext(ctx).
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// fn may keep the slice; FindInBatches reuses its backing array
			page := make([]models.Podcast, len(batch))
			copy(page, batch)
			return fn(page)
		})
	if result.Error != nil {
		return fmt.Errorf("iterating podcasts: %w", result.Error)
	}
	return nil
}

// SetStatusNoticeIfEmpty writes notice unless the podcast already carries one.
// The conditional UPDATE keeps concurrent writers from overwriting each other,
// but callers must treat the notice as a best-effort advisory.
func (r *Repository) SetStatusNoticeIfEmpty(ctx context.Context, podcast *models.Podcast, notice string) (bool, error) {
	if podcast.StatusNotice != "" {
		return false, nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Where("id = ? AND (status_notice = '' OR status_notice IS NULL)", podcast.ID).
		Update("status_notice", notice)
	if result.Error != nil {
		return false, fmt.Errorf("setting status notice: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return false, nil
	}
	podcast.StatusNotice = notice
	return true, nil
}

// RecordSync stores the outcome of the latest sync of a podcast
func (r *Repository) RecordSync(ctx context.Context, podcastID uint, syncedAt time.Time, itemCount int, syncErr error) error {
	message := ""
	if syncErr != nil {
		message = syncErr.Error()
		if len(message) > maxSyncErrorLength {
			message = message[:maxSyncErrorLength]
		}
	}

	result := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Where("id = ?", podcastID).
		Updates(map[string]interface{}{
			"last_synced_at":  syncedAt,
			"last_sync_error": message,
			"last_item_count": itemCount,
		})
	if result.Error != nil {
		return fmt.Errorf("recording sync: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NotFoundError{ID: podcastID}
	}
	return nil
}
