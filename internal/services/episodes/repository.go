package episodes

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podcast-sync/internal/models"
	"gorm.io/gorm"
)

// LookupField names an indexed episode column usable as an identity key
type LookupField string

const (
	FieldMediaURL   LookupField = "media_url"
	FieldTitle      LookupField = "title"
	FieldGUID       LookupField = "guid"
	FieldWebsiteURL LookupField = "website_url"
)

func (f LookupField) valid() bool {
	switch f {
	case FieldMediaURL, FieldTitle, FieldGUID, FieldWebsiteURL:
		return true
	}
	return false
}

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements EpisodeRepository interface
var _ EpisodeRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("episode with slug %q already exists for podcast %d: %w", episode.Slug, episode.PodcastID, err)
		}
		return fmt.Errorf("creating episode: %w", err)
	}
	return nil
}

// UpdatePublishedAt persists episode.PublishedAt and nothing else
func (r *Repository) UpdatePublishedAt(ctx context.Context, episode *models.Episode) error {
	return r.updateColumn(ctx, episode.ID, "published_at", episode.PublishedAt)
}

// UpdateMediaURL persists a new media URL and mirrors it onto episode
func (r *Repository) UpdateMediaURL(ctx context.Context, episode *models.Episode, mediaURL string) error {
	if err := r.updateColumn(ctx, episode.ID, "media_url", mediaURL); err != nil {
		return err
	}
	episode.MediaURL = mediaURL
	return nil
}

func (r *Repository) updateColumn(ctx context.Context, id uint, column string, value interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return fmt.Errorf("updating episode %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError(id)
	}
	return nil
}

// FindBy returns the podcast's episodes whose field equals value, oldest first
func (r *Repository) FindBy(ctx context.Context, podcastID uint, field LookupField, value string) ([]models.Episode, error) {
	if !field.valid() {
		return nil, fmt.Errorf("unsupported lookup field %q", field)
	}

	var episodes []models.Episode
	if err := r.db.WithContext(ctx).
		Where("podcast_id = ?", podcastID).
		Where(fmt.Sprintf("%s = ?", field), value).
		Order("id ASC").
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("finding episodes by %s: %w", field, err)
	}
	return episodes, nil
}

func (r *Repository) GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(id)
		}
		return nil, fmt.Errorf("getting episode: %w", err)
	}
	return &episode, nil
}

func (r *Repository) GetEpisodesByPodcastID(ctx context.Context, podcastID uint, page, limit int) ([]models.Episode, int64, error) {
	var episodes []models.Episode
	var total int64

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&models.Episode{}).Where("podcast_id = ?", podcastID).Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting episodes: %w", err)
	}

	// undated episodes first on every driver, then newest first
	if err := query.
		Order("published_at IS NULL DESC").
		Order("published_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&episodes).Error; err != nil {
		return nil, 0, fmt.Errorf("getting episodes: %w", err)
	}

	return episodes, total, nil
}
