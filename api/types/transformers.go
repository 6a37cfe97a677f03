package types

import (
	"github.com/killallgit/podcast-sync/internal/models"
)

// FromModelEpisode transforms a database model episode to the API Episode type
func FromModelEpisode(e *models.Episode) *Episode {
	if e == nil {
		return nil
	}

	published := ""
	if e.PublishedAt != nil {
		published = e.PublishedAt.UTC().Format("2006-01-02")
	}

	return &Episode{
		ID:          e.ID,
		PodcastID:   e.PodcastID,
		Title:       e.Title,
		Slug:        e.Slug,
		Subtitle:    e.Subtitle,
		Summary:     e.Summary,
		Link:        e.WebsiteURL,
		GUID:        e.GUID,
		AudioURL:    e.MediaURL,
		Secure:      e.HasSecureMedia(),
		PublishedAt: published,
		Body:        e.Body,
	}
}

// FromModelEpisodeList transforms a list of database model episodes
func FromModelEpisodeList(episodes []models.Episode) []Episode {
	result := make([]Episode, 0, len(episodes))
	for i := range episodes {
		if transformed := FromModelEpisode(&episodes[i]); transformed != nil {
			result = append(result, *transformed)
		}
	}
	return result
}

// FromModelPodcast transforms a database model podcast to the API Podcast type
func FromModelPodcast(p *models.Podcast) *Podcast {
	if p == nil {
		return nil
	}

	lastSynced := int64(0)
	if p.LastSyncedAt != nil {
		lastSynced = p.LastSyncedAt.Unix()
	}

	return &Podcast{
		ID:               p.ID,
		Title:            p.Title,
		FeedURL:          p.FeedURL,
		UniqueWebsiteURL: p.UniqueWebsiteURL,
		StatusNotice:     p.StatusNotice,
		LastSyncedAt:     lastSynced,
		LastSyncError:    p.LastSyncError,
		LastItemCount:    p.LastItemCount,
	}
}
