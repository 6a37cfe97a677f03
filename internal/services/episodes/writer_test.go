package episodes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/killallgit/podcast-sync/internal/models"
	"github.com/killallgit/podcast-sync/internal/services/feeds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWriter_CreateFrom(t *testing.T) {
	ctx := context.Background()
	podcast := testPodcast(false)

	t.Run("maps item fields", func(t *testing.T) {
		repo := new(MockRepository)
		media := new(MockMediaResolver)
		item := feeds.RawFeedItem{
			Title:         "Ep1",
			Subtitle:      "sub",
			Summary:       "summary",
			Description:   "description",
			Link:          "https://site/ep1",
			GUID:          "guid-1",
			EnclosureURL:  "http://a.mp3",
			PublishedDate: "Tue, 03 Sep 2024 10:00:00 +0000",
		}
		media.On("ResolveForCreate", ctx, item, podcast).Return("https://a.mp3")
		repo.On("CreateEpisode", ctx, mock.AnythingOfType("*models.Episode")).Return(nil)

		episode, err := NewWriter(repo, media, nil).CreateFrom(ctx, item, podcast)
		require.NoError(t, err)

		assert.Equal(t, uint(7), episode.PodcastID)
		assert.Equal(t, "Ep1", episode.Title)
		assert.Equal(t, "ep1", episode.Slug)
		assert.Equal(t, "sub", episode.Subtitle)
		assert.Equal(t, "summary", episode.Summary)
		assert.Equal(t, "https://site/ep1", episode.WebsiteURL)
		assert.Equal(t, "guid-1", episode.GUID)
		assert.Equal(t, "https://a.mp3", episode.MediaURL)
		assert.Equal(t, "summary", episode.Body)
		require.NotNil(t, episode.PublishedAt)
		assert.True(t, time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC).Equal(*episode.PublishedAt))

		repo.AssertExpectations(t)
		media.AssertExpectations(t)
	})

	t.Run("bad date still creates the episode", func(t *testing.T) {
		repo := new(MockRepository)
		media := new(MockMediaResolver)
		item := feeds.RawFeedItem{Title: "Ep2", EnclosureURL: "https://b.mp3", PublishedDate: "not-a-date"}
		media.On("ResolveForCreate", ctx, item, podcast).Return("https://b.mp3")
		repo.On("CreateEpisode", ctx, mock.AnythingOfType("*models.Episode")).Return(nil)

		episode, err := NewWriter(repo, media, nil).CreateFrom(ctx, item, podcast)
		require.NoError(t, err)
		assert.Nil(t, episode.PublishedAt)
		repo.AssertExpectations(t)
	})

	t.Run("storage rejection is a persistence failure", func(t *testing.T) {
		repo := new(MockRepository)
		media := new(MockMediaResolver)
		item := feeds.RawFeedItem{Title: "Ep1", EnclosureURL: "https://a.mp3"}
		media.On("ResolveForCreate", ctx, item, podcast).Return("https://a.mp3")
		repo.On("CreateEpisode", ctx, mock.Anything).Return(errors.New("UNIQUE constraint failed"))

		episode, err := NewWriter(repo, media, nil).CreateFrom(ctx, item, podcast)
		assert.Nil(t, episode)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPersistence)

		var persistErr *PersistenceError
		require.ErrorAs(t, err, &persistErr)
		assert.Equal(t, "create", persistErr.Op)
		assert.Equal(t, "Ep1", persistErr.Title)
	})

	t.Run("no media url is never stored", func(t *testing.T) {
		repo := new(MockRepository)
		media := new(MockMediaResolver)
		item := feeds.RawFeedItem{Title: "Ep3"}
		media.On("ResolveForCreate", ctx, item, podcast).Return("")

		_, err := NewWriter(repo, media, nil).CreateFrom(ctx, item, podcast)
		assert.ErrorIs(t, err, ErrPersistence)
		repo.AssertNotCalled(t, "CreateEpisode", mock.Anything, mock.Anything)
	})
}

func TestWriter_Body(t *testing.T) {
	w := NewWriter(nil, nil, nil)

	tests := []struct {
		name string
		item feeds.RawFeedItem
		want string
	}{
		{
			name: "rich content first",
			item: feeds.RawFeedItem{RichContent: "<p>rich</p>", Summary: "summary", Description: "description"},
			want: "<p>rich</p>",
		},
		{
			name: "summary when rich content is blank",
			item: feeds.RawFeedItem{RichContent: "  \n", Summary: "summary", Description: "description"},
			want: "summary",
		},
		{
			name: "description last",
			item: feeds.RawFeedItem{Description: "description"},
			want: "description",
		},
		{
			name: "scripts are stripped",
			item: feeds.RawFeedItem{RichContent: `<p>hi</p><script>alert(1)</script>`},
			want: "<p>hi</p>",
		},
		{
			name: "nothing",
			item: feeds.RawFeedItem{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.body(tt.item))
		})
	}
}

func TestWriter_UpdateFrom(t *testing.T) {
	ctx := context.Background()
	podcast := testPodcast(false)
	item := feeds.RawFeedItem{
		Title:         "Ep1",
		EnclosureURL:  "https://a.mp3",
		PublishedDate: "2024-09-03",
	}

	t.Run("heals missing publish date and upgrades transport", func(t *testing.T) {
		repo := new(MockRepository)
		media := new(MockMediaResolver)
		episode := &models.Episode{Title: "Ep1", MediaURL: "http://a.mp3"}

		repo.On("UpdatePublishedAt", ctx, episode).Return(nil)
		media.On("UpgradeTransport", ctx, episode, item).Return(nil)

		require.NoError(t, NewWriter(repo, media, nil).UpdateFrom(ctx, episode, item, podcast))
		require.NotNil(t, episode.PublishedAt)
		assert.True(t, time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC).Equal(*episode.PublishedAt))

		repo.AssertExpectations(t)
		media.AssertExpectations(t)
	})

	t.Run("existing publish date is left alone", func(t *testing.T) {
		repo := new(MockRepository)
		media := new(MockMediaResolver)
		original := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		episode := &models.Episode{Title: "Ep1", MediaURL: "https://a.mp3", PublishedAt: &original}

		media.On("UpgradeTransport", ctx, episode, item).Return(nil)

		require.NoError(t, NewWriter(repo, media, nil).UpdateFrom(ctx, episode, item, podcast))
		assert.Equal(t, original, *episode.PublishedAt)
		repo.AssertNotCalled(t, "UpdatePublishedAt", mock.Anything, mock.Anything)
	})

	t.Run("unreadable date is not an error", func(t *testing.T) {
		repo := new(MockRepository)
		media := new(MockMediaResolver)
		episode := &models.Episode{Title: "Ep1", MediaURL: "http://a.mp3"}
		bad := item
		bad.PublishedDate = "not-a-date"

		media.On("UpgradeTransport", ctx, episode, bad).Return(nil)

		require.NoError(t, NewWriter(repo, media, nil).UpdateFrom(ctx, episode, bad, podcast))
		assert.Nil(t, episode.PublishedAt)
		repo.AssertNotCalled(t, "UpdatePublishedAt", mock.Anything, mock.Anything)
	})

	t.Run("save failure still attempts the upgrade", func(t *testing.T) {
		repo := new(MockRepository)
		media := new(MockMediaResolver)
		episode := &models.Episode{Title: "Ep1", MediaURL: "http://a.mp3"}

		repo.On("UpdatePublishedAt", ctx, episode).Return(errors.New("disk I/O error"))
		media.On("UpgradeTransport", ctx, episode, item).Return(nil)

		err := NewWriter(repo, media, nil).UpdateFrom(ctx, episode, item, podcast)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPersistence)
		assert.Nil(t, episode.PublishedAt)
		media.AssertExpectations(t)
	})

	t.Run("upgrade failure is only logged", func(t *testing.T) {
		repo := new(MockRepository)
		media := new(MockMediaResolver)
		published := time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC)
		episode := &models.Episode{Title: "Ep1", MediaURL: "http://a.mp3", PublishedAt: &published}

		media.On("UpgradeTransport", ctx, episode, item).Return(errors.New("database is locked"))

		assert.NoError(t, NewWriter(repo, media, nil).UpdateFrom(ctx, episode, item, podcast))
	})
}

func TestWriter_CreateFrom_Database(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	podcast := createPodcast(t, db, false)
	ctx := context.Background()

	media := new(MockMediaResolver)
	media.On("ResolveForCreate", ctx, mock.Anything, podcast).Return("https://a.mp3")
	writer := NewWriter(repo, media, nil)

	_, err := writer.CreateFrom(ctx, feeds.RawFeedItem{Title: "Ep1", EnclosureURL: "https://a.mp3"}, podcast)
	require.NoError(t, err)

	// "EP1" slugs to the same "ep1"
	_, err = writer.CreateFrom(ctx, feeds.RawFeedItem{Title: "EP1", EnclosureURL: "https://a.mp3"}, podcast)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
}
