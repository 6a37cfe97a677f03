package podcasts

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-sync/api/types"
	podcastsService "github.com/killallgit/podcast-sync/internal/services/podcasts"
	"go.uber.org/zap"
)

// GetEpisodesForPodcast returns the stored episodes of a podcast
// @Summary      List stored episodes
// @Description  Retrieve the episodes sync has stored for a podcast, newest first.
// @Description  Episodes without a publish date are listed last.
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Param        page query int false "Page number" minimum(1) default(1)
// @Param        max query int false "Episodes per page" minimum(1) maximum(1000) default(20)
// @Success      200 {object} types.EpisodesResponse "Page of stored episodes"
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID format"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Failure      500 {object} types.ErrorResponse "Failed to load episodes"
// @Router       /api/v1/podcasts/{id}/episodes [get]
func GetEpisodesForPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		page := types.QueryInt(c, "page", 1, 1, 1<<20)
		limit := types.QueryInt(c, "max", 20, 1, 1000)

		ctx := c.Request.Context()
		if _, err := deps.Podcasts.GetPodcastByID(ctx, podcastID); err != nil {
			if podcastsService.IsNotFound(err) {
				types.SendNotFound(c, "Podcast not found")
				return
			}
			deps.Log().Error("failed to load podcast", zap.Uint("podcast_id", podcastID), zap.Error(err))
			types.SendInternalError(c, "Failed to load episodes")
			return
		}

		stored, total, err := deps.Episodes.GetEpisodesByPodcastID(ctx, podcastID, page, limit)
		if err != nil {
			deps.Log().Error("failed to load episodes", zap.Uint("podcast_id", podcastID), zap.Error(err))
			types.SendInternalError(c, "Failed to load episodes")
			return
		}

		episodes := types.FromModelEpisodeList(stored)
		types.SendSuccess(c, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: fmt.Sprintf("Found %d episodes for podcast", len(episodes)),
			},
			Episodes: episodes,
			Count:    len(episodes),
			Total:    total,
			Page:     page,
		})
	}
}
