package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-sync/api/types"
	podcastsService "github.com/killallgit/podcast-sync/internal/services/podcasts"
	"go.uber.org/zap"
)

// GetPodcast returns a stored podcast with its latest sync state
// @Summary      Get podcast sync state
// @Description  Retrieve a stored podcast, including its status notice and the outcome of its latest sync.
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Success      200 {object} types.SinglePodcastResponse "Podcast with sync bookkeeping"
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID format"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Failure      500 {object} types.ErrorResponse "Failed to load podcast"
// @Router       /api/v1/podcasts/{id} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		podcast, err := deps.Podcasts.GetPodcastByID(c.Request.Context(), podcastID)
		if err != nil {
			if podcastsService.IsNotFound(err) {
				types.SendNotFound(c, "Podcast not found")
				return
			}
			deps.Log().Error("failed to load podcast", zap.Uint("podcast_id", podcastID), zap.Error(err))
			types.SendInternalError(c, "Failed to load podcast")
			return
		}

		types.SendSuccess(c, types.SinglePodcastResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Podcast retrieved successfully",
			},
			Podcast: types.FromModelPodcast(podcast),
		})
	}
}
