package podcasts

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-sync/api/types"
	"github.com/killallgit/podcast-sync/internal/services/feeds"
	podcastsService "github.com/killallgit/podcast-sync/internal/services/podcasts"
	"go.uber.org/zap"
)

// PostSync syncs one podcast from its feed right away
// @Summary      Sync a podcast now
// @Description  Fetch the podcast's feed and reconcile its items with stored episodes.
// @Description  An unreachable or malformed feed is not an HTTP error: the report carries it.
// @Tags         sync
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Param        max query int false "Maximum feed items to read" minimum(1) maximum(1000) default(1000)
// @Success      200 {object} types.SyncResponse "Sync report"
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID format"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Failure      500 {object} types.ErrorResponse "Failed to sync podcast"
// @Router       /api/v1/podcasts/{id}/sync [post]
func PostSync(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		limit := types.QueryInt(c, "max", feeds.DefaultItemLimit, 1, feeds.DefaultItemLimit)

		report, err := deps.SyncService.SyncPodcastByID(c.Request.Context(), podcastID, limit)
		if err != nil {
			if podcastsService.IsNotFound(err) {
				types.SendNotFound(c, "Podcast not found")
				return
			}
			deps.Log().Error("failed to sync podcast", zap.Uint("podcast_id", podcastID), zap.Error(err))
			types.SendInternalError(c, "Failed to sync podcast")
			return
		}

		status, message := types.StatusOK, fmt.Sprintf("Synced %d of %d feed items", report.ItemsProcessed, report.ItemsSeen)
		if !report.OK() {
			status, message = types.StatusError, "Feed could not be synced"
		}

		types.SendSuccess(c, types.SyncResponse{
			BaseResponse: types.BaseResponse{Status: status, Message: message},
			Report:       report,
		})
	}
}
