package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"routediscovery/internal/models/response_models"
	"routediscovery/internal/services"
	"routediscovery/pkg/middleware"
	"routediscovery/pkg/utils"
)

const defaultActivitiesPerPage = 50

type ActivitiesController struct {
	stravaService services.StravaServiceInterface
	logger        zerolog.Logger
}

func NewActivitiesController(stravaService services.StravaServiceInterface, logger zerolog.Logger) *ActivitiesController {
	return &ActivitiesController{
		stravaService: stravaService,
		logger:        logger,
	}
}

// ListActivities returns the user's activities that carry GPS data.
func (a *ActivitiesController) ListActivities(c *gin.Context) {
	accessToken := c.GetString(middleware.ContextAccessTokenKey)

	raw, err := a.stravaService.ListActivities(c.Request.Context(), accessToken, 1, defaultActivitiesPerPage)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to fetch activities")
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}

	activities := services.BuildActivitySummaries(raw)
	a.logger.Info().Int("count", len(activities)).Msg("fetched activities for user")
	c.JSON(http.StatusOK, activities)
}

// GetStream returns the [lat, lng] stream for one activity. An activity
// without GPS data is a 404, distinct from an upstream failure.
func (a *ActivitiesController) GetStream(c *gin.Context) {
	activityID, ok := a.activityID(c)
	if !ok {
		return
	}

	stream, err := a.stravaService.GetActivityStream(c.Request.Context(), activityID, c.GetString(middleware.ContextAccessTokenKey))
	if err != nil {
		a.logger.Error().Err(err).Int64("activity_id", activityID).Msg("failed to fetch stream")
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch activity data")
		return
	}
	if len(stream) == 0 {
		utils.RespondError(c, http.StatusNotFound, "No GPS data found for this activity")
		return
	}

	c.JSON(http.StatusOK, response_models.StreamResponse{Stream: stream})
}

// GetGPX returns the activity's stream rendered as a GPX document.
func (a *ActivitiesController) GetGPX(c *gin.Context) {
	activityID, ok := a.activityID(c)
	if !ok {
		return
	}

	stream, err := a.stravaService.GetActivityStream(c.Request.Context(), activityID, c.GetString(middleware.ContextAccessTokenKey))
	if err != nil {
		a.logger.Error().Err(err).Int64("activity_id", activityID).Msg("failed to fetch stream for gpx")
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch activity data")
		return
	}
	if len(stream) == 0 {
		utils.RespondError(c, http.StatusNotFound, "No GPS data found for this activity")
		return
	}

	gpx := utils.BuildGPX(fmt.Sprintf("Activity %d", activityID), stream)
	c.JSON(http.StatusOK, response_models.GPXResponse{GPX: gpx})
}

func (a *ActivitiesController) activityID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID must be an integer")
		return 0, false
	}
	return id, true
}
