package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// HandleServiceError maps service-layer errors onto HTTP statuses. Upstream
// detail stays in the server log; clients get a category message only.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRoute):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTokenRefresh):
		log.Error().Err(err).Msg("token refresh failed")
		RespondError(c, http.StatusUnauthorized, "Authentication expired, please re-authenticate")
	case errors.Is(err, ErrAuthExchange):
		log.Error().Err(err).Msg("authentication failed")
		RespondError(c, http.StatusInternalServerError, "Authentication failed")
	case errors.Is(err, ErrUpstreamAPI):
		log.Error().Err(err).Msg("upstream api failure")
		RespondError(c, http.StatusInternalServerError, "Failed to fetch activity data")
	case errors.Is(err, ErrPoiResolution):
		log.Error().Err(err).Msg("poi resolution failed")
		RespondError(c, http.StatusInternalServerError, "Failed to retrieve points of interest")
	default:
		log.Error().Err(err).Msg("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
