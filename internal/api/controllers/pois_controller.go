package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"routediscovery/internal/models/request_models"
	"routediscovery/internal/services"
	"routediscovery/pkg/utils"
)

type POIsController struct {
	poiService services.POIServiceInterface
	logger     zerolog.Logger
}

func NewPOIsController(poiService services.POIServiceInterface, logger zerolog.Logger) *POIsController {
	return &POIsController{
		poiService: poiService,
		logger:     logger,
	}
}

// FindPois resolves points of interest near the posted route.
func (p *POIsController) FindPois(c *gin.Context) {
	var req request_models.FindPoisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Route must be a list with at least 2 coordinate pairs")
		return
	}

	// The resolver works in [lng, lat] order.
	routeCoords := make([][]float64, 0, len(req.Route))
	for _, pair := range req.Route {
		routeCoords = append(routeCoords, []float64{pair[1], pair[0]})
	}

	pois, err := p.poiService.FindPoisForRoute(c.Request.Context(), routeCoords)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	p.logger.Info().Int("count", len(pois)).Msg("found pois for route")
	c.JSON(http.StatusOK, pois)
}
