package handler

import (
	"context"
	"net/http"

	"antipodes-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// LocationsHandler resolves a coordinate and its antipode to words
type LocationsHandler struct {
	service LocationWordsService
}

// Service interface for dependency injection
type LocationWordsService interface {
	Resolve(context.Context, models.Coordinate) (models.SelectionResult, error)
}

// NewLocationsHandler creates a new locations handler
func NewLocationsHandler(svc LocationWordsService) *LocationsHandler {
	return &LocationsHandler{service: svc}
}

// Locations handles GET /locations requests
//
//	@Summary	Resolve a coordinate and its antipode to words
//	@Tags		locations
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude in [-90, 90]"
//	@Param		lon	query		number	true	"Longitude in [-180, 180]"
//	@Success	200	{object}	models.SelectionResult
//	@Failure	400	{object}	map[string]string
//	@Failure	502	{object}	map[string]string
//	@Router		/locations [get]
func (h *LocationsHandler) Locations(c *gin.Context) {
	coord, ok := coordinateQuery(c)
	if !ok {
		return
	}

	result, err := h.service.Resolve(c.Request.Context(), coord)
	if err != nil {
		writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// writeLookupError reports lookup taxonomy errors as 502 with their message and anything else as 500.
func writeLookupError(c *gin.Context, err error) {
	logger := zerolog.Ctx(c.Request.Context())
	if models.IsLookupError(err) {
		logger.Warn().Err(err).Msg("word lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	logger.Error().Err(err).Msg("resolve locations failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
