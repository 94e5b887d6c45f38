package handler

import (
	"net/http"

	"antipodes-api/internal/geo"
	"antipodes-api/internal/models"

	"github.com/gin-gonic/gin"
)

// AntipodeResponse pairs a coordinate with its antipode.
type AntipodeResponse struct {
	Coordinate models.Coordinate `json:"coordinate"`
	Antipode   models.Coordinate `json:"antipode"`
}

// Antipode handles GET /antipode requests
//
//	@Summary	Compute the antipode of a coordinate
//	@Tags		antipode
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude in [-90, 90]"
//	@Param		lon	query		number	true	"Longitude in [-180, 180]"
//	@Success	200	{object}	AntipodeResponse
//	@Failure	400	{object}	map[string]string
//	@Router		/antipode [get]
func Antipode(c *gin.Context) {
	coord, ok := coordinateQuery(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, AntipodeResponse{Coordinate: coord, Antipode: geo.Antipode(coord)})
}
