package handler

import (
	"net/http"
	"strconv"

	"antipodes-api/internal/models"

	"github.com/gin-gonic/gin"
)

// coordinateQuery parses the lat and lon query parameters, writing a 400 response when they are unusable.
func coordinateQuery(c *gin.Context) (models.Coordinate, bool) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return models.Coordinate{}, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return models.Coordinate{}, false
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return models.Coordinate{}, false
	}

	coord := models.Coordinate{Latitude: lat, Longitude: lon}
	if !coord.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errOutOfRange})
		return models.Coordinate{}, false
	}

	return coord, true
}

const errOutOfRange = "latitude must be within [-90, 90] and longitude within [-180, 180]"
