package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators served by the router.
type Dependencies struct {
	Locations LocationWordsService
	Selection SelectionMachine
	Metrics   http.Handler
}

// NewRouter registers every route on a new gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	locationsHandler := NewLocationsHandler(deps.Locations)
	selectionHandler := NewSelectionHandler(deps.Selection)

	r.GET("/antipode", Antipode)
	r.GET("/locations", locationsHandler.Locations)

	r.GET("/selection", selectionHandler.Get)
	r.POST("/selection", selectionHandler.Select)
	r.DELETE("/selection", selectionHandler.Clear)
	r.GET("/selection/events", selectionHandler.Events)

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
