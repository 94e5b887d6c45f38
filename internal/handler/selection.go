package handler

import (
	"context"
	"net/http"

	"antipodes-api/internal/models"
	"antipodes-api/internal/selection"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// eventBuffer bounds how many snapshots a slow event stream client may lag behind.
const eventBuffer = 32

// SelectionMachine is the state machine driven by the selection endpoints.
type SelectionMachine interface {
	Select(context.Context, models.Coordinate) <-chan struct{}
	Clear()
	Snapshot() selection.Snapshot
	Subscribe(selection.Observer) func()
}

// SelectionHandler exposes the selection state machine to HTTP clients.
type SelectionHandler struct {
	machine SelectionMachine
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(m SelectionMachine) *SelectionHandler {
	return &SelectionHandler{machine: m}
}

// SelectRequest is the body of POST /selection.
type SelectRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// Get handles GET /selection requests
//
//	@Summary	Current selection state
//	@Tags		selection
//	@Produce	json
//	@Success	200	{object}	selection.Snapshot
//	@Router		/selection [get]
func (h *SelectionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.machine.Snapshot())
}

// Select handles POST /selection requests. The state is Loading when the
// response is written; with ?wait=true the response carries the final state.
//
//	@Summary	Select a coordinate
//	@Tags		selection
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SelectRequest	true	"Selected coordinate"
//	@Param		wait	query		bool			false	"Block until the selection is resolved"
//	@Success	200		{object}	selection.Snapshot
//	@Success	202		{object}	selection.Snapshot
//	@Failure	400		{object}	map[string]string
//	@Router		/selection [post]
func (h *SelectionHandler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must contain 'latitude' and 'longitude'"})
		return
	}

	coord := models.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if !coord.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errOutOfRange})
		return
	}

	// The selection outlives the request unless the caller waits for it.
	done := h.machine.Select(context.WithoutCancel(c.Request.Context()), coord)

	if c.Query("wait") != "true" {
		c.JSON(http.StatusAccepted, h.machine.Snapshot())
		return
	}

	select {
	case <-done:
		c.JSON(http.StatusOK, h.machine.Snapshot())
	case <-c.Request.Context().Done():
		c.Status(http.StatusRequestTimeout)
	}
}

// Clear handles DELETE /selection requests
//
//	@Summary	Clear the selection
//	@Tags		selection
//	@Produce	json
//	@Success	200	{object}	selection.Snapshot
//	@Router		/selection [delete]
func (h *SelectionHandler) Clear(c *gin.Context) {
	h.machine.Clear()
	c.JSON(http.StatusOK, h.machine.Snapshot())
}

// Events handles GET /selection/events, streaming every published snapshot as a server-sent event.
//
//	@Summary	Stream selection changes
//	@Tags		selection
//	@Produce	text/event-stream
//	@Success	200
//	@Router		/selection/events [get]
func (h *SelectionHandler) Events(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())
	events := make(chan selection.Snapshot, eventBuffer)

	unsubscribe := h.machine.Subscribe(func(s selection.Snapshot) {
		select {
		case events <- s:
		default:
			logger.Warn().Str("state", string(s.State.Kind)).Msg("selection event dropped for slow client")
		}
	})
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	ctx := c.Request.Context()
	for {
		select {
		case s := <-events:
			c.SSEvent("selection", s)
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}
