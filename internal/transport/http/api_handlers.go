package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sketchwire/sketchwire-server/internal/core"
)

// APIHandlers provides the read-only REST inspection surface over live
// rooms. All reads go through the hub loop, so they never race it.
type APIHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(hub *core.Hub, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{hub: hub, log: logger}
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RoomSummaryResponse represents one room in the room list.
type RoomSummaryResponse struct {
	Code         string `json:"code"`
	Participants int    `json:"participants"`
	Strokes      int    `json:"strokes"`
}

// ParticipantResponse represents a room member in API responses.
type ParticipantResponse struct {
	ConnID string `json:"connId"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

// RoomDetailResponse represents a single room.
type RoomDetailResponse struct {
	Code         string                `json:"code"`
	Participants []ParticipantResponse `json:"participants"`
	Strokes      int                   `json:"strokes"`
}

// ListRooms handles GET /api/v1/rooms.
func (h *APIHandlers) ListRooms(c *gin.Context) {
	summaries, err := h.hub.RoomSummaries(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list rooms")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	out := make([]RoomSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = RoomSummaryResponse{
			Code:         s.Code,
			Participants: s.Participants,
			Strokes:      s.Strokes,
		}
	}
	c.JSON(http.StatusOK, out)
}

// GetRoom handles GET /api/v1/rooms/:code.
func (h *APIHandlers) GetRoom(c *gin.Context) {
	code := c.Param("code")

	detail, err := h.hub.LookupRoom(c.Request.Context(), code)
	if err != nil {
		h.log.Error().Err(err).Str("room", code).Msg("failed to look up room")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
		return
	}

	participants := make([]ParticipantResponse, len(detail.Participants))
	for i, p := range detail.Participants {
		participants[i] = ParticipantResponse{
			ConnID: p.ConnID,
			Name:   p.Name,
			Color:  p.Color,
		}
	}
	c.JSON(http.StatusOK, RoomDetailResponse{
		Code:         detail.Code,
		Participants: participants,
		Strokes:      detail.Strokes,
	})
}
