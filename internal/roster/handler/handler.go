// Package handler provides HTTP handlers for roster endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	rosterModel "github.com/pitchside/league/internal/roster/model"
	"github.com/pitchside/league/internal/roster/service"
)

// Handler handles HTTP requests for roster endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new roster handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AddPlayer handles POST /teams/:teamId/players request.
func (h *Handler) AddPlayer(c *gin.Context) {
	teamID := c.Param("teamId")

	var req rosterModel.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	player, err := h.service.AddPlayer(c.Request.Context(), teamID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rosterModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, rosterModel.ErrInvalidRole):
			errorResponse(c, "INVALID_ROLE", "role must be one of: Batsman, Bowler, All-rounder, Wicket Keeper", http.StatusBadRequest)
		case errors.Is(err, rosterModel.ErrInvalidPlayerName):
			errorResponse(c, "INVALID_REQUEST", "player name is required", http.StatusBadRequest)
		case errors.Is(err, rosterModel.ErrRosterFull):
			errorResponse(c, "ROSTER_FULL", "a team cannot have more than 11 players", http.StatusConflict)
		default:
			h.logger.Errorw("error adding player", "team_id", teamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, player)
}

// RemovePlayer handles DELETE /teams/:teamId/players/:playerId request.
func (h *Handler) RemovePlayer(c *gin.Context) {
	teamID := c.Param("teamId")
	playerID := c.Param("playerId")

	removed, err := h.service.RemovePlayer(c.Request.Context(), teamID, playerID)
	if err != nil {
		h.logger.Errorw("error removing player",
			"team_id", teamID, "player_id", playerID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	if !removed {
		notFoundResponse(c, "team or player not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateRole handles PATCH /teams/:teamId/players/:playerId request.
func (h *Handler) UpdateRole(c *gin.Context) {
	teamID := c.Param("teamId")
	playerID := c.Param("playerId")

	var req rosterModel.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	player, err := h.service.UpdateRole(c.Request.Context(), teamID, playerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rosterModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, rosterModel.ErrPlayerNotFound):
			notFoundResponse(c, "player not found")
		case errors.Is(err, rosterModel.ErrInvalidRole):
			errorResponse(c, "INVALID_ROLE", "role must be one of: Batsman, Bowler, All-rounder, Wicket Keeper", http.StatusBadRequest)
		default:
			h.logger.Errorw("error updating role",
				"team_id", teamID, "player_id", playerID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetRoster handles GET /teams/:teamId/players request.
func (h *Handler) GetRoster(c *gin.Context) {
	teamID := c.Param("teamId")

	roster, err := h.service.GetRoster(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, rosterModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting roster", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, roster)
}
