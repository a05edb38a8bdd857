// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/pitchside/league/internal/team/model"
	"github.com/pitchside/league/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /teams request.
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamExists) {
			errorResponse(c, "TEAM_EXISTS", "team name already exists", http.StatusConflict)
			return
		}
		if errors.Is(err, teamModel.ErrInvalidTeamName) {
			errorResponse(c, "INVALID_REQUEST", "team name is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating team", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTeam handles GET /teams/:teamId request.
func (h *Handler) GetTeam(c *gin.Context) {
	teamID := c.Param("teamId")

	resp, err := h.service.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTeams handles GET /teams request.
func (h *Handler) ListTeams(c *gin.Context) {
	resp, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
