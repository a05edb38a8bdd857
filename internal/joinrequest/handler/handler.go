// Package handler provides HTTP handlers for join request endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	jrModel "github.com/pitchside/league/internal/joinrequest/model"
	"github.com/pitchside/league/internal/joinrequest/service"
	rosterModel "github.com/pitchside/league/internal/roster/model"
)

// Handler handles HTTP requests for join request endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new join request handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SubmitRequest handles POST /teams/:teamId/join request.
func (h *Handler) SubmitRequest(c *gin.Context) {
	teamID := c.Param("teamId")

	var req jrModel.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	request, err := h.service.SubmitRequest(c.Request.Context(), teamID, &req)
	if err != nil {
		switch {
		case errors.Is(err, jrModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, jrModel.ErrAlreadyMember):
			errorResponse(c, "ALREADY_MEMBER", "player is already a member of this team", http.StatusConflict)
		case errors.Is(err, jrModel.ErrDuplicateRequest):
			errorResponse(c, "DUPLICATE_REQUEST", "a pending request for this player already exists", http.StatusConflict)
		case errors.Is(err, jrModel.ErrInvalidPlayerID), errors.Is(err, jrModel.ErrInvalidPlayerName):
			errorResponse(c, "INVALID_REQUEST", "player_id and player_name are required", http.StatusBadRequest)
		default:
			h.logger.Errorw("error submitting join request", "team_id", teamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ResolveRequest handles PATCH /teams/:teamId/requests/:requestId request.
func (h *Handler) ResolveRequest(c *gin.Context) {
	teamID := c.Param("teamId")
	requestID := c.Param("requestId")

	var req jrModel.ResolveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resolved, err := h.service.ResolveRequest(c.Request.Context(), teamID, requestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, jrModel.ErrInvalidDecision):
			errorResponse(c, "INVALID_DECISION", "status must be approved or denied", http.StatusBadRequest)
		case errors.Is(err, rosterModel.ErrInvalidRole):
			errorResponse(c, "INVALID_ROLE", "role must be one of: Batsman, Bowler, All-rounder, Wicket Keeper", http.StatusBadRequest)
		case errors.Is(err, rosterModel.ErrRosterFull):
			errorResponse(c, "ROSTER_FULL", "a team cannot have more than 11 players", http.StatusConflict)
		default:
			h.logger.Errorw("error resolving join request",
				"team_id", teamID, "request_id", requestID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	if !resolved {
		notFoundResponse(c, "request not found or already handled")
		return
	}

	c.JSON(http.StatusOK, gin.H{"resolved": true})
}

// ListRequests handles GET /teams/:teamId/requests request.
func (h *Handler) ListRequests(c *gin.Context) {
	teamID := c.Param("teamId")
	statusFilter := c.Query("status")

	resp, err := h.service.ListRequests(c.Request.Context(), teamID, statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, jrModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, jrModel.ErrInvalidStatusFilter):
			errorResponse(c, "INVALID_REQUEST", "status must be one of: pending, approved, denied", http.StatusBadRequest)
		default:
			h.logger.Errorw("error listing join requests", "team_id", teamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
