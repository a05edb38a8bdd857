// Package service provides the business logic layer for the joinrequest module.
//
// The service owns the join request lifecycle: pending requests are
// created here, and resolution is the single integration point with the
// roster module. On approval the roster insert and the status transition
// run in one transaction, so a full roster leaves the request pending.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	jrModel "github.com/pitchside/league/internal/joinrequest/model"
	"github.com/pitchside/league/internal/joinrequest/repository"
	"github.com/pitchside/league/internal/notification"
	rosterModel "github.com/pitchside/league/internal/roster/model"
	rosterRepository "github.com/pitchside/league/internal/roster/repository"
)

// errAlreadyResolved aborts a resolution transaction when another writer
// resolved the request first. Mapped to a false result, not an error.
var errAlreadyResolved = errors.New("request already resolved")

// Service defines the interface for join request business logic operations.
type Service interface {
	// SubmitRequest creates a pending join request for a team.
	SubmitRequest(ctx context.Context, teamID string, req *jrModel.SubmitRequestRequest) (*jrModel.JoinRequest, error)

	// ResolveRequest approves or denies a pending join request.
	// Returns false without an error when the request is missing, belongs
	// to another team, or was already resolved.
	ResolveRequest(ctx context.Context, teamID, requestID string, req *jrModel.ResolveRequestRequest) (bool, error)

	// ListRequests returns a team's join requests matching a status filter.
	ListRequests(ctx context.Context, teamID string, statusFilter string) (*jrModel.ListRequestsResponse, error)
}

type service struct {
	repo       repository.Repository
	rosterRepo rosterRepository.Repository
	db         *gorm.DB
	logger     *zap.SugaredLogger
	dispatcher *notification.Dispatcher
}

// New creates a new join request service instance.
func New(
	repo repository.Repository,
	rosterRepo rosterRepository.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
	dispatcher *notification.Dispatcher,
) Service {
	return &service{
		repo:       repo,
		rosterRepo: rosterRepo,
		db:         db,
		logger:     logger,
		dispatcher: dispatcher,
	}
}

// SubmitRequest creates a pending join request for a team.
// Preconditions are checked in order: team exists, player is not already
// a member, no pending request for the same pair.
func (s *service) SubmitRequest(
	ctx context.Context,
	teamID string,
	req *jrModel.SubmitRequestRequest,
) (*jrModel.JoinRequest, error) {
	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" {
		return nil, jrModel.ErrInvalidPlayerID
	}
	playerName := strings.TrimSpace(req.PlayerName)
	if playerName == "" {
		return nil, jrModel.ErrInvalidPlayerName
	}

	request := &jrModel.JoinRequest{
		ID:         uuid.NewString(),
		PlayerID:   playerID,
		PlayerName: playerName,
		TeamID:     teamID,
		Status:     jrModel.StatusPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		txRoster := rosterRepository.New(tx)

		exists, txErr := txRepo.TeamExists(ctx, teamID)
		if txErr != nil {
			return txErr
		}
		if !exists {
			return jrModel.ErrTeamNotFound
		}

		member, txErr := txRoster.IsMember(ctx, teamID, playerID)
		if txErr != nil {
			return txErr
		}
		if member {
			return jrModel.ErrAlreadyMember
		}

		pending, txErr := txRepo.HasPending(ctx, teamID, playerID)
		if txErr != nil {
			return txErr
		}
		if pending {
			return jrModel.ErrDuplicateRequest
		}

		return txRepo.Create(ctx, request)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("join request submitted",
		"request_id", request.ID, "team_id", teamID, "player_id", playerID)

	return request, nil
}

// ResolveRequest approves or denies a pending join request.
//
// The decision and, for approvals, the role are validated before any
// state is touched. The status transition and the roster insert commit
// together or not at all: a capacity failure rolls the whole resolution
// back and surfaces ErrRosterFull while the request stays pending.
func (s *service) ResolveRequest(
	ctx context.Context,
	teamID, requestID string,
	req *jrModel.ResolveRequestRequest,
) (bool, error) {
	decision, err := jrModel.ParseDecision(req.Status)
	if err != nil {
		return false, err
	}

	var role rosterModel.Role
	if decision == jrModel.StatusApproved {
		role, err = rosterModel.ParseRole(req.Role)
		if err != nil {
			return false, err
		}
	}

	var request *jrModel.JoinRequest
	var player *rosterModel.Player

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		txRoster := rosterRepository.New(tx)

		found, txErr := txRepo.GetByID(ctx, requestID)
		if txErr != nil {
			if errors.Is(txErr, jrModel.ErrRequestNotFound) {
				return errAlreadyResolved
			}
			return txErr
		}
		if found.TeamID != teamID || found.Status != jrModel.StatusPending {
			return errAlreadyResolved
		}
		request = found

		if decision == jrModel.StatusApproved {
			player = &rosterModel.Player{
				ID:     s.playerIDFor(ctx, txRoster, request.PlayerID),
				Name:   request.PlayerName,
				Role:   role,
				TeamID: teamID,
			}
			if txErr := txRoster.AddPlayer(ctx, player); txErr != nil {
				return txErr
			}
		}

		rows, txErr := txRepo.ResolveIfPending(ctx, requestID, decision, time.Now())
		if txErr != nil {
			return txErr
		}
		if rows == 0 {
			return errAlreadyResolved
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errAlreadyResolved) {
			return false, nil
		}
		return false, err
	}

	s.logger.Infow("join request resolved",
		"request_id", requestID, "team_id", teamID, "decision", decision)

	if decision == jrModel.StatusApproved {
		s.dispatcher.Dispatch(notification.Notification{
			Recipient: request.PlayerID,
			Message:   fmt.Sprintf("your request to join team %s was approved", teamID),
		})
	} else {
		s.dispatcher.Dispatch(notification.Notification{
			Recipient: request.PlayerID,
			Message:   fmt.Sprintf("your request to join team %s was denied", teamID),
		})
	}

	return true, nil
}

// playerIDFor picks the id for the player created on approval. The
// request's player id is preserved when it is free; a fresh id is
// generated when another player already holds it.
func (s *service) playerIDFor(
	ctx context.Context,
	txRoster rosterRepository.Repository,
	requestPlayerID string,
) string {
	if requestPlayerID == "" {
		return uuid.NewString()
	}
	taken, err := txRoster.PlayerExists(ctx, requestPlayerID)
	if err != nil || taken {
		return uuid.NewString()
	}
	return requestPlayerID
}

// ListRequests returns a team's join requests matching a status filter.
// The filter defaults to pending, the only actionable state.
func (s *service) ListRequests(
	ctx context.Context,
	teamID string,
	statusFilter string,
) (*jrModel.ListRequestsResponse, error) {
	if statusFilter == "" {
		statusFilter = string(jrModel.StatusPending)
	}
	status, err := jrModel.ParseStatusFilter(statusFilter)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.TeamExists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, jrModel.ErrTeamNotFound
	}

	requests, err := s.repo.ListByTeam(ctx, teamID, status)
	if err != nil {
		return nil, err
	}

	return &jrModel.ListRequestsResponse{
		TeamID:   teamID,
		Requests: requests,
		Total:    len(requests),
	}, nil
}
