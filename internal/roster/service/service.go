// Package service provides the business logic layer for the roster module.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pitchside/league/internal/notification"
	rosterModel "github.com/pitchside/league/internal/roster/model"
	"github.com/pitchside/league/internal/roster/repository"
)

// Service defines the interface for roster business logic operations.
type Service interface {
	// AddPlayer adds a new player to a team's roster.
	AddPlayer(ctx context.Context, teamID string, req *rosterModel.AddPlayerRequest) (*rosterModel.Player, error)

	// RemovePlayer removes a player from a team's roster.
	// Returns false without an error when the team or player is absent.
	RemovePlayer(ctx context.Context, teamID, playerID string) (bool, error)

	// UpdateRole changes a player's role.
	UpdateRole(ctx context.Context, teamID, playerID string, req *rosterModel.UpdateRoleRequest) (*rosterModel.Player, error)

	// GetRoster returns the current roster of a team.
	GetRoster(ctx context.Context, teamID string) (*rosterModel.RosterResponse, error)
}

type service struct {
	repo       repository.Repository
	db         *gorm.DB
	logger     *zap.SugaredLogger
	dispatcher *notification.Dispatcher
}

// New creates a new roster service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
	dispatcher *notification.Dispatcher,
) Service {
	return &service{
		repo:       repo,
		db:         db,
		logger:     logger,
		dispatcher: dispatcher,
	}
}

// AddPlayer adds a new player to a team's roster.
// The capacity check and the insert run in a single transaction.
func (s *service) AddPlayer(
	ctx context.Context,
	teamID string,
	req *rosterModel.AddPlayerRequest,
) (*rosterModel.Player, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, rosterModel.ErrInvalidPlayerName
	}

	role, err := rosterModel.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	player := &rosterModel.Player{
		ID:     uuid.NewString(),
		Name:   name,
		Role:   role,
		TeamID: teamID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		exists, txErr := txRepo.TeamExists(ctx, teamID)
		if txErr != nil {
			return txErr
		}
		if !exists {
			return rosterModel.ErrTeamNotFound
		}

		return txRepo.AddPlayer(ctx, player)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player added to roster",
		"team_id", teamID, "player_id", player.ID, "role", player.Role)
	s.dispatcher.Dispatch(notification.Notification{
		Recipient: teamID,
		Message:   fmt.Sprintf("%s joined the roster as %s", player.Name, player.Role),
	})

	return player, nil
}

// RemovePlayer removes a player from a team's roster.
// Removal is idempotent: a missing team or player yields false, not an error.
func (s *service) RemovePlayer(ctx context.Context, teamID, playerID string) (bool, error) {
	player, err := s.repo.GetPlayer(ctx, teamID, playerID)
	if err != nil {
		if errors.Is(err, rosterModel.ErrPlayerNotFound) {
			return false, nil
		}
		return false, err
	}

	rows, err := s.repo.DeletePlayer(ctx, teamID, playerID)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}

	s.logger.Infow("player removed from roster", "team_id", teamID, "player_id", playerID)
	s.dispatcher.Dispatch(notification.Notification{
		Recipient: teamID,
		Message:   fmt.Sprintf("%s left the roster", player.Name),
	})

	return true, nil
}

// UpdateRole changes a player's role.
func (s *service) UpdateRole(
	ctx context.Context,
	teamID, playerID string,
	req *rosterModel.UpdateRoleRequest,
) (*rosterModel.Player, error) {
	role, err := rosterModel.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.TeamExists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, rosterModel.ErrTeamNotFound
	}

	rows, err := s.repo.UpdateRole(ctx, teamID, playerID, role)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, rosterModel.ErrPlayerNotFound
	}

	return s.repo.GetPlayer(ctx, teamID, playerID)
}

// GetRoster returns the current roster of a team.
func (s *service) GetRoster(ctx context.Context, teamID string) (*rosterModel.RosterResponse, error) {
	exists, err := s.repo.TeamExists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, rosterModel.ErrTeamNotFound
	}

	players, err := s.repo.ListPlayers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &rosterModel.RosterResponse{
		TeamID:  teamID,
		Players: players,
		Size:    len(players),
	}, nil
}
