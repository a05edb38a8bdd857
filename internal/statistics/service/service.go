// Package service provides the business logic layer for the statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	rosterModel "github.com/pitchside/league/internal/roster/model"
	"github.com/pitchside/league/internal/statistics/model"
	"github.com/pitchside/league/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetTeamStatistics returns aggregate figures for all teams.
	GetTeamStatistics(ctx context.Context) (*model.TeamStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetTeamStatistics returns aggregate figures for all teams.
func (s *service) GetTeamStatistics(ctx context.Context) (*model.TeamStatisticsResponse, error) {
	stats, err := s.repo.GetTeamStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetTeamStatistics failed", "error", err)
		return nil, err
	}

	totalPlayers := 0
	for i := range stats {
		stats[i].RemainingCapacity = rosterModel.MaxRosterSize - stats[i].RosterSize
		totalPlayers += stats[i].RosterSize
	}

	return &model.TeamStatisticsResponse{
		Teams:        stats,
		TotalTeams:   len(stats),
		TotalPlayers: totalPlayers,
	}, nil
}
