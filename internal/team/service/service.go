// Package service provides the business logic layer for the team module.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	teamModel "github.com/pitchside/league/internal/team/model"
	"github.com/pitchside/league/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a new team with an empty roster.
	CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// GetTeam returns a team with its roster.
	GetTeam(ctx context.Context, teamID string) (*teamModel.TeamResponse, error)

	// ListTeams returns all teams with their roster sizes.
	ListTeams(ctx context.Context) (*teamModel.ListTeamsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// CreateTeam creates a new team with an empty roster.
func (s *service) CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	team := &teamModel.Team{
		ID:   uuid.NewString(),
		Name: name,
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.ID, "name", team.Name)

	return &teamModel.TeamResponse{
		ID:     team.ID,
		Name:   team.Name,
		Roster: []teamModel.RosterMember{},
	}, nil
}

// GetTeam returns a team with its roster.
func (s *service) GetTeam(ctx context.Context, teamID string) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetRosterMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &teamModel.TeamResponse{
		ID:     team.ID,
		Name:   team.Name,
		Roster: members,
	}, nil
}

// ListTeams returns all teams with their roster sizes.
func (s *service) ListTeams(ctx context.Context) (*teamModel.ListTeamsResponse, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountPlayersByTeam(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]teamModel.TeamSummary, 0, len(teams))
	for _, team := range teams {
		summaries = append(summaries, teamModel.TeamSummary{
			ID:         team.ID,
			Name:       team.Name,
			RosterSize: counts[team.ID],
		})
	}

	return &teamModel.ListTeamsResponse{
		Teams: summaries,
		Total: len(summaries),
	}, nil
}
