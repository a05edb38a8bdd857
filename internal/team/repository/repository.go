// Package repository provides the data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	teamModel "github.com/pitchside/league/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create persists a new team.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, teamID string) (*teamModel.Team, error)

	// List returns all teams.
	List(ctx context.Context) ([]teamModel.Team, error)

	// GetRosterMembers returns the roster entries of a team.
	GetRosterMembers(ctx context.Context, teamID string) ([]teamModel.RosterMember, error)

	// CountPlayersByTeam returns roster sizes keyed by team id.
	CountPlayersByTeam(ctx context.Context) (map[string]int, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return teamModel.ErrTeamExists
		}
		return err
	}

	return nil
}

// isDuplicateError checks if the error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, teamID string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// List returns all teams ordered by name.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// GetRosterMembers returns the roster entries of a team.
func (r *repository) GetRosterMembers(ctx context.Context, teamID string) ([]teamModel.RosterMember, error) {
	var members []teamModel.RosterMember

	err := r.db.WithContext(ctx).
		Table("players").
		Select("id, name, role").
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}

	if members == nil {
		members = []teamModel.RosterMember{}
	}
	return members, nil
}

// CountPlayersByTeam returns roster sizes keyed by team id.
func (r *repository) CountPlayersByTeam(ctx context.Context) (map[string]int, error) {
	type teamCount struct {
		TeamID string `gorm:"column:team_id"`
		Count  int    `gorm:"column:count"`
	}

	var rows []teamCount
	err := r.db.WithContext(ctx).
		Table("players").
		Select("team_id, COUNT(*) AS count").
		Where("team_id IS NOT NULL").
		Group("team_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.TeamID] = row.Count
	}
	return counts, nil
}
