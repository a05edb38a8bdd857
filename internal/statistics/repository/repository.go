// Package repository provides the data access layer for the statistics module.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pitchside/league/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetTeamStatistics returns roster and pending request counts per team.
	GetTeamStatistics(ctx context.Context) ([]model.TeamStatistics, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new statistics repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetTeamStatistics returns roster and pending request counts per team.
func (r *repository) GetTeamStatistics(ctx context.Context) ([]model.TeamStatistics, error) {
	var stats []model.TeamStatistics

	err := r.db.WithContext(ctx).
		Table("teams").
		Select(`teams.id AS team_id,
			teams.name AS team_name,
			(SELECT COUNT(*) FROM players WHERE players.team_id = teams.id) AS roster_size,
			(SELECT COUNT(*) FROM join_requests
				WHERE join_requests.team_id = teams.id
				AND join_requests.status = 'pending') AS pending_requests`).
		Order("teams.name ASC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	if stats == nil {
		stats = []model.TeamStatistics{}
	}
	return stats, nil
}
