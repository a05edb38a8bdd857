// Package repository provides the data access layer for the roster module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	rosterModel "github.com/pitchside/league/internal/roster/model"
)

// Repository defines the interface for roster data access operations.
type Repository interface {
	// TeamExists reports whether a team with the given id exists.
	TeamExists(ctx context.Context, teamID string) (bool, error)

	// AddPlayer inserts a player, enforcing the roster capacity limit.
	// When called on a transaction, the team row is locked first so two
	// concurrent inserts cannot both pass the capacity count.
	AddPlayer(ctx context.Context, player *rosterModel.Player) error

	// GetPlayer finds a player by team and player id.
	GetPlayer(ctx context.Context, teamID, playerID string) (*rosterModel.Player, error)

	// PlayerExists reports whether any player with the given id exists.
	PlayerExists(ctx context.Context, playerID string) (bool, error)

	// IsMember reports whether the player is on the team's roster.
	IsMember(ctx context.Context, teamID, playerID string) (bool, error)

	// CountPlayers returns the current roster size of a team.
	CountPlayers(ctx context.Context, teamID string) (int64, error)

	// DeletePlayer removes a player from the roster and the system.
	// Returns the number of rows deleted.
	DeletePlayer(ctx context.Context, teamID, playerID string) (int64, error)

	// UpdateRole changes a player's role in place.
	UpdateRole(ctx context.Context, teamID, playerID string, role rosterModel.Role) (int64, error)

	// ListPlayers returns the roster of a team in insertion order.
	ListPlayers(ctx context.Context, teamID string) ([]rosterModel.Player, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new roster repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// TeamExists reports whether a team with the given id exists.
func (r *repository) TeamExists(ctx context.Context, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("teams").
		Where("id = ?", teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// lockTeam takes a row lock on the team so that concurrent capacity
// checks inside transactions serialize. SQLite has no FOR UPDATE; its
// single-writer lock already gives the same guarantee.
func (r *repository) lockTeam(ctx context.Context, teamID string) error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	var id string
	return r.db.WithContext(ctx).
		Table("teams").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", teamID).
		Scan(&id).Error
}

// AddPlayer inserts a player, enforcing the roster capacity limit.
func (r *repository) AddPlayer(ctx context.Context, player *rosterModel.Player) error {
	if err := r.lockTeam(ctx, player.TeamID); err != nil {
		return err
	}

	count, err := r.CountPlayers(ctx, player.TeamID)
	if err != nil {
		return err
	}
	if count >= rosterModel.MaxRosterSize {
		return rosterModel.ErrRosterFull
	}

	now := time.Now()
	player.CreatedAt = now
	player.UpdatedAt = now

	return r.db.WithContext(ctx).Create(player).Error
}

// GetPlayer finds a player by team and player id.
func (r *repository) GetPlayer(ctx context.Context, teamID, playerID string) (*rosterModel.Player, error) {
	var player rosterModel.Player
	err := r.db.WithContext(ctx).
		Where("id = ? AND team_id = ?", playerID, teamID).
		First(&player).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rosterModel.ErrPlayerNotFound
		}
		return nil, err
	}

	return &player, nil
}

// PlayerExists reports whether any player with the given id exists.
func (r *repository) PlayerExists(ctx context.Context, playerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&rosterModel.Player{}).
		Where("id = ?", playerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsMember reports whether the player is on the team's roster.
func (r *repository) IsMember(ctx context.Context, teamID, playerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&rosterModel.Player{}).
		Where("id = ? AND team_id = ?", playerID, teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountPlayers returns the current roster size of a team.
func (r *repository) CountPlayers(ctx context.Context, teamID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&rosterModel.Player{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeletePlayer removes a player from the roster and the system.
func (r *repository) DeletePlayer(ctx context.Context, teamID, playerID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND team_id = ?", playerID, teamID).
		Delete(&rosterModel.Player{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdateRole changes a player's role in place.
func (r *repository) UpdateRole(ctx context.Context, teamID, playerID string, role rosterModel.Role) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&rosterModel.Player{}).
		Where("id = ? AND team_id = ?", playerID, teamID).
		Updates(map[string]interface{}{
			"role":       role,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListPlayers returns the roster of a team in insertion order.
func (r *repository) ListPlayers(ctx context.Context, teamID string) ([]rosterModel.Player, error) {
	var players []rosterModel.Player
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}

	if players == nil {
		players = []rosterModel.Player{}
	}
	return players, nil
}
