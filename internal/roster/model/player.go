package model

import (
	"time"

	"gorm.io/gorm"
)

// MaxRosterSize is the maximum number of players a team roster may hold.
const MaxRosterSize = 11

// Role is a player's cricket role.
type Role string

// Allowed player roles.
const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-rounder"
	RoleWicketKeeper Role = "Wicket Keeper"
)

// ParseRole validates a role string and returns the typed role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// Player represents a player entity in the system.
// Matches the players table schema.
type Player struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(255)"             json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"             json:"name"`
	Role      Role      `gorm:"column:role;type:varchar(32);not null"              json:"role"`
	TeamID    string    `gorm:"column:team_id;type:varchar(255);index:idx_players_team_id" json:"team_id"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"  json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"  json:"-"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Player) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
