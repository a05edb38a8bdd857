package model

import (
	"time"
)

// Status is the lifecycle state of a join request.
type Status string

// Join request lifecycle states. Pending is the initial state;
// approved and denied are terminal.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// ParseDecision validates a resolution decision. Only the two terminal
// states are valid decisions.
func ParseDecision(s string) (Status, error) {
	switch Status(s) {
	case StatusApproved, StatusDenied:
		return Status(s), nil
	default:
		return "", ErrInvalidDecision
	}
}

// ParseStatusFilter validates a status filter for listing requests.
func ParseStatusFilter(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusDenied:
		return Status(s), nil
	default:
		return "", ErrInvalidStatusFilter
	}
}

// JoinRequest represents a pending ask by a prospective player to be
// added to a team's roster. Matches the join_requests table schema.
type JoinRequest struct {
	ID         string     `gorm:"primaryKey;column:id;type:varchar(255)"                          json:"id"`
	PlayerID   string     `gorm:"column:player_id;type:varchar(255);not null"                     json:"player_id"`
	PlayerName string     `gorm:"column:player_name;type:varchar(255);not null"                   json:"player_name"`
	TeamID     string     `gorm:"column:team_id;type:varchar(255);not null;index:idx_join_requests_team_id" json:"team_id"`
	Status     Status     `gorm:"column:status;type:varchar(16);not null"                         json:"status"`
	CreatedAt  time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"       json:"created_at"`
	ResolvedAt *time.Time `gorm:"column:resolved_at;type:timestamptz"                             json:"resolved_at,omitempty"`
}

// TableName specifies the table name for GORM.
func (JoinRequest) TableName() string {
	return "join_requests"
}
