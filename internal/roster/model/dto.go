// Package model provides domain models and DTOs for the roster module.
package model

// AddPlayerRequest represents the request to add a player to a team roster.
type AddPlayerRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

// UpdateRoleRequest represents the request to change a player's role.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// RosterResponse represents a team's roster.
type RosterResponse struct {
	TeamID  string   `json:"team_id"`
	Players []Player `json:"players"`
	Size    int      `json:"size"`
}
