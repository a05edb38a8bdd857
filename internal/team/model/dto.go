// Package model provides domain models and DTOs for the team module.
package model

// RosterMember represents one roster entry in team API responses.
type RosterMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// TeamResponse represents a single team with its roster.
type TeamResponse struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Roster []RosterMember `json:"roster"`
}

// TeamSummary represents a team in list responses.
type TeamSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RosterSize int    `json:"roster_size"`
}

// ListTeamsResponse represents the response for listing all teams.
type ListTeamsResponse struct {
	Teams []TeamSummary `json:"teams"`
	Total int           `json:"total"`
}
