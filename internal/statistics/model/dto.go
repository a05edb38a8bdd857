// Package model provides DTOs for the statistics module.
package model

// TeamStatistics represents aggregate figures for a single team.
type TeamStatistics struct {
	TeamID            string `json:"team_id"`
	TeamName          string `json:"team_name"`
	RosterSize        int    `json:"roster_size"`
	RemainingCapacity int    `json:"remaining_capacity"`
	PendingRequests   int    `json:"pending_requests"`
}

// TeamStatisticsResponse represents the response for team statistics.
type TeamStatisticsResponse struct {
	Teams        []TeamStatistics `json:"teams"`
	TotalTeams   int              `json:"total_teams"`
	TotalPlayers int              `json:"total_players"`
}
