// Package model provides domain models and DTOs for the joinrequest module.
package model

// SubmitRequestRequest represents the request to ask to join a team.
type SubmitRequestRequest struct {
	PlayerID   string `json:"player_id"   binding:"required"`
	PlayerName string `json:"player_name" binding:"required"`
}

// ResolveRequestRequest represents the request to approve or deny a join request.
// Role is required when the decision is approved.
type ResolveRequestRequest struct {
	Status string `json:"status" binding:"required"`
	Role   string `json:"role"`
}

// ListRequestsResponse represents the response for listing a team's join requests.
type ListRequestsResponse struct {
	TeamID   string        `json:"team_id"`
	Requests []JoinRequest `json:"requests"`
	Total    int           `json:"total"`
}
