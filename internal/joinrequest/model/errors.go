package model

import "errors"

var (
	// ErrTeamNotFound indicates that the target team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrAlreadyMember indicates that the player is already on the team's roster.
	ErrAlreadyMember = errors.New("already a member")
	// ErrDuplicateRequest indicates that a pending request for the same player and team already exists.
	ErrDuplicateRequest = errors.New("duplicate request")
	// ErrRequestNotFound indicates that the join request does not exist.
	ErrRequestNotFound = errors.New("join request not found")
	// ErrInvalidPlayerID indicates that the requesting player id is invalid (e.g., empty).
	ErrInvalidPlayerID = errors.New("invalid player id")
	// ErrInvalidPlayerName indicates that the player name snapshot is invalid (e.g., empty).
	ErrInvalidPlayerName = errors.New("invalid player name")
	// ErrInvalidDecision indicates that the resolution decision is not approved or denied.
	ErrInvalidDecision = errors.New("decision must be approved or denied")
	// ErrInvalidStatusFilter indicates that the status filter is not a known status.
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)
