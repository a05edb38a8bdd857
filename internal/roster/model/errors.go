package model

import "errors"

var (
	// ErrTeamNotFound indicates that the referenced team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrPlayerNotFound indicates that the referenced player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidRole indicates that the role is not one of the allowed values.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidPlayerName indicates that the player name is invalid (e.g., empty).
	ErrInvalidPlayerName = errors.New("invalid player name")
	// ErrRosterFull indicates that the team already has the maximum number of players.
	ErrRosterFull = errors.New("a team cannot have more than 11 players")
)
