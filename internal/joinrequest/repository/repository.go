// Package repository provides the data access layer for the joinrequest module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	jrModel "github.com/pitchside/league/internal/joinrequest/model"
)

// Repository defines the interface for join request data access operations.
type Repository interface {
	// TeamExists reports whether a team with the given id exists.
	TeamExists(ctx context.Context, teamID string) (bool, error)

	// Create persists a new join request.
	Create(ctx context.Context, request *jrModel.JoinRequest) error

	// GetByID finds a join request by id.
	GetByID(ctx context.Context, requestID string) (*jrModel.JoinRequest, error)

	// HasPending reports whether a pending request exists for the player and team pair.
	HasPending(ctx context.Context, teamID, playerID string) (bool, error)

	// ResolveIfPending transitions a pending request to a terminal status.
	// Returns the number of rows updated; 0 means the request was not pending.
	ResolveIfPending(ctx context.Context, requestID string, status jrModel.Status, resolvedAt time.Time) (int64, error)

	// ListByTeam returns a team's join requests matching a status, newest first.
	ListByTeam(ctx context.Context, teamID string, status jrModel.Status) ([]jrModel.JoinRequest, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new join request repository instance.
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

// Create persists a new join request.
func (r *repository) Create(ctx context.Context, request *jrModel.JoinRequest) error {
	request.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID finds a join request by id.
func (r *repository) GetByID(ctx context.Context, requestID string) (*jrModel.JoinRequest, error) {
	var request jrModel.JoinRequest
	err := r.db.WithContext(ctx).
		Where("id = ?", requestID).
		First(&request).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jrModel.ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// HasPending reports whether a pending request exists for the player and team pair.
func (r *repository) HasPending(ctx context.Context, teamID, playerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&jrModel.JoinRequest{}).
		Where("team_id = ? AND player_id = ? AND status = ?", teamID, playerID, jrModel.StatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ResolveIfPending transitions a pending request to a terminal status.
func (r *repository) ResolveIfPending(
	ctx context.Context,
	requestID string,
	status jrModel.Status,
	resolvedAt time.Time,
) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&jrModel.JoinRequest{}).
		Where("id = ? AND status = ?", requestID, jrModel.StatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"resolved_at": resolvedAt,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListByTeam returns a team's join requests matching a status, newest first.
func (r *repository) ListByTeam(
	ctx context.Context,
	teamID string,
	status jrModel.Status,
) ([]jrModel.JoinRequest, error) {
	var requests []jrModel.JoinRequest
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, status).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	if requests == nil {
		requests = []jrModel.JoinRequest{}
	}
	return requests, nil
}
