package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pitchside/league/internal/notification"
	rosterModel "github.com/pitchside/league/internal/roster/model"
	"github.com/pitchside/league/internal/roster/repository"
)

type testTeam struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (testTeam) TableName() string {
	return "teams"
}

type testPlayer struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;not null"`
	Role      string    `gorm:"column:role;not null"`
	TeamID    string    `gorm:"column:team_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (testPlayer) TableName() string {
	return "players"
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&testTeam{}, &testPlayer{})
	require.NoError(t, err)

	return db
}

func newTestService(t *testing.T, db *gorm.DB) Service {
	logger := zap.NewNop().Sugar()
	dispatcher := notification.NewDispatcher(notification.NewLogNotifier(logger), logger)
	return New(repository.New(db), db, logger, dispatcher)
}

func seedTeam(t *testing.T, db *gorm.DB, id, name string) {
	require.NoError(t, db.Create(&testTeam{ID: id, Name: name}).Error)
}

func fillRoster(t *testing.T, db *gorm.DB, teamID string) {
	for i := 0; i < rosterModel.MaxRosterSize; i++ {
		require.NoError(t, db.Create(&testPlayer{
			ID:     fmt.Sprintf("%s-p%d", teamID, i),
			Name:   fmt.Sprintf("player %d", i),
			Role:   "Batsman",
			TeamID: teamID,
		}).Error)
	}
}

func TestService_AddPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")

		player, err := svc.AddPlayer(ctx, "t1", &rosterModel.AddPlayerRequest{
			Name: "Dhoni",
			Role: "Batsman",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, player.ID)
		assert.Equal(t, "Dhoni", player.Name)
		assert.Equal(t, rosterModel.RoleBatsman, player.Role)
		assert.Equal(t, "t1", player.TeamID)
	})

	t.Run("empty name", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")

		player, err := svc.AddPlayer(ctx, "t1", &rosterModel.AddPlayerRequest{
			Name: "   ",
			Role: "Batsman",
		})

		assert.Nil(t, player)
		assert.ErrorIs(t, err, rosterModel.ErrInvalidPlayerName)
	})

	t.Run("invalid role", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")

		player, err := svc.AddPlayer(ctx, "t1", &rosterModel.AddPlayerRequest{
			Name: "Dhoni",
			Role: "Pitcher",
		})

		assert.Nil(t, player)
		assert.ErrorIs(t, err, rosterModel.ErrInvalidRole)
	})

	t.Run("team not found", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)

		player, err := svc.AddPlayer(ctx, "nope", &rosterModel.AddPlayerRequest{
			Name: "Dhoni",
			Role: "Batsman",
		})

		assert.Nil(t, player)
		assert.ErrorIs(t, err, rosterModel.ErrTeamNotFound)
	})

	t.Run("roster full leaves roster unchanged", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")
		fillRoster(t, db, "t1")

		player, err := svc.AddPlayer(ctx, "t1", &rosterModel.AddPlayerRequest{
			Name: "Twelfth Man",
			Role: "Bowler",
		})

		assert.Nil(t, player)
		assert.ErrorIs(t, err, rosterModel.ErrRosterFull)

		roster, getErr := svc.GetRoster(ctx, "t1")
		require.NoError(t, getErr)
		assert.Equal(t, rosterModel.MaxRosterSize, roster.Size)
	})
}

func TestService_RemovePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("removes existing player", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")

		player, err := svc.AddPlayer(ctx, "t1", &rosterModel.AddPlayerRequest{
			Name: "Dhoni",
			Role: "Batsman",
		})
		require.NoError(t, err)

		removed, err := svc.RemovePlayer(ctx, "t1", player.ID)

		require.NoError(t, err)
		assert.True(t, removed)

		roster, getErr := svc.GetRoster(ctx, "t1")
		require.NoError(t, getErr)
		assert.Equal(t, 0, roster.Size)
	})

	t.Run("missing player returns false", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")

		removed, err := svc.RemovePlayer(ctx, "t1", "nonexistent-id")

		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("missing team returns false", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)

		removed, err := svc.RemovePlayer(ctx, "nope", "p1")

		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("double removal returns false the second time", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")

		player, err := svc.AddPlayer(ctx, "t1", &rosterModel.AddPlayerRequest{
			Name: "Dhoni",
			Role: "Batsman",
		})
		require.NoError(t, err)

		removed, err := svc.RemovePlayer(ctx, "t1", player.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = svc.RemovePlayer(ctx, "t1", player.ID)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestService_UpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("changes role in place", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")

		player, err := svc.AddPlayer(ctx, "t1", &rosterModel.AddPlayerRequest{
			Name: "Dhoni",
			Role: "Batsman",
		})
		require.NoError(t, err)

		updated, err := svc.UpdateRole(ctx, "t1", player.ID, &rosterModel.UpdateRoleRequest{
			Role: "Wicket Keeper",
		})

		require.NoError(t, err)
		assert.Equal(t, rosterModel.RoleWicketKeeper, updated.Role)
		assert.Equal(t, player.ID, updated.ID)
		assert.Equal(t, "t1", updated.TeamID)
	})

	t.Run("invalid role leaves prior role intact", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")

		player, err := svc.AddPlayer(ctx, "t1", &rosterModel.AddPlayerRequest{
			Name: "Dhoni",
			Role: "Batsman",
		})
		require.NoError(t, err)

		updated, err := svc.UpdateRole(ctx, "t1", player.ID, &rosterModel.UpdateRoleRequest{
			Role: "Pitcher",
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, rosterModel.ErrInvalidRole)

		roster, getErr := svc.GetRoster(ctx, "t1")
		require.NoError(t, getErr)
		require.Len(t, roster.Players, 1)
		assert.Equal(t, rosterModel.RoleBatsman, roster.Players[0].Role)
	})

	t.Run("missing team", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)

		updated, err := svc.UpdateRole(ctx, "nope", "p1", &rosterModel.UpdateRoleRequest{
			Role: "Bowler",
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, rosterModel.ErrTeamNotFound)
	})

	t.Run("missing player", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")

		updated, err := svc.UpdateRole(ctx, "t1", "nope", &rosterModel.UpdateRoleRequest{
			Role: "Bowler",
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, rosterModel.ErrPlayerNotFound)
	})
}

func TestService_GetRoster(t *testing.T) {
	ctx := context.Background()

	t.Run("empty roster is not an error", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")

		roster, err := svc.GetRoster(ctx, "t1")

		require.NoError(t, err)
		assert.Equal(t, "t1", roster.TeamID)
		assert.Empty(t, roster.Players)
		assert.Equal(t, 0, roster.Size)
	})

	t.Run("missing team is an error", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)

		roster, err := svc.GetRoster(ctx, "nope")

		assert.Nil(t, roster)
		assert.ErrorIs(t, err, rosterModel.ErrTeamNotFound)
	})

	t.Run("size never exceeds the cap", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		seedTeam(t, db, "t1", "alpha")
		fillRoster(t, db, "t1")

		_, err := svc.AddPlayer(ctx, "t1", &rosterModel.AddPlayerRequest{
			Name: "Extra",
			Role: "Bowler",
		})
		assert.ErrorIs(t, err, rosterModel.ErrRosterFull)

		roster, getErr := svc.GetRoster(ctx, "t1")
		require.NoError(t, getErr)
		assert.LessOrEqual(t, roster.Size, rosterModel.MaxRosterSize)
	})
}
