package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	rosterModel "github.com/pitchside/league/internal/roster/model"
	"github.com/pitchside/league/internal/statistics/repository"
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

type testJoinRequest struct {
	ID         string     `gorm:"primaryKey;column:id"`
	PlayerID   string     `gorm:"column:player_id;not null"`
	PlayerName string     `gorm:"column:player_name;not null"`
	TeamID     string     `gorm:"column:team_id;not null"`
	Status     string     `gorm:"column:status;not null"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	ResolvedAt *time.Time `gorm:"column:resolved_at"`
}

func (testJoinRequest) TableName() string {
	return "join_requests"
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&testTeam{}, &testPlayer{}, &testJoinRequest{})
	require.NoError(t, err)

	return db
}

func newTestService(db *gorm.DB) Service {
	return New(repository.New(db), zap.NewNop().Sugar())
}

func TestService_GetTeamStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates per team", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		require.NoError(t, db.Create(&testTeam{ID: "t1", Name: "Alpha"}).Error)
		require.NoError(t, db.Create(&testTeam{ID: "t2", Name: "Beta"}).Error)

		for i, id := range []string{"p1", "p2", "p3"} {
			require.NoError(t, db.Create(&testPlayer{
				ID: id, Name: "player", Role: "Batsman", TeamID: "t1", CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
			}).Error)
		}
		require.NoError(t, db.Create(&testJoinRequest{
			ID: "r1", PlayerID: "p9", PlayerName: "Hopeful", TeamID: "t1", Status: "pending",
		}).Error)
		require.NoError(t, db.Create(&testJoinRequest{
			ID: "r2", PlayerID: "p8", PlayerName: "Denied", TeamID: "t1", Status: "denied",
		}).Error)

		resp, err := svc.GetTeamStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalTeams)
		assert.Equal(t, 3, resp.TotalPlayers)

		require.Len(t, resp.Teams, 2)
		alpha := resp.Teams[0]
		assert.Equal(t, "Alpha", alpha.TeamName)
		assert.Equal(t, 3, alpha.RosterSize)
		assert.Equal(t, rosterModel.MaxRosterSize-3, alpha.RemainingCapacity)
		assert.Equal(t, 1, alpha.PendingRequests)

		beta := resp.Teams[1]
		assert.Equal(t, 0, beta.RosterSize)
		assert.Equal(t, rosterModel.MaxRosterSize, beta.RemainingCapacity)
		assert.Equal(t, 0, beta.PendingRequests)
	})

	t.Run("no teams", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		resp, err := svc.GetTeamStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalTeams)
		assert.Equal(t, 0, resp.TotalPlayers)
		assert.NotNil(t, resp.Teams)
	})

	t.Run("full roster has zero remaining capacity", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		require.NoError(t, db.Create(&testTeam{ID: "t1", Name: "Alpha"}).Error)
		for i := 0; i < rosterModel.MaxRosterSize; i++ {
			require.NoError(t, db.Create(&testPlayer{
				ID: "p" + string(rune('a'+i)), Name: "player", Role: "Bowler", TeamID: "t1",
			}).Error)
		}

		resp, err := svc.GetTeamStatistics(ctx)

		require.NoError(t, err)
		require.Len(t, resp.Teams, 1)
		assert.Equal(t, rosterModel.MaxRosterSize, resp.Teams[0].RosterSize)
		assert.Equal(t, 0, resp.Teams[0].RemainingCapacity)
	})
}
