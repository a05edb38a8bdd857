package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	teamModel "github.com/pitchside/league/internal/team/model"
)

type testTeam struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex"`
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

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a team", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		team := &teamModel.Team{ID: "t1", Name: "Alpha"}
		err := repo.Create(ctx, team)

		require.NoError(t, err)
		assert.False(t, team.CreatedAt.IsZero())

		found, err := repo.GetByID(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, "Alpha", found.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		require.NoError(t, repo.Create(ctx, &teamModel.Team{ID: "t1", Name: "Alpha"}))

		err := repo.Create(ctx, &teamModel.Team{ID: "t2", Name: "Alpha"})
		assert.ErrorIs(t, err, teamModel.ErrTeamExists)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing team", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		team, err := repo.GetByID(ctx, "nope")
		assert.Nil(t, team)
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered by name", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		require.NoError(t, repo.Create(ctx, &teamModel.Team{ID: "t1", Name: "Zulu"}))
		require.NoError(t, repo.Create(ctx, &teamModel.Team{ID: "t2", Name: "Alpha"}))

		teams, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Equal(t, "Alpha", teams[0].Name)
		assert.Equal(t, "Zulu", teams[1].Name)
	})

	t.Run("no teams", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		teams, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, teams)
	})
}

func TestRepository_GetRosterMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns roster entries", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		require.NoError(t, db.Create(&testTeam{ID: "t1", Name: "Alpha"}).Error)
		require.NoError(t, db.Create(&testPlayer{
			ID: "p1", Name: "Dhoni", Role: "Batsman", TeamID: "t1", CreatedAt: time.Now(),
		}).Error)
		require.NoError(t, db.Create(&testPlayer{
			ID: "p2", Name: "Bumrah", Role: "Bowler", TeamID: "t1", CreatedAt: time.Now().Add(time.Second),
		}).Error)

		members, err := repo.GetRosterMembers(ctx, "t1")
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "Dhoni", members[0].Name)
		assert.Equal(t, "Bowler", members[1].Role)
	})

	t.Run("empty roster is a non-nil slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		require.NoError(t, db.Create(&testTeam{ID: "t1", Name: "Alpha"}).Error)

		members, err := repo.GetRosterMembers(ctx, "t1")
		require.NoError(t, err)
		assert.NotNil(t, members)
		assert.Empty(t, members)
	})
}

func TestRepository_CountPlayersByTeam(t *testing.T) {
	ctx := context.Background()

	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, db.Create(&testTeam{ID: "t1", Name: "Alpha"}).Error)
	require.NoError(t, db.Create(&testTeam{ID: "t2", Name: "Beta"}).Error)
	require.NoError(t, db.Create(&testPlayer{ID: "p1", Name: "a", Role: "Batsman", TeamID: "t1"}).Error)
	require.NoError(t, db.Create(&testPlayer{ID: "p2", Name: "b", Role: "Bowler", TeamID: "t1"}).Error)

	counts, err := repo.CountPlayersByTeam(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["t1"])
	_, ok := counts["t2"]
	assert.False(t, ok)
}
