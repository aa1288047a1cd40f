package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/mediamingle/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByActorsOrdersNewestFirstWithIDTieBreak(t *testing.T) {
	db := setupTestDB(t)
	users := seedUsers(t, db, 2)
	repo := NewPostgresActivityRepository(db)

	// Same timestamp for every entry: ordering must fall back to id desc.
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(&models.Activity{
			UserID:       users[0].ID,
			ActivityType: models.ActivityFavorite,
			ContentType:  "movies",
			ContentID:    fmt.Sprintf("m%d", i),
			ContentTitle: fmt.Sprintf("Movie %d", i),
			CreatedAt:    at,
		}))
	}

	got, err := repo.GetByActors([]uint{users[0].ID}, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i-1].ID, got[i].ID)
	}
}

func TestGetByActorsPaginatesWithoutOverlap(t *testing.T) {
	db := setupTestDB(t)
	users := seedUsers(t, db, 1)
	repo := NewPostgresActivityRepository(db)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(&models.Activity{
			UserID:       users[0].ID,
			ActivityType: models.ActivityRating,
			ContentType:  "tv",
			ContentID:    fmt.Sprintf("t%d", i),
			CreatedAt:    time.Date(2026, 5, 1, 12, i, 0, 0, time.UTC),
		}))
	}

	first, err := repo.GetByActors([]uint{users[0].ID}, 2, 0)
	require.NoError(t, err)
	second, err := repo.GetByActors([]uint{users[0].ID}, 2, 2)
	require.NoError(t, err)
	third, err := repo.GetByActors([]uint{users[0].ID}, 2, 4)
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	require.Len(t, third, 1)

	seen := map[uint]bool{}
	for _, page := range [][]models.Activity{first, second, third} {
		for _, a := range page {
			assert.False(t, seen[a.ID], "entry %d returned twice", a.ID)
			seen[a.ID] = true
		}
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, "t4", first[0].ContentID, "first page starts at the newest entry")
}

func TestGetByActorsFiltersToGivenSet(t *testing.T) {
	db := setupTestDB(t)
	users := seedUsers(t, db, 3)
	repo := NewPostgresActivityRepository(db)

	for _, u := range users {
		require.NoError(t, repo.Record(&models.Activity{
			UserID:       u.ID,
			ActivityType: models.ActivityFavorite,
			ContentType:  "anime",
			ContentID:    "a1",
		}))
	}

	got, err := repo.GetByActors([]uint{users[0].ID, users[2].ID}, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, a := range got {
		assert.NotEqual(t, users[1].ID, a.UserID)
	}

	empty, err := repo.GetByActors(nil, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
