package repositories

import (
	"testing"

	"github.com/mediamingle/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFollowIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	users := seedUsers(t, db, 2)
	repo := NewPostgresFollowRepository(db)

	created, err := repo.CreateFollow(&models.Follow{FollowerID: users[0].ID, FollowingID: users[1].ID})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateFollow(&models.Follow{FollowerID: users[0].ID, FollowingID: users[1].ID})
	require.NoError(t, err)
	assert.False(t, created, "second insert must hit the unique index and report no new edge")

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteFollowReportsMissingEdge(t *testing.T) {
	db := setupTestDB(t)
	users := seedUsers(t, db, 2)
	repo := NewPostgresFollowRepository(db)

	deleted, err := repo.DeleteFollow(users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.CreateFollow(&models.Follow{FollowerID: users[0].ID, FollowingID: users[1].ID})
	require.NoError(t, err)

	deleted, err = repo.DeleteFollow(users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	isFollowing, err := repo.IsFollowing(users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.False(t, isFollowing)
}

func TestCountsMatchListCardinality(t *testing.T) {
	db := setupTestDB(t)
	users := seedUsers(t, db, 4)
	repo := NewPostgresFollowRepository(db)

	// users 1..3 follow user 0; user 0 follows users 1 and 2.
	for _, u := range users[1:] {
		_, err := repo.CreateFollow(&models.Follow{FollowerID: u.ID, FollowingID: users[0].ID})
		require.NoError(t, err)
	}
	for _, u := range users[1:3] {
		_, err := repo.CreateFollow(&models.Follow{FollowerID: users[0].ID, FollowingID: u.ID})
		require.NoError(t, err)
	}

	followers, err := repo.GetFollowers(users[0].ID)
	require.NoError(t, err)
	followersCount, err := repo.GetFollowersCount(users[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, len(followers), followersCount)
	assert.Len(t, followers, 3)

	following, err := repo.GetFollowing(users[0].ID)
	require.NoError(t, err)
	followingCount, err := repo.GetFollowingCount(users[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, len(following), followingCount)
	assert.Len(t, following, 2)

	ids, err := repo.GetFollowingIDs(users[0].ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{users[1].ID, users[2].ID}, ids)
}

func TestGetFollowersIncludesFollowedAt(t *testing.T) {
	db := setupTestDB(t)
	users := seedUsers(t, db, 2)
	repo := NewPostgresFollowRepository(db)

	_, err := repo.CreateFollow(&models.Follow{FollowerID: users[1].ID, FollowingID: users[0].ID})
	require.NoError(t, err)

	followers, err := repo.GetFollowers(users[0].ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, users[1].ID, followers[0].ID)
	assert.Equal(t, users[1].Username, followers[0].Username)
	assert.False(t, followers[0].FollowedAt.IsZero())
}
