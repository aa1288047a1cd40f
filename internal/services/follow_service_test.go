package services

import (
	"testing"

	"github.com/mediamingle/backend/internal/apperrors"
	"github.com/mediamingle/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRejectsSelf(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 1)

	err := env.follows.Follow(users[0].ID, users[0].ID)
	assert.ErrorIs(t, err, apperrors.ErrSelfFollow)

	assert.EqualValues(t, 0, env.countRows(t, &models.Follow{}))
	assert.EqualValues(t, 0, env.countRows(t, &models.Activity{}))
}

func TestFollowUnknownTarget(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 1)

	err := env.follows.Follow(users[0].ID, users[0].ID+99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFollowTwiceCreatesOneEdgeAndOneEntry(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 2)

	require.NoError(t, env.follows.Follow(users[0].ID, users[1].ID))
	require.NoError(t, env.follows.Follow(users[0].ID, users[1].ID))

	assert.EqualValues(t, 1, env.countRows(t, &models.Follow{}))
	assert.EqualValues(t, 1, env.countRows(t, &models.Activity{}))

	var entry models.Activity
	require.NoError(t, env.db.First(&entry).Error)
	assert.Equal(t, models.ActivityFollow, entry.ActivityType)
	assert.Equal(t, users[0].ID, entry.UserID)
	require.NotNil(t, entry.TargetUserID)
	assert.Equal(t, users[1].ID, *entry.TargetUserID)
	assert.Equal(t, users[1].Username, entry.TargetUsername)
}

func TestUnfollowIsIdempotentAndEmitsNothing(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 2)

	// Not following yet: still a success.
	require.NoError(t, env.follows.Unfollow(users[0].ID, users[1].ID))

	require.NoError(t, env.follows.Follow(users[0].ID, users[1].ID))
	require.NoError(t, env.follows.Unfollow(users[0].ID, users[1].ID))

	isFollowing, err := env.follows.IsFollowing(users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.False(t, isFollowing)

	// The follow entry survives the unfollow; no unfollow entry is added.
	var entries []models.Activity
	require.NoError(t, env.db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActivityFollow, entries[0].ActivityType)
}

func TestUnfollowUnknownTarget(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 1)

	err := env.follows.Unfollow(users[0].ID, users[0].ID+99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFollowersListingRequiresExistingUser(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 3)

	require.NoError(t, env.follows.Follow(users[1].ID, users[0].ID))
	require.NoError(t, env.follows.Follow(users[2].ID, users[0].ID))

	followers, err := env.follows.Followers(users[0].ID)
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	_, err = env.follows.Followers(users[2].ID + 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
