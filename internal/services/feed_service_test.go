package services

import (
	"fmt"
	"testing"

	"github.com/mediamingle/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeedAssemblesFromFollowSet(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 4)
	viewer, actors := users[0], users[1:]

	for _, a := range actors {
		require.NoError(t, env.follows.Follow(viewer.ID, a.ID))
	}
	for i, a := range actors {
		_, err := env.ratings.SaveRating(a.ID, models.RatingCreateRequest{
			ContentType: "movies",
			ContentID:   fmt.Sprintf("m%d", i),
			Title:       fmt.Sprintf("Movie %d", i),
			Rating:      7.5,
		})
		require.NoError(t, err)
	}

	items, err := env.feed.GetFeed(viewer.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Newest first, with the live username joined onto each entry.
	assert.Equal(t, "m2", items[0].ContentID)
	assert.Equal(t, "m0", items[2].ContentID)
	for i, item := range items {
		actor := actors[len(actors)-1-i]
		assert.Equal(t, actor.ID, item.UserID)
		assert.Equal(t, actor.Username, item.Username)
		assert.Equal(t, models.ActivityRating, item.ActivityType)
		require.NotNil(t, item.RatingValue)
		assert.Equal(t, 7.5, *item.RatingValue)
	}
}

func TestGetFeedExcludesUnfollowedActors(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 3)
	viewer := users[0]

	require.NoError(t, env.follows.Follow(viewer.ID, users[1].ID))
	require.NoError(t, env.follows.Follow(viewer.ID, users[2].ID))
	for _, a := range users[1:] {
		_, err := env.ratings.SaveRating(a.ID, models.RatingCreateRequest{
			ContentType: "tv",
			ContentID:   "t1",
			Title:       "Show",
			Rating:      8,
		})
		require.NoError(t, err)
	}

	require.NoError(t, env.follows.Unfollow(viewer.ID, users[1].ID))

	items, err := env.feed.GetFeed(viewer.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, users[2].ID, items[0].UserID)
}

func TestGetFeedEmptyFollowSet(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 2)

	_, err := env.ratings.SaveRating(users[1].ID, models.RatingCreateRequest{
		ContentType: "anime",
		ContentID:   "a1",
		Title:       "Anime",
		Rating:      9,
	})
	require.NoError(t, err)

	items, err := env.feed.GetFeed(users[0].ID, 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetFeedPaginates(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 2)
	viewer, actor := users[0], users[1]

	require.NoError(t, env.follows.Follow(viewer.ID, actor.ID))
	for i := 0; i < 5; i++ {
		_, err := env.favorites.AddFavorite(actor.ID, models.FavoriteCreateRequest{
			ContentType: "movies",
			ContentID:   fmt.Sprintf("m%d", i),
			Title:       fmt.Sprintf("Movie %d", i),
		})
		require.NoError(t, err)
	}

	first, err := env.feed.GetFeed(viewer.ID, 2, 0)
	require.NoError(t, err)
	second, err := env.feed.GetFeed(viewer.ID, 2, 2)
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, "m4", first[0].ContentID)
	assert.Equal(t, "m2", second[0].ContentID)
	for _, a := range first {
		for _, b := range second {
			assert.NotEqual(t, a.ID, b.ID)
		}
	}
}

func TestUserActivityListsOwnEntriesWithTotal(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 2)
	actor := users[0]

	require.NoError(t, env.follows.Follow(actor.ID, users[1].ID))
	for i := 0; i < 3; i++ {
		_, err := env.ratings.SaveRating(actor.ID, models.RatingCreateRequest{
			ContentType: "movies",
			ContentID:   fmt.Sprintf("m%d", i),
			Title:       fmt.Sprintf("Movie %d", i),
			Rating:      6,
		})
		require.NoError(t, err)
	}

	items, total, err := env.feed.UserActivity(actor.ID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total, "follow entry plus three ratings")
	require.Len(t, items, 2)
	assert.Equal(t, "m2", items[0].ContentID)
	for _, item := range items {
		assert.Equal(t, actor.ID, item.UserID)
		assert.Equal(t, actor.Username, item.Username)
	}
}

func TestGetFeedJoinsLiveAuthorDirectory(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 2)
	viewer, actor := users[0], users[1]

	require.NoError(t, env.follows.Follow(viewer.ID, actor.ID))
	_, err := env.favorites.AddFavorite(actor.ID, models.FavoriteCreateRequest{
		ContentType: "movies",
		ContentID:   "m1",
		Title:       "Original Title",
	})
	require.NoError(t, err)

	// Rename the author after the entry exists.
	require.NoError(t, env.db.Model(&models.User{}).
		Where("id = ?", actor.ID).
		Updates(map[string]interface{}{"username": "renamed", "avatar_url": "http://x/a.png"}).Error)

	items, err := env.feed.GetFeed(viewer.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "renamed", items[0].Username)
	assert.Equal(t, "http://x/a.png", items[0].AvatarURL)
	// Content fields stay frozen at emit time.
	assert.Equal(t, "Original Title", items[0].ContentTitle)
}
