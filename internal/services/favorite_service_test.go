package services

import (
	"testing"

	"github.com/mediamingle/backend/internal/apperrors"
	"github.com/mediamingle/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavoriteTwiceEmitsOneEntry(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 1)
	req := models.FavoriteCreateRequest{
		ContentType: "movies",
		ContentID:   "m1",
		Title:       "Movie",
	}

	first, err := env.favorites.AddFavorite(users[0].ID, req)
	require.NoError(t, err)
	second, err := env.favorites.AddFavorite(users[0].ID, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 1, env.countRows(t, &models.Favorite{}))
	assert.EqualValues(t, 1, env.countRows(t, &models.Activity{}))
}

func TestCheckFavoriteReturnsNilWhenAbsent(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 1)

	favorite, err := env.favorites.CheckFavorite(users[0].ID, "tv", "t1")
	require.NoError(t, err)
	assert.Nil(t, favorite)

	_, err = env.favorites.AddFavorite(users[0].ID, models.FavoriteCreateRequest{
		ContentType: "tv",
		ContentID:   "t1",
		Title:       "Show",
	})
	require.NoError(t, err)

	favorite, err = env.favorites.CheckFavorite(users[0].ID, "tv", "t1")
	require.NoError(t, err)
	require.NotNil(t, favorite)
	assert.Equal(t, "Show", favorite.Title)
}

func TestRemoveFavoriteKeepsLedgerEntry(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 2)

	favorite, err := env.favorites.AddFavorite(users[0].ID, models.FavoriteCreateRequest{
		ContentType: "anime",
		ContentID:   "a1",
		Title:       "Anime",
	})
	require.NoError(t, err)

	// Someone else's id does not delete the row.
	err = env.favorites.RemoveFavorite(users[1].ID, favorite.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, env.favorites.RemoveFavorite(users[0].ID, favorite.ID))
	assert.EqualValues(t, 0, env.countRows(t, &models.Favorite{}))
	assert.EqualValues(t, 1, env.countRows(t, &models.Activity{}))
}
