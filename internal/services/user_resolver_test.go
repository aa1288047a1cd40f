package services

import (
	"fmt"
	"testing"

	"github.com/mediamingle/backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUserRefByIDAndUsername(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, 1)

	byID, err := ResolveUserRef(env.userRepo, fmt.Sprint(users[0].ID))
	require.NoError(t, err)
	assert.Equal(t, users[0].ID, byID.ID)

	byName, err := ResolveUserRef(env.userRepo, users[0].Username)
	require.NoError(t, err)
	assert.Equal(t, users[0].ID, byName.ID)

	// Lookup by username is case-insensitive.
	byUpper, err := ResolveUserRef(env.userRepo, "USER00")
	require.NoError(t, err)
	assert.Equal(t, users[0].ID, byUpper.ID)
}

func TestResolveUserRefUnknown(t *testing.T) {
	env := newTestEnv(t)
	env.seedUsers(t, 1)

	_, err := ResolveUserRef(env.userRepo, "999999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = ResolveUserRef(env.userRepo, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
