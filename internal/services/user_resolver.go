package services

import (
	"errors"
	"strconv"

	"github.com/mediamingle/backend/internal/apperrors"
	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/repositories"
	"gorm.io/gorm"
)

// ResolveUserRef resolves a path segment to a user. The numeric id is the
// canonical key; anything non-numeric is treated as a username alias.
func ResolveUserRef(userRepo repositories.UserRepository, ref string) (*models.User, error) {
	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		return mapNotFound(userRepo.GetUserByID(uint(id)))
	}
	return mapNotFound(userRepo.GetUserByUsername(ref))
}

func mapNotFound(user *models.User, err error) (*models.User, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	return user, err
}
