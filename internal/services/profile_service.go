package services

import (
	"errors"

	"github.com/mediamingle/backend/internal/apperrors"
	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/repositories"
	"gorm.io/gorm"
)

// ProfileService aggregates a public profile view: directory fields plus
// social and content counts, computed from current store state at query time.
type ProfileService struct {
	userRepo     repositories.UserRepository
	followRepo   repositories.FollowRepository
	ratingRepo   repositories.RatingRepository
	favoriteRepo repositories.FavoriteRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	ratingRepo repositories.RatingRepository,
	favoriteRepo repositories.FavoriteRepository,
) *ProfileService {
	return &ProfileService{
		userRepo:     userRepo,
		followRepo:   followRepo,
		ratingRepo:   ratingRepo,
		favoriteRepo: favoriteRepo,
	}
}

// GetProfile builds the public view of targetID. When viewerID is non-nil the
// result also reports whether the viewer follows the target.
func (s *ProfileService) GetProfile(targetID uint, viewerID *uint) (*models.PublicProfile, error) {
	user, err := s.userRepo.GetUserByID(targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.GetFollowersCount(user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.GetFollowingCount(user.ID)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.CountByUser(user.ID)
	if err != nil {
		return nil, err
	}
	favorites, err := s.favoriteRepo.CountByUser(user.ID)
	if err != nil {
		return nil, err
	}

	profile := &models.PublicProfile{
		ID:             user.ID,
		Username:       user.Username,
		Bio:            user.Bio,
		AvatarURL:      user.AvatarURL,
		IsOnline:       user.IsOnline,
		CreatedAt:      user.CreatedAt,
		FollowersCount: followers,
		FollowingCount: following,
		RatingsCount:   ratings,
		FavoritesCount: favorites,
	}

	if viewerID != nil && *viewerID != user.ID {
		isFollowing, err := s.followRepo.IsFollowing(*viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		profile.IsFollowing = &isFollowing
	}

	return profile, nil
}

// UpdateProfile applies a partial bio/avatar update to the caller's record.
func (s *ProfileService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}
