package services

import (
	"errors"

	"github.com/mediamingle/backend/internal/apperrors"
	"github.com/mediamingle/backend/internal/metrics"
	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/repositories"
	"gorm.io/gorm"
)

// FollowService owns the follow graph and emits the follow activity. The edge
// insert and the ledger entry commit in one transaction; a repeated follow is
// a no-op that must not append a second entry.
type FollowService struct {
	db           *gorm.DB
	followRepo   repositories.FollowRepository
	activityRepo repositories.ActivityRepository
	userRepo     repositories.UserRepository
	collector    *metrics.Collector
}

// NewFollowService creates a new FollowService
func NewFollowService(
	db *gorm.DB,
	followRepo repositories.FollowRepository,
	activityRepo repositories.ActivityRepository,
	userRepo repositories.UserRepository,
	collector *metrics.Collector,
) *FollowService {
	return &FollowService{
		db:           db,
		followRepo:   followRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		collector:    collector,
	}
}

// Follow creates the edge follower -> target. Idempotent: following an already
// followed user succeeds without a new edge or activity entry.
func (s *FollowService) Follow(followerID, targetID uint) error {
	if followerID == targetID {
		return apperrors.ErrSelfFollow
	}

	target, err := s.userRepo.GetUserByID(targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		created, err := s.followRepo.WithTx(tx).CreateFollow(&models.Follow{
			FollowerID:  followerID,
			FollowingID: targetID,
		})
		if err != nil {
			return err
		}
		if !created {
			// Already following, including the case where a concurrent request
			// won the race on the unique index.
			return nil
		}
		tid := target.ID
		if err := s.activityRepo.WithTx(tx).Record(&models.Activity{
			UserID:         followerID,
			ActivityType:   models.ActivityFollow,
			TargetUserID:   &tid,
			TargetUsername: target.Username,
		}); err != nil {
			return err
		}
		s.collector.RecordActivity(models.ActivityFollow)
		return nil
	})
	if err != nil {
		return err
	}

	s.collector.RecordFollowOp("follow")
	return nil
}

// Unfollow removes the edge follower -> target. Idempotent: unfollowing a user
// that is not followed is a no-op success. No activity entry is emitted, and
// prior follow entries stay in the ledger.
func (s *FollowService) Unfollow(followerID, targetID uint) error {
	if _, err := s.userRepo.GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	if _, err := s.followRepo.DeleteFollow(followerID, targetID); err != nil {
		return err
	}
	s.collector.RecordFollowOp("unfollow")
	return nil
}

// IsFollowing reports whether follower currently follows target.
func (s *FollowService) IsFollowing(followerID, targetID uint) (bool, error) {
	return s.followRepo.IsFollowing(followerID, targetID)
}

// Followers lists users following userID, most recent first.
func (s *FollowService) Followers(userID uint) ([]models.FollowerDetail, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowers(userID)
}

// Following lists users userID follows, most recent first.
func (s *FollowService) Following(userID uint) ([]models.FollowerDetail, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowing(userID)
}

func (s *FollowService) requireUser(userID uint) error {
	if _, err := s.userRepo.GetUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}
