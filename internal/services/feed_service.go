package services

import (
	"github.com/mediamingle/backend/internal/metrics"
	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/repositories"
)

const (
	// FeedDefaultLimit applies when the caller does not ask for a page size.
	FeedDefaultLimit = 50
	// FeedMaxLimit caps a single page to bound response size.
	FeedMaxLimit = 200
)

// FeedService assembles activity feeds at read time: follow set -> ledger ->
// author join. Nothing is materialized per follower at write time.
type FeedService struct {
	followRepo   repositories.FollowRepository
	activityRepo repositories.ActivityRepository
	userRepo     repositories.UserRepository
	collector    *metrics.Collector
}

// NewFeedService creates a new FeedService
func NewFeedService(
	followRepo repositories.FollowRepository,
	activityRepo repositories.ActivityRepository,
	userRepo repositories.UserRepository,
	collector *metrics.Collector,
) *FeedService {
	return &FeedService{
		followRepo:   followRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		collector:    collector,
	}
}

// GetFeed returns activity from the viewer's current follow set, newest first.
// Author username/avatar are the live directory values; content title/poster
// come frozen from the ledger entry.
func (s *FeedService) GetFeed(viewerID uint, limit, offset int) ([]models.FeedItem, error) {
	if limit <= 0 {
		limit = FeedDefaultLimit
	}
	if limit > FeedMaxLimit {
		limit = FeedMaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	followingIDs, err := s.followRepo.GetFollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}
	items := []models.FeedItem{}
	if len(followingIDs) == 0 {
		// Nobody followed: skip the ledger entirely instead of scanning it.
		s.collector.RecordFeedRequest(0)
		return items, nil
	}

	activities, err := s.activityRepo.GetByActors(followingIDs, limit, offset)
	if err != nil {
		return nil, err
	}

	actorIDs := make([]uint, 0, len(activities))
	seen := make(map[uint]bool, len(activities))
	for _, a := range activities {
		if !seen[a.UserID] {
			seen[a.UserID] = true
			actorIDs = append(actorIDs, a.UserID)
		}
	}
	authors, err := s.userRepo.GetUsersByIDs(actorIDs)
	if err != nil {
		return nil, err
	}

	for _, a := range activities {
		author := authors[a.UserID]
		items = append(items, models.FeedItem{
			ID:             a.ID,
			UserID:         a.UserID,
			Username:       author.Username,
			AvatarURL:      author.AvatarURL,
			ActivityType:   a.ActivityType,
			ContentType:    a.ContentType,
			ContentID:      a.ContentID,
			ContentTitle:   a.ContentTitle,
			ContentPoster:  a.ContentPoster,
			RatingValue:    a.RatingValue,
			TargetUserID:   a.TargetUserID,
			TargetUsername: a.TargetUsername,
			CreatedAt:      a.CreatedAt,
		})
	}

	s.collector.RecordFeedRequest(len(items))
	return items, nil
}

// UserActivity returns one user's own recent ledger entries plus the total
// count, for the public profile page.
func (s *FeedService) UserActivity(actorID uint, limit int) ([]models.FeedItem, int64, error) {
	if limit <= 0 {
		limit = FeedDefaultLimit
	}
	if limit > FeedMaxLimit {
		limit = FeedMaxLimit
	}

	activities, err := s.activityRepo.GetByActor(actorID, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.activityRepo.CountByActor(actorID)
	if err != nil {
		return nil, 0, err
	}
	authors, err := s.userRepo.GetUsersByIDs([]uint{actorID})
	if err != nil {
		return nil, 0, err
	}
	author := authors[actorID]

	items := make([]models.FeedItem, 0, len(activities))
	for _, a := range activities {
		items = append(items, models.FeedItem{
			ID:             a.ID,
			UserID:         a.UserID,
			Username:       author.Username,
			AvatarURL:      author.AvatarURL,
			ActivityType:   a.ActivityType,
			ContentType:    a.ContentType,
			ContentID:      a.ContentID,
			ContentTitle:   a.ContentTitle,
			ContentPoster:  a.ContentPoster,
			RatingValue:    a.RatingValue,
			TargetUserID:   a.TargetUserID,
			TargetUsername: a.TargetUsername,
			CreatedAt:      a.CreatedAt,
		})
	}
	return items, total, nil
}
