package services

import (
	"errors"
	"time"

	"github.com/mediamingle/backend/internal/apperrors"
	"github.com/mediamingle/backend/internal/metrics"
	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/repositories"
	"gorm.io/gorm"
)

// RatingService handles rating CRUD and emits rating activity. The rating row
// and its ledger entry commit in one transaction: a saved rating without its
// activity (or the reverse) must never be observable.
type RatingService struct {
	db           *gorm.DB
	ratingRepo   repositories.RatingRepository
	activityRepo repositories.ActivityRepository
	collector    *metrics.Collector
}

// NewRatingService creates a new RatingService
func NewRatingService(
	db *gorm.DB,
	ratingRepo repositories.RatingRepository,
	activityRepo repositories.ActivityRepository,
	collector *metrics.Collector,
) *RatingService {
	return &RatingService{
		db:           db,
		ratingRepo:   ratingRepo,
		activityRepo: activityRepo,
		collector:    collector,
	}
}

// SaveRating creates or updates the user's rating for one catalog item. Every
// save, including a re-rate, appends a fresh activity entry.
func (s *RatingService) SaveRating(userID uint, req models.RatingCreateRequest) (*models.Rating, error) {
	var saved *models.Rating
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.ratingRepo.WithTx(tx)

		rating, err := repo.GetByUserAndContent(userID, req.ContentType, req.ContentID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if rating == nil {
			rating = &models.Rating{
				UserID:      userID,
				ContentType: req.ContentType,
				ContentID:   req.ContentID,
				Title:       req.Title,
				PosterURL:   req.PosterURL,
			}
		}
		rating.Rating = req.Rating
		rating.Review = req.Review
		rating.RatedAt = time.Now()
		if err := repo.SaveRating(rating); err != nil {
			return err
		}

		value := req.Rating
		if err := s.activityRepo.WithTx(tx).Record(&models.Activity{
			UserID:        userID,
			ActivityType:  models.ActivityRating,
			ContentType:   req.ContentType,
			ContentID:     req.ContentID,
			ContentTitle:  req.Title,
			ContentPoster: req.PosterURL,
			RatingValue:   &value,
		}); err != nil {
			return err
		}
		saved = rating
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.collector.RecordActivity(models.ActivityRating)
	return saved, nil
}

// UpdateRating adjusts score/review on an existing rating by id.
func (s *RatingService) UpdateRating(userID, ratingID uint, req models.RatingUpdateRequest) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByID(ratingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if rating.UserID != userID {
		return nil, apperrors.ErrNotFound
	}

	rating.Rating = req.Rating
	rating.Review = req.Review
	rating.RatedAt = time.Now()
	if err := s.ratingRepo.SaveRating(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// DeleteRating removes the rating row. The historical activity entries are
// kept: the ledger is append-only audit history.
func (s *RatingService) DeleteRating(userID, ratingID uint) error {
	deleted, err := s.ratingRepo.DeleteRating(ratingID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListRatings returns the user's ratings with optional filters.
func (s *RatingService) ListRatings(userID uint, filter repositories.RatingListFilter) ([]models.Rating, error) {
	return s.ratingRepo.GetRatingsByUser(userID, filter)
}

// GetForContent returns the user's rating for one catalog item, or
// apperrors.ErrNotFound when none exists.
func (s *RatingService) GetForContent(userID uint, contentType, contentID string) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByUserAndContent(userID, contentType, contentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	return rating, err
}

// RecentByUser returns the user's most recent ratings for the public profile.
func (s *RatingService) RecentByUser(userID uint, limit int) ([]models.Rating, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.ratingRepo.GetRecentByUser(userID, limit)
}

// Stats summarizes the user's ratings.
func (s *RatingService) Stats(userID uint) (*models.RatingStats, error) {
	ratings, err := s.ratingRepo.GetRatingsByUser(userID, repositories.RatingListFilter{})
	if err != nil {
		return nil, err
	}
	stats := &models.RatingStats{TotalRatings: len(ratings)}
	if len(ratings) == 0 {
		return stats, nil
	}

	var sum float64
	highest, lowest := ratings[0], ratings[0]
	for _, r := range ratings {
		sum += r.Rating
		if r.Rating > highest.Rating {
			highest = r
		}
		if r.Rating < lowest.Rating {
			lowest = r
		}
	}
	stats.AverageRating = float64(int(sum/float64(len(ratings))*10+0.5)) / 10
	stats.HighestRated = &models.RatedContent{Title: highest.Title, Rating: highest.Rating, PosterURL: highest.PosterURL}
	stats.LowestRated = &models.RatedContent{Title: lowest.Title, Rating: lowest.Rating, PosterURL: lowest.PosterURL}
	return stats, nil
}
