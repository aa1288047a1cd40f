package services

import (
	"errors"

	"github.com/mediamingle/backend/internal/apperrors"
	"github.com/mediamingle/backend/internal/metrics"
	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/repositories"
	"gorm.io/gorm"
)

// FavoriteService handles favorite CRUD and emits favorite activity in the
// same transaction as the insert.
type FavoriteService struct {
	db           *gorm.DB
	favoriteRepo repositories.FavoriteRepository
	activityRepo repositories.ActivityRepository
	collector    *metrics.Collector
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(
	db *gorm.DB,
	favoriteRepo repositories.FavoriteRepository,
	activityRepo repositories.ActivityRepository,
	collector *metrics.Collector,
) *FavoriteService {
	return &FavoriteService{
		db:           db,
		favoriteRepo: favoriteRepo,
		activityRepo: activityRepo,
		collector:    collector,
	}
}

// AddFavorite favorites one catalog item. Re-favoriting returns the existing
// row unchanged and emits nothing.
func (s *FavoriteService) AddFavorite(userID uint, req models.FavoriteCreateRequest) (*models.Favorite, error) {
	existing, err := s.favoriteRepo.GetByUserAndContent(userID, req.ContentType, req.ContentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	favorite := &models.Favorite{
		UserID:      userID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Title:       req.Title,
		PosterURL:   req.PosterURL,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.favoriteRepo.WithTx(tx).CreateFavorite(favorite); err != nil {
			return err
		}
		return s.activityRepo.WithTx(tx).Record(&models.Activity{
			UserID:        userID,
			ActivityType:  models.ActivityFavorite,
			ContentType:   req.ContentType,
			ContentID:     req.ContentID,
			ContentTitle:  req.Title,
			ContentPoster: req.PosterURL,
		})
	})
	if err != nil {
		return nil, err
	}

	s.collector.RecordActivity(models.ActivityFavorite)
	return favorite, nil
}

// ListFavorites returns the user's favorites, newest first.
func (s *FavoriteService) ListFavorites(userID uint) ([]models.Favorite, error) {
	return s.favoriteRepo.GetFavoritesByUser(userID)
}

// CheckFavorite returns the favorite for one catalog item, or nil.
func (s *FavoriteService) CheckFavorite(userID uint, contentType, contentID string) (*models.Favorite, error) {
	favorite, err := s.favoriteRepo.GetByUserAndContent(userID, contentType, contentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return favorite, err
}

// RemoveFavorite deletes the favorite row. Ledger entries are kept.
func (s *FavoriteService) RemoveFavorite(userID, favoriteID uint) error {
	deleted, err := s.favoriteRepo.DeleteFavorite(favoriteID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
