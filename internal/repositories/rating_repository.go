package repositories

import (
	"github.com/mediamingle/backend/internal/models"
	"gorm.io/gorm"
)

// RatingListFilter narrows and orders a ratings listing.
type RatingListFilter struct {
	ContentType string
	MinRating   float64
	SortBy      string // rated_at (default), rating, title
}

// RatingRepository defines the interface for rating operations
type RatingRepository interface {
	WithTx(tx *gorm.DB) RatingRepository
	SaveRating(rating *models.Rating) error
	GetByID(id uint) (*models.Rating, error)
	GetByUserAndContent(userID uint, contentType, contentID string) (*models.Rating, error)
	GetRatingsByUser(userID uint, filter RatingListFilter) ([]models.Rating, error)
	GetRecentByUser(userID uint, limit int) ([]models.Rating, error)
	DeleteRating(id, userID uint) (bool, error)
	CountByUser(userID uint) (int64, error)
}

// PostgresRatingRepository implements RatingRepository
type PostgresRatingRepository struct {
	db *gorm.DB
}

func NewPostgresRatingRepository(db *gorm.DB) *PostgresRatingRepository {
	return &PostgresRatingRepository{db: db}
}

func (r *PostgresRatingRepository) WithTx(tx *gorm.DB) RatingRepository {
	return &PostgresRatingRepository{db: tx}
}

func (r *PostgresRatingRepository) SaveRating(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

func (r *PostgresRatingRepository) GetByID(id uint) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *PostgresRatingRepository) GetByUserAndContent(userID uint, contentType, contentID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *PostgresRatingRepository) GetRatingsByUser(userID uint, filter RatingListFilter) ([]models.Rating, error) {
	query := r.db.Where("user_id = ?", userID)
	if filter.ContentType != "" {
		query = query.Where("content_type = ?", filter.ContentType)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	switch filter.SortBy {
	case "rating":
		query = query.Order("rating DESC")
	case "title":
		query = query.Order("title")
	default:
		query = query.Order("rated_at DESC")
	}

	var ratings []models.Rating
	err := query.Find(&ratings).Error
	return ratings, err
}

func (r *PostgresRatingRepository) GetRecentByUser(userID uint, limit int) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("user_id = ?", userID).Order("rated_at DESC").Limit(limit).Find(&ratings).Error
	return ratings, err
}

func (r *PostgresRatingRepository) DeleteRating(id, userID uint) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Rating{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresRatingRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
