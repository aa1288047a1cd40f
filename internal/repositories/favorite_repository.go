package repositories

import (
	"github.com/mediamingle/backend/internal/models"
	"gorm.io/gorm"
)

// FavoriteRepository defines the interface for favorite operations
type FavoriteRepository interface {
	WithTx(tx *gorm.DB) FavoriteRepository
	CreateFavorite(favorite *models.Favorite) error
	GetByUserAndContent(userID uint, contentType, contentID string) (*models.Favorite, error)
	GetFavoritesByUser(userID uint) ([]models.Favorite, error)
	DeleteFavorite(id, userID uint) (bool, error)
	CountByUser(userID uint) (int64, error)
}

// PostgresFavoriteRepository implements FavoriteRepository
type PostgresFavoriteRepository struct {
	db *gorm.DB
}

func NewPostgresFavoriteRepository(db *gorm.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{db: db}
}

func (r *PostgresFavoriteRepository) WithTx(tx *gorm.DB) FavoriteRepository {
	return &PostgresFavoriteRepository{db: tx}
}

func (r *PostgresFavoriteRepository) CreateFavorite(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *PostgresFavoriteRepository) GetByUserAndContent(userID uint, contentType, contentID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.Where("user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *PostgresFavoriteRepository) GetFavoritesByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Where("user_id = ?", userID).Order("added_at DESC").Find(&favorites).Error
	return favorites, err
}

func (r *PostgresFavoriteRepository) DeleteFavorite(id, userID uint) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresFavoriteRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
