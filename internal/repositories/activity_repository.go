package repositories

import (
	"github.com/mediamingle/backend/internal/models"
	"gorm.io/gorm"
)

// ActivityRepository defines the interface for the append-only activity ledger.
// There is deliberately no update or delete: clearing a rating or favorite
// leaves its historical entries in place.
type ActivityRepository interface {
	// WithTx returns a repository bound to the given transaction handle, so an
	// entry commits atomically with the write that triggered it.
	WithTx(tx *gorm.DB) ActivityRepository
	Record(activity *models.Activity) error
	// GetByActors returns entries authored by the given set, newest first.
	// Equal timestamps are broken by id descending so pagination is stable.
	GetByActors(actorIDs []uint, limit, offset int) ([]models.Activity, error)
	GetByActor(actorID uint, limit int) ([]models.Activity, error)
	CountByActor(actorID uint) (int64, error)
}

// PostgresActivityRepository implements ActivityRepository for PostgreSQL
type PostgresActivityRepository struct {
	db *gorm.DB
}

// NewPostgresActivityRepository creates a new PostgresActivityRepository
func NewPostgresActivityRepository(db *gorm.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) WithTx(tx *gorm.DB) ActivityRepository {
	return &PostgresActivityRepository{db: tx}
}

func (r *PostgresActivityRepository) Record(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *PostgresActivityRepository) GetByActors(actorIDs []uint, limit, offset int) ([]models.Activity, error) {
	var activities []models.Activity
	if len(actorIDs) == 0 {
		return activities, nil
	}
	err := r.db.Where("user_id IN ?", actorIDs).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&activities).Error
	return activities, err
}

func (r *PostgresActivityRepository) GetByActor(actorID uint, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ?", actorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *PostgresActivityRepository) CountByActor(actorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Activity{}).Where("user_id = ?", actorID).Count(&count).Error
	return count, err
}
