package services

import (
	"fmt"
	"testing"

	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv wires the full service stack over an in-memory database.
type testEnv struct {
	db           *gorm.DB
	userRepo     repositories.UserRepository
	followRepo   repositories.FollowRepository
	activityRepo repositories.ActivityRepository

	follows   *FollowService
	feed      *FeedService
	profiles  *ProfileService
	ratings   *RatingService
	favorites *FavoriteService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Activity{},
		&models.Favorite{},
		&models.Rating{},
	))

	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	activityRepo := repositories.NewPostgresActivityRepository(db)
	favoriteRepo := repositories.NewPostgresFavoriteRepository(db)
	ratingRepo := repositories.NewPostgresRatingRepository(db)

	return &testEnv{
		db:           db,
		userRepo:     userRepo,
		followRepo:   followRepo,
		activityRepo: activityRepo,
		follows:      NewFollowService(db, followRepo, activityRepo, userRepo, nil),
		feed:         NewFeedService(followRepo, activityRepo, userRepo, nil),
		profiles:     NewProfileService(userRepo, followRepo, ratingRepo, favoriteRepo),
		ratings:      NewRatingService(db, ratingRepo, activityRepo, nil),
		favorites:    NewFavoriteService(db, favoriteRepo, activityRepo, nil),
	}
}

func (env *testEnv) seedUsers(t *testing.T, n int) []models.User {
	t.Helper()
	users := make([]models.User, n)
	for i := range users {
		users[i] = models.User{
			Email:    fmt.Sprintf("u%02d@example.com", i),
			Username: fmt.Sprintf("user%02d", i),
			Password: "x",
		}
	}
	require.NoError(t, env.db.Create(&users).Error)
	return users
}

func (env *testEnv) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, env.db.Model(model).Count(&count).Error)
	return count
}
