package repositories

import (
	"fmt"
	"testing"

	"github.com/mediamingle/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedUsers(t *testing.T, db *gorm.DB, n int) []models.User {
	t.Helper()
	users := make([]models.User, n)
	for i := range users {
		users[i] = models.User{
			Email:    fmt.Sprintf("u%02d@example.com", i),
			Username: fmt.Sprintf("user%02d", i),
			Password: "x",
		}
	}
	require.NoError(t, db.Create(&users).Error)
	return users
}
