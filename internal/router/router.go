package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/mediamingle/backend/internal/handlers"
	"github.com/mediamingle/backend/internal/metrics"
	"github.com/mediamingle/backend/internal/middleware"
	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/repositories"
	"github.com/mediamingle/backend/internal/services"
	"github.com/mediamingle/backend/pkg/catalog"
	"github.com/mediamingle/backend/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	pgdb *gorm.DB,
	mgClient *mongo.Client,
	firebaseAuthClient *auth.Client,
	collector *metrics.Collector,
	logger *zap.Logger,
) error {
	// AutoMigrate PostgreSQL models. Migrations are additive only; columns are
	// never patched in place.
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Activity{},
		&models.Favorite{},
		&models.Rating{},
	)
	if err != nil {
		return err
	}
	logger.Info("PostgreSQL auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	activityRepo := repositories.NewPostgresActivityRepository(pgdb)
	favoriteRepo := repositories.NewPostgresFavoriteRepository(pgdb)
	ratingRepo := repositories.NewPostgresRatingRepository(pgdb)
	historyRepo := repositories.NewMongoHistoryRepository(mgClient.Database("mediamingle"))

	// --- Initialize Services ---
	followService := services.NewFollowService(pgdb, followRepo, activityRepo, userRepo, collector)
	feedService := services.NewFeedService(followRepo, activityRepo, userRepo, collector)
	profileService := services.NewProfileService(userRepo, followRepo, ratingRepo, favoriteRepo)
	ratingService := services.NewRatingService(pgdb, ratingRepo, activityRepo, collector)
	favoriteService := services.NewFavoriteService(pgdb, favoriteRepo, activityRepo, collector)

	// --- Unprotected routes ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)

	public := e.Group("/api/v1")
	userHandler := handlers.NewUserHandler(profileService, ratingService, userRepo, cfg.JWTSecret)
	userHandler.RegisterPublicRoutes(public)

	followHandler := handlers.NewFollowHandler(followService, userRepo)
	followHandler.RegisterPublicFollowRoutes(public)

	catalogHandler := handlers.NewCatalogHandler(catalog.NewTMDBClient(cfg.TMDBAPIKey), catalog.NewJikanClient())
	catalogHandler.RegisterCatalogRoutes(public)

	feedHandler := handlers.NewFeedHandler(feedService, userRepo)
	feedHandler.RegisterPublicFeedRoutes(public)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	authHandler.RegisterMeRoute(api)
	userHandler.RegisterProfileRoutes(api)
	followHandler.RegisterFollowRoutes(api)

	feedHandler.RegisterFeedRoutes(api)

	ratingHandler := handlers.NewRatingHandler(ratingService)
	ratingHandler.RegisterRatingRoutes(api)

	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	favoriteHandler.RegisterFavoriteRoutes(api)

	historyHandler := handlers.NewHistoryHandler(historyRepo)
	historyHandler.RegisterHistoryRoutes(api)

	logger.Info("All routes configured")
	return nil
}
