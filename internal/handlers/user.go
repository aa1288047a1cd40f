package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mediamingle/backend/internal/middleware"
	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/repositories"
	"github.com/mediamingle/backend/internal/services"
)

// UserHandler handles profile-related HTTP requests
type UserHandler struct {
	profileService *services.ProfileService
	ratingService  *services.RatingService
	userRepo       repositories.UserRepository
	jwtSecret      string
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	profileService *services.ProfileService,
	ratingService *services.RatingService,
	userRepo repositories.UserRepository,
	jwtSecret string,
) *UserHandler {
	return &UserHandler{
		profileService: profileService,
		ratingService:  ratingService,
		userRepo:       userRepo,
		jwtSecret:      jwtSecret,
	}
}

// RegisterProfileRoutes registers authenticated profile routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.PUT("/profile", h.UpdateProfile)
	g.GET("/users/search", h.SearchUsers)
}

// RegisterPublicRoutes registers public profile routes
func (h *UserHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/users/:user/profile", h.GetProfile)
	g.GET("/users/:user/ratings", h.GetUserRatings)
}

// GetProfile returns the public profile with social counts. When the request
// carries a valid token the response also says whether the caller follows
// the target; the route itself stays public.
func (h *UserHandler) GetProfile(c echo.Context) error {
	target, err := services.ResolveUserRef(h.userRepo, c.Param("user"))
	if err != nil {
		return httpError(err)
	}

	var viewerID *uint
	if token := middleware.BearerToken(c); token != "" {
		if claims, err := middleware.ParseClaims(token, h.jwtSecret); err == nil {
			viewerID = &claims.UserID
		}
	}

	profile, err := h.profileService.GetProfile(target.ID, viewerID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GetUserRatings returns a user's most recent ratings (public)
func (h *UserHandler) GetUserRatings(c echo.Context) error {
	target, err := services.ResolveUserRef(h.userRepo, c.Param("user"))
	if err != nil {
		return httpError(err)
	}

	limit := intQueryParam(c, "limit", 20)
	ratings, err := h.ratingService.RecentByUser(target.ID, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ratings)
}

// UpdateProfile updates the caller's bio and avatar
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.profileService.UpdateProfile(currentUserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// SearchUsers searches for users by username
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'q' is required")
	}

	users, err := h.userRepo.SearchUsers(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	results := make([]models.UserCompact, len(users))
	for i := range users {
		results[i] = users[i].ToCompact()
	}
	return c.JSON(http.StatusOK, results)
}
