package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mediamingle/backend/internal/repositories"
	"github.com/mediamingle/backend/internal/services"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService *services.FeedService
	userRepo    repositories.UserRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedService *services.FeedService, userRepo repositories.UserRepository) *FeedHandler {
	return &FeedHandler{feedService: feedService, userRepo: userRepo}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// RegisterPublicFeedRoutes registers the public per-user activity listing
func (h *FeedHandler) RegisterPublicFeedRoutes(g *echo.Group) {
	g.GET("/users/:user/activity", h.GetUserActivity)
}

// GetFeed returns the activity feed assembled from the caller's follow set
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	items, err := h.feedService.GetFeed(currentUserID, limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetUserActivity returns a user's own recent activity (public)
func (h *FeedHandler) GetUserActivity(c echo.Context) error {
	target, err := services.ResolveUserRef(h.userRepo, c.Param("user"))
	if err != nil {
		return httpError(err)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, total, err := h.feedService.UserActivity(target.ID, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": total})
}
