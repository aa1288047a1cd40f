package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mediamingle/backend/internal/repositories"
	"github.com/mediamingle/backend/internal/services"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followService *services.FollowService
	userRepo      repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService *services.FollowService, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{followService: followService, userRepo: userRepo}
}

// RegisterFollowRoutes registers follow-related routes on the protected group
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/follow/:user", h.FollowUser)
	g.DELETE("/follow/:user", h.UnfollowUser)
	g.GET("/follow/check/:user", h.CheckFollow)
	g.GET("/followers", h.GetOwnFollowers)
	g.GET("/following", h.GetOwnFollowing)
}

// RegisterPublicFollowRoutes registers the public edge listings
func (h *FollowHandler) RegisterPublicFollowRoutes(g *echo.Group) {
	g.GET("/users/:user/followers", h.GetUserFollowers)
	g.GET("/users/:user/following", h.GetUserFollowing)
}

// FollowUser follows a user. Repeated calls are idempotent.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	target, err := services.ResolveUserRef(h.userRepo, c.Param("user"))
	if err != nil {
		return httpError(err)
	}

	if err := h.followService.Follow(currentUserID, target.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Now following " + target.Username,
		"is_following": true,
	})
}

// UnfollowUser unfollows a user. Unfollowing a non-followed user is a no-op.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	target, err := services.ResolveUserRef(h.userRepo, c.Param("user"))
	if err != nil {
		return httpError(err)
	}

	if err := h.followService.Unfollow(currentUserID, target.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Unfollowed " + target.Username,
		"is_following": false,
	})
}

// CheckFollow reports whether the caller follows the target user
func (h *FollowHandler) CheckFollow(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	target, err := services.ResolveUserRef(h.userRepo, c.Param("user"))
	if err != nil {
		return httpError(err)
	}

	isFollowing, err := h.followService.IsFollowing(currentUserID, target.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"is_following": isFollowing})
}

// GetOwnFollowers lists users following the caller
func (h *FollowHandler) GetOwnFollowers(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	followers, err := h.followService.Followers(currentUserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, followers)
}

// GetOwnFollowing lists users the caller follows
func (h *FollowHandler) GetOwnFollowing(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	following, err := h.followService.Following(currentUserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, following)
}

// GetUserFollowers lists followers of any user (public)
func (h *FollowHandler) GetUserFollowers(c echo.Context) error {
	target, err := services.ResolveUserRef(h.userRepo, c.Param("user"))
	if err != nil {
		return httpError(err)
	}
	followers, err := h.followService.Followers(target.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, followers)
}

// GetUserFollowing lists users any user follows (public)
func (h *FollowHandler) GetUserFollowing(c echo.Context) error {
	target, err := services.ResolveUserRef(h.userRepo, c.Param("user"))
	if err != nil {
		return httpError(err)
	}
	following, err := h.followService.Following(target.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, following)
}
