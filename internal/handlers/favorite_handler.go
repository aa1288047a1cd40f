package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/services"
)

// FavoriteHandler handles favorite HTTP requests
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// RegisterFavoriteRoutes registers favorite-related routes
func (h *FavoriteHandler) RegisterFavoriteRoutes(g *echo.Group) {
	g.POST("/favorites", h.AddFavorite)
	g.GET("/favorites", h.ListFavorites)
	g.GET("/favorites/check/:type/:id", h.CheckFavorite)
	g.DELETE("/favorites/:id", h.RemoveFavorite)
}

// AddFavorite favorites a catalog item; re-favoriting is idempotent
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.FavoriteCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	favorite, err := h.favoriteService.AddFavorite(currentUserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, favorite)
}

// ListFavorites returns the caller's favorites
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	favorites, err := h.favoriteService.ListFavorites(currentUserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, favorites)
}

// CheckFavorite reports whether a catalog item is favorited
func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	favorite, err := h.favoriteService.CheckFavorite(currentUserID, c.Param("type"), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if favorite == nil {
		return c.JSON(http.StatusOK, echo.Map{"is_favorite": false, "favorite_id": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"is_favorite": true, "favorite_id": favorite.ID})
}

// RemoveFavorite deletes a favorite. Ledger entries are kept.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	favoriteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid favorite ID")
	}

	if err := h.favoriteService.RemoveFavorite(currentUserID, uint(favoriteID)); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Favorite removed"})
}
