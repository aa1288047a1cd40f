package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/repositories"
	"github.com/mediamingle/backend/internal/services"
)

// RatingHandler handles rating HTTP requests
type RatingHandler struct {
	ratingService *services.RatingService
}

// NewRatingHandler creates a new RatingHandler
func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRatingRoutes registers rating-related routes
func (h *RatingHandler) RegisterRatingRoutes(g *echo.Group) {
	g.POST("/ratings", h.SaveRating)
	g.GET("/ratings", h.ListRatings)
	g.GET("/ratings/stats", h.GetStats)
	g.GET("/ratings/:type/:id", h.GetRatingForContent)
	g.PUT("/ratings/:id", h.UpdateRating)
	g.DELETE("/ratings/:id", h.DeleteRating)
}

// SaveRating creates or updates the caller's rating for a catalog item
func (h *RatingHandler) SaveRating(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.RatingCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.ratingService.SaveRating(currentUserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rating)
}

// ListRatings returns the caller's ratings with optional filters
func (h *RatingHandler) ListRatings(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	minRating, _ := strconv.ParseFloat(c.QueryParam("min_rating"), 64)
	filter := repositories.RatingListFilter{
		ContentType: c.QueryParam("content_type"),
		MinRating:   minRating,
		SortBy:      c.QueryParam("sort_by"),
	}

	ratings, err := h.ratingService.ListRatings(currentUserID, filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ratings)
}

// GetRatingForContent returns the caller's rating for one catalog item
func (h *RatingHandler) GetRatingForContent(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	rating, err := h.ratingService.GetForContent(currentUserID, c.Param("type"), c.Param("id"))
	if err != nil {
		// Absence is a regular answer here, not a 404.
		return c.JSON(http.StatusOK, echo.Map{"has_rating": false})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"has_rating": true,
		"rating":     rating.Rating,
		"review":     rating.Review,
		"rated_at":   rating.RatedAt,
		"rating_id":  rating.ID,
	})
}

// UpdateRating updates a rating by id
func (h *RatingHandler) UpdateRating(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ratingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid rating ID")
	}

	var req models.RatingUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.ratingService.UpdateRating(currentUserID, uint(ratingID), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rating)
}

// DeleteRating deletes a rating. The historical feed activity stays.
func (h *RatingHandler) DeleteRating(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ratingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid rating ID")
	}

	if err := h.ratingService.DeleteRating(currentUserID, uint(ratingID)); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Rating deleted successfully"})
}

// GetStats returns the caller's rating statistics
func (h *RatingHandler) GetStats(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	stats, err := h.ratingService.Stats(currentUserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
