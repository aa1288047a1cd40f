package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mediamingle/backend/internal/models"
	"github.com/mediamingle/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// HistoryHandler handles watch-history HTTP requests
type HistoryHandler struct {
	historyRepository repositories.HistoryRepository
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(historyRepo repositories.HistoryRepository) *HistoryHandler {
	return &HistoryHandler{historyRepository: historyRepo}
}

// RegisterHistoryRoutes registers history-related routes
func (h *HistoryHandler) RegisterHistoryRoutes(g *echo.Group) {
	g.POST("/history", h.AddToHistory)
	g.GET("/history", h.GetHistory)
	g.DELETE("/history/all", h.ClearHistory)
	g.DELETE("/history/:id", h.DeleteHistoryItem)
}

// AddToHistory records a content view
func (h *HistoryHandler) AddToHistory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.HistoryCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry := &models.HistoryEntry{
		UserID:      currentUserID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Title:       req.Title,
		PosterURL:   req.PosterURL,
	}
	if err := h.historyRepository.AddEntry(c.Request().Context(), entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entry)
}

// GetHistory returns the caller's watch history
func (h *HistoryHandler) GetHistory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit := intQueryParam(c, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	entries, err := h.historyRepository.GetByUser(c.Request().Context(), currentUserID, int64(limit))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}

// ClearHistory deletes the caller's entire watch history
func (h *HistoryHandler) ClearHistory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	deleted, err := h.historyRepository.DeleteAllByUser(c.Request().Context(), currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("All history cleared (%d items deleted)", deleted)})
}

// DeleteHistoryItem deletes a single history entry
func (h *HistoryHandler) DeleteHistoryItem(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.historyRepository.DeleteEntry(c.Request().Context(), currentUserID, c.Param("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "History item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "History item deleted"})
}
