package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mediamingle/backend/pkg/catalog"
)

// CatalogHandler relays catalog lookups to TMDB and Jikan.
type CatalogHandler struct {
	tmdb  *catalog.TMDBClient
	jikan *catalog.JikanClient
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(tmdb *catalog.TMDBClient, jikan *catalog.JikanClient) *CatalogHandler {
	return &CatalogHandler{tmdb: tmdb, jikan: jikan}
}

// RegisterCatalogRoutes registers catalog proxy routes
func (h *CatalogHandler) RegisterCatalogRoutes(g *echo.Group) {
	g.GET("/catalog/trending-movies", h.TrendingMovies)
	g.GET("/catalog/trending-tv", h.TrendingTV)
	g.GET("/catalog/trending-anime", h.TrendingAnime)
	g.GET("/catalog/search-movies", h.SearchMovies)
	g.GET("/catalog/search-tv", h.SearchTV)
	g.GET("/catalog/search-anime", h.SearchAnime)
	g.GET("/catalog/movie/:id", h.MovieDetails)
	g.GET("/catalog/tv/:id", h.TVDetails)
	g.GET("/catalog/anime/:id", h.AnimeDetails)
}

func (h *CatalogHandler) relay(c echo.Context, payload json.RawMessage, err error) error {
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSONBlob(http.StatusOK, payload)
}

func (h *CatalogHandler) TrendingMovies(c echo.Context) error {
	payload, err := h.tmdb.TrendingMovies(c.Request().Context())
	return h.relay(c, payload, err)
}

func (h *CatalogHandler) TrendingTV(c echo.Context) error {
	payload, err := h.tmdb.TrendingTV(c.Request().Context())
	return h.relay(c, payload, err)
}

func (h *CatalogHandler) TrendingAnime(c echo.Context) error {
	payload, err := h.jikan.TopAnime(c.Request().Context())
	return h.relay(c, payload, err)
}

func (h *CatalogHandler) SearchMovies(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'query' is required")
	}
	payload, err := h.tmdb.SearchMovies(c.Request().Context(), query)
	return h.relay(c, payload, err)
}

func (h *CatalogHandler) SearchTV(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'query' is required")
	}
	payload, err := h.tmdb.SearchTV(c.Request().Context(), query)
	return h.relay(c, payload, err)
}

func (h *CatalogHandler) SearchAnime(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'query' is required")
	}
	payload, err := h.jikan.SearchAnime(c.Request().Context(), query)
	return h.relay(c, payload, err)
}

func (h *CatalogHandler) MovieDetails(c echo.Context) error {
	payload, err := h.tmdb.MovieDetails(c.Request().Context(), c.Param("id"))
	return h.relay(c, payload, err)
}

func (h *CatalogHandler) TVDetails(c echo.Context) error {
	payload, err := h.tmdb.TVDetails(c.Request().Context(), c.Param("id"))
	return h.relay(c, payload, err)
}

func (h *CatalogHandler) AnimeDetails(c echo.Context) error {
	payload, err := h.jikan.AnimeDetails(c.Request().Context(), c.Param("id"))
	return h.relay(c, payload, err)
}
