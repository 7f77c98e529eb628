// Package handler exposes the HTTP surface over the booking service. The
// handlers translate between JSON requests and the typed service API; all
// reservation semantics live in internal/booking.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-seat-booking/internal/booking"
)

// CatalogHandler serves the movie/theater catalog endpoints.
type CatalogHandler struct {
	Service *booking.Service
}

// NewCatalogHandler constructs a CatalogHandler. The service must be non-nil.
func NewCatalogHandler(svc *booking.Service) *CatalogHandler {
	if svc == nil {
		panic("nil service passed to NewCatalogHandler")
	}
	return &CatalogHandler{Service: svc}
}

// parseID32 parses a decimal path parameter into a uint32 id.
func parseID32(c echo.Context, name string) (uint32, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// AddMovie handles POST /v1/movies. The body must contain an id and a
// title. Re-posting an existing id replaces the record.
func (h *CatalogHandler) AddMovie(c echo.Context) error {
	var body struct {
		ID    uint32 `json:"id"`
		Title string `json:"title"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	h.Service.AddMovie(body.ID, body.Title)
	return c.JSON(http.StatusCreated, echo.Map{"id": body.ID})
}

// AddTheater handles POST /v1/theaters. The body must contain an id and a
// name. Re-posting an existing id replaces the record.
func (h *CatalogHandler) AddTheater(c echo.Context) error {
	var body struct {
		ID   uint32 `json:"id"`
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	h.Service.AddTheater(body.ID, body.Name)
	return c.JSON(http.StatusCreated, echo.Map{"id": body.ID})
}

// LinkMovie handles POST /v1/links. It records that a movie is shown in a
// theater and returns 404 when either id is unknown.
func (h *CatalogHandler) LinkMovie(c echo.Context) error {
	var body struct {
		MovieID   uint32 `json:"movie_id"`
		TheaterID uint32 `json:"theater_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !h.Service.Link(body.MovieID, body.TheaterID) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie or theater not found"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"movie_id":   body.MovieID,
		"theater_id": body.TheaterID,
	})
}

// GetMovies handles GET /v1/movies and returns every movie sorted by id.
func (h *CatalogHandler) GetMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Service.AllMovies()})
}

// GetMovie handles GET /v1/movies/:id.
func (h *CatalogHandler) GetMovie(c echo.Context) error {
	id, ok := parseID32(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	m, found := h.Service.Movie(id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": m})
}

// GetTheatersForMovie handles GET /v1/movies/:id/theaters. Theaters are
// returned in the order their links were recorded.
func (h *CatalogHandler) GetTheatersForMovie(c echo.Context) error {
	id, ok := parseID32(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	if _, found := h.Service.Movie(id); !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Service.TheatersFor(id)})
}

// TheaterOccupancy is one row of the per-movie occupancy listing.
type TheaterOccupancy struct {
	TheaterID        uint32  `json:"theater_id"`
	TheaterName      string  `json:"theater_name"`
	AvailableCount   uint32  `json:"available_count"`
	OccupancyPercent float64 `json:"occupancy_percent"`
}

// GetMovieOccupancy handles GET /v1/movies/:id/occupancy. It reports the
// occupancy of every screening of the movie, one row per linked theater.
// Screenings nobody has reserved against yet report 0%.
func (h *CatalogHandler) GetMovieOccupancy(c echo.Context) error {
	id, ok := parseID32(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	if _, found := h.Service.Movie(id); !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	theaters := h.Service.TheatersFor(id)
	items := make([]TheaterOccupancy, 0, len(theaters))
	for _, t := range theaters {
		items = append(items, TheaterOccupancy{
			TheaterID:        t.ID,
			TheaterName:      t.Name,
			AvailableCount:   h.Service.AvailableCount(id, t.ID),
			OccupancyPercent: h.Service.OccupancyPercent(id, t.ID),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
