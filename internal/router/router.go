package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/movie-seat-booking/internal/handler" // import the handlers that implement the API surface
)

// RegisterRoutes registers the health check on the provided Echo instance.
// This endpoint can be used by load balancers or monitoring systems to
// verify that the service is up and running.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the movie/theater catalog endpoints under /v1.
// Write endpoints (adding movies and theaters, linking them) sit next to
// the browse endpoints; none of them require authentication.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler) {
	g := e.Group("/v1")
	// Catalog writes: add or replace a movie/theater, record a link.
	g.POST("/movies", h.AddMovie)
	g.POST("/theaters", h.AddTheater)
	g.POST("/links", h.LinkMovie)
	// Catalog reads.
	g.GET("/movies", h.GetMovies)
	g.GET("/movies/:id", h.GetMovie)
	g.GET("/movies/:id/theaters", h.GetTheatersForMovie)
	g.GET("/movies/:id/occupancy", h.GetMovieOccupancy)
}

// RegisterReservations registers seat availability and reservation
// endpoints under /v1. A screening is addressed by its (movie, theater)
// pair directly in the path.
func RegisterReservations(e *echo.Echo, h *handler.ReservationHandler) {
	g := e.Group("/v1")
	// Snapshot of free seats for one screening.
	g.GET("/screenings/:movie/:theater/seats", h.GetSeats)
	// All-or-nothing seat reservation.
	g.POST("/screenings/:movie/:theater/reservations", h.Reserve)
	// Booking lookup by id.
	g.GET("/bookings/:id", h.GetBooking)
}
