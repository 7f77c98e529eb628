package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-seat-booking/internal/booking"
	"github.com/iliyamo/movie-seat-booking/internal/queue"
	queue_publisher "github.com/iliyamo/movie-seat-booking/internal/service"
)

// ReservationHandler serves seat availability and reservation endpoints.
// Reserve is the only write; every failure it surfaces is guaranteed to
// have left the screening untouched.
type ReservationHandler struct {
	Service *booking.Service

	// Publish sends the confirmation event after a successful
	// reservation. Overridable in tests; nil disables publishing.
	Publish func(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// NewReservationHandler constructs a ReservationHandler that publishes
// booking confirmations to RabbitMQ. The service must be non-nil.
func NewReservationHandler(svc *booking.Service) *ReservationHandler {
	if svc == nil {
		panic("nil service passed to NewReservationHandler")
	}
	return &ReservationHandler{
		Service: svc,
		Publish: queue_publisher.PublishBookingConfirmed,
	}
}

// screeningParams parses the :movie and :theater path parameters.
func screeningParams(c echo.Context) (movieID, theaterID uint32, ok bool) {
	m, err := strconv.ParseUint(c.Param("movie"), 10, 32)
	if err != nil {
		return 0, 0, false
	}
	t, err := strconv.ParseUint(c.Param("theater"), 10, 32)
	if err != nil {
		return 0, 0, false
	}
	return uint32(m), uint32(t), true
}

// GetSeats handles GET /v1/screenings/:movie/:theater/seats. The response
// is a snapshot: a pair nobody has reserved against yet answers as a
// fully free row of twenty without creating any state.
func (h *ReservationHandler) GetSeats(c echo.Context) error {
	movieID, theaterID, ok := screeningParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid screening ids"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"available_seats":   h.Service.AvailableSeats(movieID, theaterID),
		"available_count":   h.Service.AvailableCount(movieID, theaterID),
		"occupancy_percent": h.Service.OccupancyPercent(movieID, theaterID),
	})
}

// Reserve handles POST /v1/screenings/:movie/:theater/reservations. The
// body must contain a "seats" array of identifiers (a1..a20). Reservation
// is all-or-nothing: 201 with the booking on success, 409 when any seat
// is taken (or the screening is under extreme contention), 404 for
// unknown or unlinked pairs, 400 for malformed input.
func (h *ReservationHandler) Reserve(c echo.Context) error {
	movieID, theaterID, ok := screeningParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid screening ids"})
	}
	var body struct {
		Seats []string `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	b, err := h.Service.Reserve(movieID, theaterID, body.Seats)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrEmptySeats), errors.Is(err, booking.ErrInvalidSeat):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, booking.ErrUnknownMovie), errors.Is(err, booking.ErrUnknownTheater), errors.Is(err, booking.ErrNotLinked):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		case errors.Is(err, booking.ErrSeatsUnavailable), errors.Is(err, booking.ErrContention):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
		}
	}

	if h.Publish != nil {
		ev := queue.BookingConfirmedEvent{
			BookingID:   b.ID,
			MovieID:     movieID,
			TheaterID:   theaterID,
			Seats:       b.Seats,
			SeatsLeft:   h.Service.AvailableCount(movieID, theaterID),
			ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if m, found := h.Service.Movie(movieID); found {
			ev.MovieTitle = m.Title
		}
		if t, found := h.Service.Theater(theaterID); found {
			ev.TheaterName = t.Name
		}
		// Best-effort: the booking is already final, so the publish runs
		// detached from the request and its error is ignored.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = h.Publish(ctx, ev)
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{"item": b})
}

// GetBooking handles GET /v1/bookings/:id.
func (h *ReservationHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	b, found := h.Service.Booking(id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": b})
}
