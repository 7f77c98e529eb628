package booking

import (
	"fmt"

	"github.com/iliyamo/movie-seat-booking/internal/model"
	"github.com/iliyamo/movie-seat-booking/internal/seat"
)

// Service is the reservation facade combining the catalog, the screening
// registry and the booking log. Writes go through Reserve; reads never
// create screening state and never block a concurrent reservation.
type Service struct {
	catalog  *Catalog
	registry *Registry
	log      *Log
}

// NewService returns a service with an empty catalog and no bookings.
func NewService() *Service {
	return &Service{
		catalog:  NewCatalog(),
		registry: NewRegistry(),
		log:      NewLog(),
	}
}

// ===== Catalog operations =====

// AddMovie registers a movie; an existing id is replaced.
func (s *Service) AddMovie(id uint32, title string) {
	s.catalog.AddMovie(&model.Movie{ID: id, Title: title})
}

// AddTheater registers a theater; an existing id is replaced.
func (s *Service) AddTheater(id uint32, name string) {
	s.catalog.AddTheater(&model.Theater{ID: id, Name: name})
}

// Link records that the movie is shown in the theater. It returns false
// when either id is unknown.
func (s *Service) Link(movieID, theaterID uint32) bool {
	return s.catalog.Link(movieID, theaterID)
}

// AllMovies returns every movie sorted by id.
func (s *Service) AllMovies() []*model.Movie {
	return s.catalog.AllMovies()
}

// Movie returns the movie with the given id.
func (s *Service) Movie(id uint32) (*model.Movie, bool) {
	return s.catalog.Movie(id)
}

// Theater returns the theater with the given id.
func (s *Service) Theater(id uint32) (*model.Theater, bool) {
	return s.catalog.Theater(id)
}

// TheatersFor returns the theaters showing the movie in link order.
func (s *Service) TheatersFor(movieID uint32) []*model.Theater {
	return s.catalog.TheatersFor(movieID)
}

// ===== Seat reads =====
//
// Read paths look the screening up without creating it: a pair nobody has
// reserved against yet answers as a fully free row of twenty.

// AvailableSeats returns the free seat identifiers in ascending order.
func (s *Service) AvailableSeats(movieID, theaterID uint32) []string {
	state := s.registry.Lookup(movieID, theaterID)
	if state == nil {
		all := make([]string, 0, seat.MaxSeats)
		for bit := 0; bit < seat.MaxSeats; bit++ {
			all = append(all, seat.FormatSeatID(bit))
		}
		return all
	}
	return state.AvailableSeats()
}

// AvailableCount returns how many of the twenty seats are free.
func (s *Service) AvailableCount(movieID, theaterID uint32) uint32 {
	state := s.registry.Lookup(movieID, theaterID)
	if state == nil {
		return seat.MaxSeats
	}
	return state.AvailableCount()
}

// OccupancyPercent returns the occupied share of the screening in 0..100.
func (s *Service) OccupancyPercent(movieID, theaterID uint32) float64 {
	state := s.registry.Lookup(movieID, theaterID)
	if state == nil {
		return 0
	}
	return state.OccupancyPercent()
}

// ===== Reservation =====

// Reserve atomically acquires the given seats for the screening. Either
// every requested seat is won and a booking is recorded, or the call
// returns one of the package sentinel errors with no side effect at all.
func (s *Service) Reserve(movieID, theaterID uint32, seats []string) (*model.Booking, error) {
	if len(seats) == 0 {
		return nil, ErrEmptySeats
	}
	for _, id := range seats {
		if !seat.IsValidSeatID(id) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSeat, id)
		}
	}
	if err := s.catalog.VerifyLinked(movieID, theaterID); err != nil {
		return nil, err
	}
	mask := seat.BuildMask(seats)
	if mask == 0 {
		// Unreachable after per-id validation; kept as a guard.
		return nil, ErrInvalidSeat
	}

	state := s.registry.GetOrCreate(movieID, theaterID)
	if !state.TryReserve(mask) {
		// A cap-exhausted CAS loop and a genuine overlap come back as
		// the same false; one more snapshot tells them apart.
		if state.Available(mask) {
			return nil, ErrContention
		}
		return nil, ErrSeatsUnavailable
	}

	// Seats are won; only now is an id consumed, keeping ids dense.
	b := &model.Booking{
		ID:        s.log.AllocateID(),
		MovieID:   movieID,
		TheaterID: theaterID,
		Seats:     append([]string(nil), seats...),
	}
	s.log.Append(b)
	return b, nil
}

// Booking returns the booking with the given id.
func (s *Service) Booking(id uint64) (*model.Booking, bool) {
	return s.log.Lookup(id)
}

// Bookings returns the number of recorded bookings.
func (s *Service) Bookings() int {
	return s.log.Len()
}
