package booking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-seat-booking/internal/model"
	"github.com/iliyamo/movie-seat-booking/internal/seat"
)

// newLinkedService returns a service with movie 1 showing in theater 1.
func newLinkedService(t *testing.T) *Service {
	t.Helper()
	svc := NewService()
	svc.AddMovie(1, "Dune: Part Two")
	svc.AddTheater(1, "VOX Cinemas")
	require.True(t, svc.Link(1, 1))
	return svc
}

func TestReserve_SingleSeatDuplicate(t *testing.T) {
	svc := newLinkedService(t)

	b, err := svc.Reserve(1, 1, []string{"a1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), b.ID)
	assert.Equal(t, []string{"a1"}, b.Seats)

	_, err = svc.Reserve(1, 1, []string{"a1"})
	assert.ErrorIs(t, err, ErrSeatsUnavailable)
	assert.Equal(t, uint32(19), svc.AvailableCount(1, 1))
	assert.Equal(t, 1, svc.Bookings())
}

func TestReserve_OverlapBatch(t *testing.T) {
	svc := newLinkedService(t)

	_, err := svc.Reserve(1, 1, []string{"a1", "a2", "a3"})
	require.NoError(t, err)

	// a3 overlaps; the whole batch fails and a4 stays free.
	_, err = svc.Reserve(1, 1, []string{"a3", "a4"})
	assert.ErrorIs(t, err, ErrSeatsUnavailable)
	assert.Equal(t, uint32(17), svc.AvailableCount(1, 1))

	b, err := svc.Reserve(1, 1, []string{"a4"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), b.ID)
	assert.Equal(t, uint32(16), svc.AvailableCount(1, 1))
}

func TestReserve_ExhaustiveFill(t *testing.T) {
	svc := newLinkedService(t)

	for bit := 0; bit < seat.MaxSeats; bit++ {
		_, err := svc.Reserve(1, 1, []string{seat.FormatSeatID(bit)})
		require.NoError(t, err, "seat %s", seat.FormatSeatID(bit))
	}
	assert.Equal(t, uint32(0), svc.AvailableCount(1, 1))
	assert.Equal(t, 100.0, svc.OccupancyPercent(1, 1))

	_, err := svc.Reserve(1, 1, []string{"a1"})
	assert.ErrorIs(t, err, ErrSeatsUnavailable)
	_, err = svc.Reserve(1, 1, []string{"a7", "a13"})
	assert.ErrorIs(t, err, ErrSeatsUnavailable)
	assert.Equal(t, seat.MaxSeats, svc.Bookings())
}

func TestReserve_ValidationFailuresHaveNoSideEffect(t *testing.T) {
	svc := newLinkedService(t)

	cases := []struct {
		name  string
		seats []string
		want  error
	}{
		{"out of range", []string{"a21"}, ErrInvalidSeat},
		{"wrong letter", []string{"b1"}, ErrInvalidSeat},
		{"leading zero", []string{"a01"}, ErrInvalidSeat},
		{"one bad in batch", []string{"a1", "a99"}, ErrInvalidSeat},
		{"empty list", nil, ErrEmptySeats},
	}
	for _, tc := range cases {
		_, err := svc.Reserve(1, 1, tc.seats)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	// Nothing was touched: the next valid reservation gets booking id 1.
	assert.Equal(t, uint32(seat.MaxSeats), svc.AvailableCount(1, 1))
	b, err := svc.Reserve(1, 1, []string{"a1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), b.ID)
}

func TestReserve_UnknownOrUnlinkedPairs(t *testing.T) {
	svc := NewService()
	svc.AddMovie(1, "Oppenheimer")
	svc.AddTheater(1, "VOX")
	svc.AddTheater(2, "Novo")
	require.True(t, svc.Link(1, 1))

	_, err := svc.Reserve(9, 1, []string{"a1"})
	assert.ErrorIs(t, err, ErrUnknownMovie)

	_, err = svc.Reserve(1, 9, []string{"a1"})
	assert.ErrorIs(t, err, ErrUnknownTheater)

	_, err = svc.Reserve(1, 2, []string{"a1"})
	assert.ErrorIs(t, err, ErrNotLinked)

	assert.Equal(t, 0, svc.Bookings())
}

func TestReserve_CaseInsensitiveSeats(t *testing.T) {
	svc := newLinkedService(t)

	_, err := svc.Reserve(1, 1, []string{"A5"})
	require.NoError(t, err)

	// "a5" and "A5" are the same seat.
	_, err = svc.Reserve(1, 1, []string{"a5"})
	assert.ErrorIs(t, err, ErrSeatsUnavailable)
}

func TestReads_SynthesizeFullyFreeWithoutState(t *testing.T) {
	svc := newLinkedService(t)

	seats := svc.AvailableSeats(1, 1)
	require.Len(t, seats, seat.MaxSeats)
	assert.Equal(t, "a1", seats[0])
	assert.Equal(t, "a20", seats[len(seats)-1])
	assert.Equal(t, uint32(seat.MaxSeats), svc.AvailableCount(1, 1))
	assert.Equal(t, 0.0, svc.OccupancyPercent(1, 1))

	// Even a completely unknown pair reads as fully free.
	assert.Equal(t, uint32(seat.MaxSeats), svc.AvailableCount(42, 42))
}

func TestReserve_ScreeningsAreIndependent(t *testing.T) {
	svc := NewService()
	svc.AddMovie(1, "Dune: Part Two")
	svc.AddMovie(2, "Oppenheimer")
	svc.AddTheater(1, "VOX")
	require.True(t, svc.Link(1, 1))
	require.True(t, svc.Link(2, 1))

	_, err := svc.Reserve(1, 1, []string{"a1"})
	require.NoError(t, err)

	// Same seat, different screening: independent occupancy word.
	_, err = svc.Reserve(2, 1, []string{"a1"})
	require.NoError(t, err)

	assert.Equal(t, uint32(19), svc.AvailableCount(1, 1))
	assert.Equal(t, uint32(19), svc.AvailableCount(2, 1))
}

func TestReserve_ThousandGoroutinesSameSeat(t *testing.T) {
	svc := newLinkedService(t)

	const goroutines = 1000
	bookings := make([]*model.Booking, goroutines)
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			if b, err := svc.Reserve(1, 1, []string{"a1"}); err == nil {
				bookings[i] = b
			}
		}(i)
	}
	start.Done()
	done.Wait()

	won := 0
	for _, b := range bookings {
		if b != nil {
			won++
			assert.Equal(t, uint64(1), b.ID)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, uint32(19), svc.AvailableCount(1, 1))
	assert.Equal(t, 1, svc.Bookings())
}

func TestReserve_ThousandGoroutinesRotatingSeats(t *testing.T) {
	svc := newLinkedService(t)

	const goroutines = 1000
	var mu sync.Mutex
	reserved := make(map[string]int)
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		id := seat.FormatSeatID(i % seat.MaxSeats)
		go func(id string) {
			defer done.Done()
			start.Wait()
			if b, err := svc.Reserve(1, 1, []string{id}); err == nil {
				mu.Lock()
				reserved[b.Seats[0]]++
				mu.Unlock()
			}
		}(id)
	}
	start.Done()
	done.Wait()

	// Exactly the full row, each seat won once.
	require.Len(t, reserved, seat.MaxSeats)
	for bit := 0; bit < seat.MaxSeats; bit++ {
		assert.Equal(t, 1, reserved[seat.FormatSeatID(bit)])
	}
	assert.Equal(t, uint32(0), svc.AvailableCount(1, 1))
	assert.Equal(t, seat.MaxSeats, svc.Bookings())
}

func TestReserve_BookingIDsDenseUnderConcurrency(t *testing.T) {
	svc := newLinkedService(t)

	// Twenty goroutines, each after a distinct seat: all succeed, and the
	// ids they get must be exactly {1..20} with no gap and no duplicate.
	var done sync.WaitGroup
	ids := make([]uint64, seat.MaxSeats)
	for bit := 0; bit < seat.MaxSeats; bit++ {
		done.Add(1)
		go func(bit int) {
			defer done.Done()
			b, err := svc.Reserve(1, 1, []string{seat.FormatSeatID(bit)})
			if assert.NoError(t, err) {
				ids[bit] = b.ID
			}
		}(bit)
	}
	done.Wait()

	seen := make(map[uint64]bool)
	for _, id := range ids {
		require.GreaterOrEqual(t, id, uint64(1))
		require.LessOrEqual(t, id, uint64(seat.MaxSeats))
		require.False(t, seen[id], "duplicate booking id %d", id)
		seen[id] = true
	}

	// Every id resolves through the log.
	for id := uint64(1); id <= seat.MaxSeats; id++ {
		b, ok := svc.Booking(id)
		require.True(t, ok)
		assert.Equal(t, id, b.ID)
	}
}

func TestBooking_LookupUnknownID(t *testing.T) {
	svc := newLinkedService(t)
	_, ok := svc.Booking(1)
	assert.False(t, ok)

	b, err := svc.Reserve(1, 1, []string{"a1", "a2"})
	require.NoError(t, err)

	got, ok := svc.Booking(b.ID)
	require.True(t, ok)
	assert.Equal(t, uint32(1), got.MovieID)
	assert.Equal(t, uint32(1), got.TheaterID)
	assert.Equal(t, []string{"a1", "a2"}, got.Seats)
}

func TestReserve_DoesNotAliasCallerSlice(t *testing.T) {
	svc := newLinkedService(t)

	seats := []string{"a1"}
	b, err := svc.Reserve(1, 1, seats)
	require.NoError(t, err)

	seats[0] = "mutated"
	assert.Equal(t, "a1", b.Seats[0])
}
