package booking

import (
	"sync"
	"sync/atomic"

	"github.com/iliyamo/movie-seat-booking/internal/model"
)

// Log is the append-only archive of successful reservations. Booking ids
// are dense on 1..N: AllocateID is called only after the seats were
// already won by the CAS, so a failed reservation never consumes an id
// and no id is ever skipped.
type Log struct {
	nextID   atomic.Uint64
	mu       sync.RWMutex
	bookings map[uint64]*model.Booking
}

// NewLog returns an empty log whose first allocated id will be 1.
func NewLog() *Log {
	l := &Log{bookings: make(map[uint64]*model.Booking)}
	l.nextID.Store(1)
	return l
}

// AllocateID hands out the next booking id. The fetch-add establishes no
// cross-goroutine ordering of its own; bookings are ordered by the seat
// CAS that precedes allocation, not by comparing ids.
func (l *Log) AllocateID() uint64 {
	return l.nextID.Add(1) - 1
}

// Append stores a finished booking record. Records are immutable and are
// never removed.
func (l *Log) Append(b *model.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings[b.ID] = b
}

// Lookup returns the booking with the given id.
func (l *Log) Lookup(id uint64) (*model.Booking, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.bookings[id]
	return b, ok
}

// Len returns the number of recorded bookings.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}
