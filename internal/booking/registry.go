package booking

import (
	"sync"

	"github.com/iliyamo/movie-seat-booking/internal/seat"
)

// screenKey identifies one screening, i.e. one (movie, theater) pair.
type screenKey struct {
	movieID   uint32
	theaterID uint32
}

// Registry owns the per-screening occupancy bitmasks. A state is created
// lazily the first time a reservation is attempted against its pair and
// then lives for the process lifetime, so a handle returned here stays
// valid after the registry lock is released. The mutex protects only the
// map; reserving seats on a returned *seat.Bitmask never takes it.
type Registry struct {
	mu     sync.RWMutex
	states map[screenKey]*seat.Bitmask
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{states: make(map[screenKey]*seat.Bitmask)}
}

// Lookup returns the state for the pair, or nil when no reservation has
// ever been attempted against it. Read-side only; concurrent lookups do
// not serialize behind each other.
func (r *Registry) Lookup(movieID, theaterID uint32) *seat.Bitmask {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[screenKey{movieID, theaterID}]
}

// GetOrCreate returns the state for the pair, creating it on first use.
// The optimistic read-side check runs first; on a miss the exclusive lock
// is taken and the map re-checked, so two racing callers always settle on
// the same state.
func (r *Registry) GetOrCreate(movieID, theaterID uint32) *seat.Bitmask {
	key := screenKey{movieID, theaterID}

	r.mu.RLock()
	state := r.states[key]
	r.mu.RUnlock()
	if state != nil {
		return state
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if state := r.states[key]; state != nil {
		return state
	}
	state = &seat.Bitmask{}
	r.states[key] = state
	return state
}
