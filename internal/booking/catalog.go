package booking

import (
	"sort"
	"sync"

	"github.com/iliyamo/movie-seat-booking/internal/model"
)

// Catalog holds the movies, the theaters and the movie→theater linkage.
// A single readers-preferred mutex guards all three maps together: browse
// traffic takes the shared side, adds and links are rare and take the
// exclusive side. Returned records are immutable, so handing out the
// stored pointers after the lock is released is safe.
type Catalog struct {
	mu            sync.RWMutex
	movies        map[uint32]*model.Movie
	theaters      map[uint32]*model.Theater
	movieTheaters map[uint32][]uint32 // theater ids per movie, insertion order
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		movies:        make(map[uint32]*model.Movie),
		theaters:      make(map[uint32]*model.Theater),
		movieTheaters: make(map[uint32][]uint32),
	}
}

// AddMovie registers a movie. Re-adding an existing id replaces the
// record; links and screening states key on the id alone, so nothing is
// stranded by the swap.
func (c *Catalog) AddMovie(m *model.Movie) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movies[m.ID] = m
}

// AddTheater registers a theater, replacing any record with the same id.
func (c *Catalog) AddTheater(t *model.Theater) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.theaters[t.ID] = t
}

// Link records that movie is shown in theater. It returns false when
// either id is unknown. Linking the same pair twice is a no-op, so
// TheatersFor never lists a theater more than once.
func (c *Catalog) Link(movieID, theaterID uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.movies[movieID]; !ok {
		return false
	}
	if _, ok := c.theaters[theaterID]; !ok {
		return false
	}
	for _, tid := range c.movieTheaters[movieID] {
		if tid == theaterID {
			return true
		}
	}
	c.movieTheaters[movieID] = append(c.movieTheaters[movieID], theaterID)
	return true
}

// Movie returns the movie with the given id.
func (c *Catalog) Movie(id uint32) (*model.Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.movies[id]
	return m, ok
}

// Theater returns the theater with the given id.
func (c *Catalog) Theater(id uint32) (*model.Theater, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.theaters[id]
	return t, ok
}

// AllMovies returns every movie sorted by id.
func (c *Catalog) AllMovies() []*model.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*model.Movie, 0, len(c.movies))
	for _, m := range c.movies {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TheatersFor returns the theaters showing the movie in the order the
// links were recorded, filtered to currently-known theaters.
func (c *Catalog) TheatersFor(movieID uint32) []*model.Theater {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := c.movieTheaters[movieID]
	out := make([]*model.Theater, 0, len(ids))
	for _, tid := range ids {
		if t, ok := c.theaters[tid]; ok {
			out = append(out, t)
		}
	}
	return out
}

// IsLinked reports whether the movie is shown in the theater.
func (c *Catalog) IsLinked(movieID, theaterID uint32) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, tid := range c.movieTheaters[movieID] {
		if tid == theaterID {
			return true
		}
	}
	return false
}

// VerifyLinked checks under one shared acquisition that both ids exist
// and that the pair is linked. It returns ErrUnknownMovie,
// ErrUnknownTheater or ErrNotLinked, and nil when a reservation against
// the pair is permitted.
func (c *Catalog) VerifyLinked(movieID, theaterID uint32) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.movies[movieID]; !ok {
		return ErrUnknownMovie
	}
	if _, ok := c.theaters[theaterID]; !ok {
		return ErrUnknownTheater
	}
	for _, tid := range c.movieTheaters[movieID] {
		if tid == theaterID {
			return nil
		}
	}
	return ErrNotLinked
}
