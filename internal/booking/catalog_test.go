package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-seat-booking/internal/model"
)

func TestCatalog_LinkRequiresBothSides(t *testing.T) {
	c := NewCatalog()
	c.AddMovie(&model.Movie{ID: 1, Title: "Dune: Part Two"})

	assert.False(t, c.Link(1, 7), "unknown theater")
	assert.False(t, c.Link(9, 7), "both unknown")

	c.AddTheater(&model.Theater{ID: 7, Name: "Reel Cinemas"})
	assert.True(t, c.Link(1, 7))
	assert.True(t, c.IsLinked(1, 7))
	assert.False(t, c.IsLinked(7, 1))
}

func TestCatalog_LinkDeduplicates(t *testing.T) {
	c := NewCatalog()
	c.AddMovie(&model.Movie{ID: 1, Title: "Oppenheimer"})
	c.AddTheater(&model.Theater{ID: 1, Name: "VOX"})
	c.AddTheater(&model.Theater{ID: 2, Name: "Novo"})

	require.True(t, c.Link(1, 1))
	require.True(t, c.Link(1, 2))
	require.True(t, c.Link(1, 1)) // repeat link is a no-op

	theaters := c.TheatersFor(1)
	require.Len(t, theaters, 2)
	// Insertion order preserved.
	assert.Equal(t, uint32(1), theaters[0].ID)
	assert.Equal(t, uint32(2), theaters[1].ID)
}

func TestCatalog_AllMoviesSortedByID(t *testing.T) {
	c := NewCatalog()
	c.AddMovie(&model.Movie{ID: 3, Title: "c"})
	c.AddMovie(&model.Movie{ID: 1, Title: "a"})
	c.AddMovie(&model.Movie{ID: 2, Title: "b"})

	movies := c.AllMovies()
	require.Len(t, movies, 3)
	assert.Equal(t, uint32(1), movies[0].ID)
	assert.Equal(t, uint32(2), movies[1].ID)
	assert.Equal(t, uint32(3), movies[2].ID)
}

func TestCatalog_ReAddReplaces(t *testing.T) {
	c := NewCatalog()
	c.AddMovie(&model.Movie{ID: 1, Title: "Working Title"})
	c.AddTheater(&model.Theater{ID: 1, Name: "VOX"})
	require.True(t, c.Link(1, 1))

	c.AddMovie(&model.Movie{ID: 1, Title: "Final Title"})

	m, ok := c.Movie(1)
	require.True(t, ok)
	assert.Equal(t, "Final Title", m.Title)
	// Links key on the id, so the replacement keeps the screening linked.
	assert.True(t, c.IsLinked(1, 1))
}

func TestCatalog_TheatersForFiltersUnknown(t *testing.T) {
	c := NewCatalog()
	assert.Empty(t, c.TheatersFor(42))

	c.AddMovie(&model.Movie{ID: 1, Title: "Dune: Part Two"})
	assert.Empty(t, c.TheatersFor(1))
}

func TestCatalog_VerifyLinked(t *testing.T) {
	c := NewCatalog()
	assert.ErrorIs(t, c.VerifyLinked(1, 1), ErrUnknownMovie)

	c.AddMovie(&model.Movie{ID: 1, Title: "Oppenheimer"})
	assert.ErrorIs(t, c.VerifyLinked(1, 1), ErrUnknownTheater)

	c.AddTheater(&model.Theater{ID: 1, Name: "VOX"})
	assert.ErrorIs(t, c.VerifyLinked(1, 1), ErrNotLinked)

	require.True(t, c.Link(1, 1))
	assert.NoError(t, c.VerifyLinked(1, 1))
}
