package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-seat-booking/internal/booking"
)

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLinkMovie_UnknownIDs(t *testing.T) {
	e := echo.New()
	h := NewCatalogHandler(booking.NewService())

	c, rec := postJSON(e, "/v1/links", `{"movie_id":1,"theater_id":1}`)
	require.NoError(t, h.LinkMovie(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogFlow_AddLinkBrowse(t *testing.T) {
	e := echo.New()
	h := NewCatalogHandler(booking.NewService())

	c, rec := postJSON(e, "/v1/movies", `{"id":2,"title":"Dune: Part Two"}`)
	require.NoError(t, h.AddMovie(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = postJSON(e, "/v1/movies", `{"id":1,"title":"Oppenheimer"}`)
	require.NoError(t, h.AddMovie(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = postJSON(e, "/v1/theaters", `{"id":1,"name":"VOX Cinemas"}`)
	require.NoError(t, h.AddTheater(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = postJSON(e, "/v1/links", `{"movie_id":1,"theater_id":1}`)
	require.NoError(t, h.LinkMovie(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Movies come back sorted by id regardless of insertion order.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/movies", nil), rec)
	require.NoError(t, h.GetMovies(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []struct {
			ID    uint32 `json:"id"`
			Title string `json:"title"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, uint32(1), resp.Items[0].ID)
	assert.Equal(t, "Oppenheimer", resp.Items[0].Title)
	assert.Equal(t, uint32(2), resp.Items[1].ID)

	// Theater listing for the linked movie.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetPath("/v1/movies/:id/theaters")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.GetTheatersForMovie(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "VOX Cinemas")
}

func TestGetMovieOccupancy(t *testing.T) {
	e := echo.New()
	svc := booking.NewService()
	svc.AddMovie(1, "Oppenheimer")
	svc.AddTheater(1, "VOX")
	require.True(t, svc.Link(1, 1))
	_, err := svc.Reserve(1, 1, []string{"a1", "a2"})
	require.NoError(t, err)

	h := NewCatalogHandler(svc)
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetPath("/v1/movies/:id/occupancy")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.GetMovieOccupancy(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []TheaterOccupancy `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, uint32(18), resp.Items[0].AvailableCount)
	assert.InDelta(t, 10.0, resp.Items[0].OccupancyPercent, 1e-9)
}
