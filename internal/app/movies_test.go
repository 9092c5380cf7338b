package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-booking/api"
	"movie-booking/internal/domain"
	"movie-booking/internal/mocks"
)

func TestGetMovies(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Title: "Inception", Duration: 148, Genre: "Sci-Fi", ReleaseDate: time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Heat", Duration: 170, Genre: "Crime", ReleaseDate: time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC)},
	}

	app := newTestApplication(t)
	app.movieRepo = &mocks.MockMovieRepo{
		GetAllFunc: func(ctx context.Context) ([]domain.Movie, error) {
			return movies, nil
		},
	}

	rr := executeRequest(t, app.routes(), http.MethodGet, "/movies", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeResponse[[]api.MovieResponse](t, rr)
	require.Len(t, resp, 2)
	assert.Equal(t, "Inception", resp[0].Title)
	assert.Equal(t, "Heat", resp[1].Title)
}

func TestGetMoviesCacheMiss(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Title: "Inception", Duration: 148, Genre: "Sci-Fi"},
	}

	want := []api.MovieResponse{toMovieResponse(&movies[0])}
	payload, err := json.Marshal(want)
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(moviesCacheKey).RedisNil()
	mock.ExpectSet(moviesCacheKey, payload, cacheTTL).SetVal("OK")

	app := newTestApplication(t)
	app.redis = rdb
	app.movieRepo = &mocks.MockMovieRepo{
		GetAllFunc: func(ctx context.Context) ([]domain.Movie, error) {
			return movies, nil
		},
	}

	rr := executeRequest(t, app.routes(), http.MethodGet, "/movies", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMoviesCacheHit(t *testing.T) {
	want := []api.MovieResponse{
		{Id: 1, Title: "Inception", Duration: 148, Genre: "Sci-Fi"},
	}
	payload, err := json.Marshal(want)
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(moviesCacheKey).SetVal(string(payload))

	app := newTestApplication(t)
	app.redis = rdb
	app.movieRepo = &mocks.MockMovieRepo{
		GetAllFunc: func(ctx context.Context) ([]domain.Movie, error) {
			t.Fatal("database should not be queried on a cache hit")
			return nil, nil
		},
	}

	rr := executeRequest(t, app.routes(), http.MethodGet, "/movies", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, mock.ExpectationsWereMet())

	resp := decodeResponse[[]api.MovieResponse](t, rr)
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("movies mismatch (-want +got):\n%s", diff)
	}
}

func TestGetMovie(t *testing.T) {
	app := newTestApplication(t)
	app.movieRepo = &mocks.MockMovieRepo{
		GetByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
			if id != 1 {
				return nil, domain.ErrRecordNotFound
			}
			return &domain.Movie{ID: 1, Title: "Inception"}, nil
		},
	}

	t.Run("found", func(t *testing.T) {
		rr := executeRequest(t, app.routes(), http.MethodGet, "/movies/1", nil)

		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeResponse[api.MovieResponse](t, rr)
		assert.Equal(t, "Inception", resp.Title)
	})

	t.Run("not found", func(t *testing.T) {
		rr := executeRequest(t, app.routes(), http.MethodGet, "/movies/99", nil)

		checkErrorResponse(t, rr, http.StatusNotFound, ErrNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		rr := executeRequest(t, app.routes(), http.MethodGet, "/movies/abc", nil)

		checkErrorResponse(t, rr, http.StatusNotFound, ErrNotFound)
	})
}

func TestCreateMovie(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel(moviesCacheKey).SetVal(1)

	app := newTestApplication(t)
	app.redis = rdb
	app.movieRepo = &mocks.MockMovieRepo{
		CreateFunc: func(ctx context.Context, movie *domain.Movie) error {
			movie.ID = 5
			return nil
		},
	}

	body := api.MovieRequest{
		Title:       "Inception",
		Duration:    148,
		Genre:       "Sci-Fi",
		ReleaseDate: time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC),
	}

	token := issueTestToken(t, 1, domain.RoleAdmin)
	rr := executeAuthenticatedRequest(t, app.routes(), http.MethodPost, "/movies", body, token)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NoError(t, mock.ExpectationsWereMet())

	resp := decodeResponse[api.MovieResponse](t, rr)
	assert.Equal(t, 5, resp.Id)
}

func TestUpdateMovie(t *testing.T) {
	app := newTestApplication(t)
	app.movieRepo = &mocks.MockMovieRepo{
		UpdateFunc: func(ctx context.Context, movie *domain.Movie) error {
			if movie.ID != 5 {
				return domain.ErrRecordNotFound
			}
			return nil
		},
	}

	body := api.MovieRequest{
		Title:       "Inception",
		Duration:    148,
		Genre:       "Sci-Fi",
		ReleaseDate: time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC),
	}

	token := issueTestToken(t, 1, domain.RoleAdmin)

	t.Run("found", func(t *testing.T) {
		rr := executeAuthenticatedRequest(t, app.routes(), http.MethodPut, "/movies/5", body, token)

		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rr := executeAuthenticatedRequest(t, app.routes(), http.MethodPut, "/movies/99", body, token)

		checkErrorResponse(t, rr, http.StatusNotFound, ErrNotFound)
	})
}

func TestDeleteMovie(t *testing.T) {
	app := newTestApplication(t)
	app.movieRepo = &mocks.MockMovieRepo{
		DeleteFunc: func(ctx context.Context, id int) error {
			if id != 5 {
				return domain.ErrRecordNotFound
			}
			return nil
		},
	}

	token := issueTestToken(t, 1, domain.RoleAdmin)

	t.Run("found", func(t *testing.T) {
		rr := executeAuthenticatedRequest(t, app.routes(), http.MethodDelete, "/movies/5", nil, token)

		require.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rr := executeAuthenticatedRequest(t, app.routes(), http.MethodDelete, "/movies/99", nil, token)

		checkErrorResponse(t, rr, http.StatusNotFound, ErrNotFound)
	})
}
