package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-booking/api"
	"movie-booking/internal/domain"
	"movie-booking/internal/mocks"
)

func testShowDetail() domain.ShowDetail {
	return domain.ShowDetail{
		Show: domain.Show{
			ID:        5,
			MovieID:   1,
			TheaterID: 2,
			ShowTime:  time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
			Price:     decimal.NewFromInt(250),
		},
		Movie:   domain.Movie{ID: 1, Title: "Inception"},
		Theater: domain.Theater{ID: 2, Name: "Grand Cinema", Location: "Downtown"},
	}
}

func TestGetShow(t *testing.T) {
	app := newTestApplication(t)
	app.showRepo = &mocks.MockShowRepo{
		GetByIdFunc: func(ctx context.Context, id int) (*domain.ShowDetail, error) {
			if id != 5 {
				return nil, domain.ErrRecordNotFound
			}
			detail := testShowDetail()
			return &detail, nil
		},
	}

	t.Run("found", func(t *testing.T) {
		rr := executeRequest(t, app.routes(), http.MethodGet, "/shows/5", nil)

		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeResponse[api.ShowResponse](t, rr)
		assert.Equal(t, 5, resp.Id)
		require.NotNil(t, resp.Movie)
		assert.Equal(t, "Inception", resp.Movie.Title)
		require.NotNil(t, resp.Theater)
		assert.Equal(t, "Grand Cinema", resp.Theater.Name)
	})

	t.Run("not found", func(t *testing.T) {
		rr := executeRequest(t, app.routes(), http.MethodGet, "/shows/99", nil)

		checkErrorResponse(t, rr, http.StatusNotFound, ErrNotFound)
	})
}

func TestGetShowsByMovie(t *testing.T) {
	app := newTestApplication(t)
	app.showRepo = &mocks.MockShowRepo{
		GetAllByMovieIdFunc: func(ctx context.Context, movieID int) ([]domain.ShowDetail, error) {
			require.Equal(t, 1, movieID)
			return []domain.ShowDetail{testShowDetail()}, nil
		},
	}

	rr := executeRequest(t, app.routes(), http.MethodGet, "/shows/movie/1", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeResponse[[]api.ShowResponse](t, rr)
	require.Len(t, resp, 1)
	assert.Equal(t, 1, resp[0].MovieId)
}

func TestGetShowsByTheater(t *testing.T) {
	app := newTestApplication(t)
	app.showRepo = &mocks.MockShowRepo{
		GetAllByTheaterIdFunc: func(ctx context.Context, theaterID int) ([]domain.ShowDetail, error) {
			require.Equal(t, 2, theaterID)
			return []domain.ShowDetail{testShowDetail()}, nil
		},
	}

	rr := executeRequest(t, app.routes(), http.MethodGet, "/theaters/2/shows", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeResponse[[]api.ShowResponse](t, rr)
	require.Len(t, resp, 1)
	assert.Equal(t, 2, resp[0].TheaterId)
}

func TestCreateShow(t *testing.T) {
	body := api.ShowRequest{
		MovieId:   1,
		TheaterId: 2,
		ShowTime:  time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		Price:     decimal.NewFromInt(250),
	}

	token := issueTestToken(t, 1, domain.RoleAdmin)

	t.Run("created", func(t *testing.T) {
		app := newTestApplication(t)
		app.showRepo = &mocks.MockShowRepo{
			CreateFunc: func(ctx context.Context, show *domain.Show) error {
				show.ID = 5
				return nil
			},
		}

		rr := executeAuthenticatedRequest(t, app.routes(), http.MethodPost, "/shows", body, token)

		require.Equal(t, http.StatusCreated, rr.Code)

		resp := decodeResponse[api.ShowResponse](t, rr)
		assert.Equal(t, 5, resp.Id)
		assert.True(t, resp.Price.Equal(decimal.NewFromInt(250)))
	})

	// The repository reports a missing movie or theater reference as a
	// record-not-found error, which the client sees as 404.
	t.Run("unknown movie or theater", func(t *testing.T) {
		app := newTestApplication(t)
		app.showRepo = &mocks.MockShowRepo{
			CreateFunc: func(ctx context.Context, show *domain.Show) error {
				return domain.ErrRecordNotFound
			},
		}

		rr := executeAuthenticatedRequest(t, app.routes(), http.MethodPost, "/shows", body, token)

		checkErrorResponse(t, rr, http.StatusNotFound, ErrNotFound)
	})
}

func TestDeleteShow(t *testing.T) {
	app := newTestApplication(t)
	app.showRepo = &mocks.MockShowRepo{
		DeleteFunc: func(ctx context.Context, id int) error {
			if id != 5 {
				return domain.ErrRecordNotFound
			}
			return nil
		},
	}

	token := issueTestToken(t, 1, domain.RoleAdmin)

	t.Run("found", func(t *testing.T) {
		rr := executeAuthenticatedRequest(t, app.routes(), http.MethodDelete, "/shows/5", nil, token)

		require.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rr := executeAuthenticatedRequest(t, app.routes(), http.MethodDelete, "/shows/99", nil, token)

		checkErrorResponse(t, rr, http.StatusNotFound, ErrNotFound)
	})
}
