package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-booking/api"
	"movie-booking/internal/domain"
	"movie-booking/internal/mocks"
)

func TestCreateTheater(t *testing.T) {
	app := newTestApplication(t)

	var created *domain.Theater
	app.theaterRepo = &mocks.MockTheaterRepo{
		CreateFunc: func(ctx context.Context, theater *domain.Theater) error {
			theater.ID = 11
			theater.Status = domain.TheaterPending
			created = theater
			return nil
		},
	}

	body := api.TheaterRequest{Name: "Grand Cinema", Location: "Downtown", Capacity: 120}

	token := issueTestToken(t, 8, domain.RoleOwner)
	rr := executeAuthenticatedRequest(t, app.routes(), http.MethodPost, "/theaters", body, token)

	require.Equal(t, http.StatusCreated, rr.Code)

	resp := decodeResponse[api.TheaterResponse](t, rr)
	assert.Equal(t, 11, resp.Id)
	assert.Equal(t, string(domain.TheaterPending), resp.Status)

	// The owner comes from the token, not from the request body.
	require.NotNil(t, created)
	assert.Equal(t, 8, created.OwnerID)
}

func TestGetOwnedTheaters(t *testing.T) {
	app := newTestApplication(t)
	app.theaterRepo = &mocks.MockTheaterRepo{
		GetAllByOwnerIdFunc: func(ctx context.Context, ownerID int) ([]domain.Theater, error) {
			require.Equal(t, 8, ownerID)
			return []domain.Theater{
				{ID: 11, Name: "Grand Cinema", OwnerID: 8, Status: domain.TheaterApproved},
			}, nil
		},
	}

	token := issueTestToken(t, 8, domain.RoleOwner)
	rr := executeAuthenticatedRequest(t, app.routes(), http.MethodGet, "/theaters/owned", nil, token)

	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeResponse[[]api.TheaterResponse](t, rr)
	require.Len(t, resp, 1)
	assert.Equal(t, "approved", resp[0].Status)
}

func TestUpdateTheaterStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		repoErr    error
		wantStatus int
	}{
		{
			name:       "approve pending theater",
			status:     "approved",
			wantStatus: http.StatusOK,
		},
		{
			name:       "reject pending theater",
			status:     "rejected",
			wantStatus: http.StatusOK,
		},
		{
			name:       "already decided",
			status:     "rejected",
			repoErr:    domain.ErrStatusTransition,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown theater",
			status:     "approved",
			repoErr:    domain.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(t)
			app.theaterRepo = &mocks.MockTheaterRepo{
				UpdateStatusFunc: func(ctx context.Context, id int, status domain.TheaterStatus) (*domain.Theater, error) {
					if tt.repoErr != nil {
						return nil, tt.repoErr
					}
					return &domain.Theater{ID: id, Name: "Grand Cinema", Status: status}, nil
				},
			}

			body := api.TheaterStatusRequest{Status: tt.status}

			token := issueTestToken(t, 1, domain.RoleAdmin)
			rr := executeAuthenticatedRequest(t, app.routes(), http.MethodPatch, "/theaters/11/status", body, token)

			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusOK {
				resp := decodeResponse[api.TheaterResponse](t, rr)
				assert.Equal(t, tt.status, resp.Status)
			}
		})
	}
}

func TestUpdateTheaterStatusValidation(t *testing.T) {
	app := newTestApplication(t)

	body := api.TheaterStatusRequest{Status: "pending"}

	token := issueTestToken(t, 1, domain.RoleAdmin)
	rr := executeAuthenticatedRequest(t, app.routes(), http.MethodPatch, "/theaters/11/status", body, token)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}
