package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"movie-booking/internal/auth"
	"movie-booking/internal/domain"
	"movie-booking/internal/mocks"
)

func TestAuthenticationRequired(t *testing.T) {
	app := newTestApplication(t)

	rr := executeRequest(t, app.routes(), http.MethodGet, "/bookings", nil)

	checkErrorResponse(t, rr, http.StatusUnauthorized, ErrMissingToken)
}

func TestInvalidToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: mustIssueWithSecret(t, "some-other-secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(t)

			rr := executeAuthenticatedRequest(t, app.routes(), http.MethodGet, "/bookings", nil, tt.token)

			checkErrorResponse(t, rr, http.StatusUnauthorized, ErrInvalidToken)
		})
	}
}

// Having a valid token is not enough for role-gated routes: a user token must
// not open admin or owner endpoints, and vice versa.
func TestRoleEnforcement(t *testing.T) {
	tests := []struct {
		name   string
		role   domain.Role
		method string
		url    string
	}{
		{name: "user on admin route", role: domain.RoleUser, method: http.MethodPatch, url: "/theaters/1/status"},
		{name: "owner on admin route", role: domain.RoleOwner, method: http.MethodGet, url: "/bookings/logs"},
		{name: "user on owner route", role: domain.RoleUser, method: http.MethodGet, url: "/theaters/owned"},
		{name: "admin on owner route", role: domain.RoleAdmin, method: http.MethodPost, url: "/theaters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(t)

			token := issueTestToken(t, 3, tt.role)
			rr := executeAuthenticatedRequest(t, app.routes(), tt.method, tt.url, nil, token)

			checkErrorResponse(t, rr, http.StatusForbidden, ErrNotPermitted)
		})
	}
}

// Public catalog routes stay readable without any token.
func TestPublicRoutesAnonymousAccess(t *testing.T) {
	app := newTestApplication(t)
	app.movieRepo = &mocks.MockMovieRepo{
		GetAllFunc: func(ctx context.Context) ([]domain.Movie, error) {
			return []domain.Movie{}, nil
		},
	}

	rr := executeRequest(t, app.routes(), http.MethodGet, "/movies", nil)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRecoverPanic(t *testing.T) {
	app := newTestApplication(t)
	app.movieRepo = &mocks.MockMovieRepo{
		GetAllFunc: func(ctx context.Context) ([]domain.Movie, error) {
			panic("boom")
		},
	}

	rr := executeRequest(t, app.routes(), http.MethodGet, "/movies", nil)

	checkErrorResponse(t, rr, http.StatusInternalServerError, ErrInternalServer)
	require.Equal(t, "close", rr.Header().Get("Connection"))
}

func mustIssueWithSecret(t *testing.T, secret string) string {
	t.Helper()

	token, err := auth.IssueToken([]byte(secret), 3, domain.RoleUser, time.Hour)
	require.NoError(t, err)

	return token
}
