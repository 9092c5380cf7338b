package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"movie-booking/api"
	"movie-booking/internal/auth"
	"movie-booking/internal/domain"
	"movie-booking/internal/mailer"
	appvalidator "movie-booking/internal/validator"
)

const testJWTSecret = "test-secret-test-secret-test-secret"

func newTestApplication(t *testing.T) *application {
	t.Helper()

	var cfg config
	cfg.env = "test"
	cfg.jwt.secret = testJWTSecret
	cfg.jwt.ttl = time.Hour

	return &application{
		config:    cfg,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator: appvalidator.NewValidator(),
		mailer:    &mailer.MockMailer{},
	}
}

func executeRequest(t *testing.T, handler http.Handler, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, url, reader)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	return rr
}

func issueTestToken(t *testing.T, identityID int, role domain.Role) string {
	t.Helper()

	token, err := auth.IssueToken([]byte(testJWTSecret), identityID, role, time.Hour)
	require.NoError(t, err)

	return token
}

func executeAuthenticatedRequest(t *testing.T, handler http.Handler, method, url string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	return rr
}

func checkErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, wantStatus int, wantMessage string) {
	t.Helper()

	require.Equal(t, wantStatus, rr.Code)

	var resp api.ErrorResponse
	err := json.NewDecoder(rr.Body).Decode(&resp)
	require.NoError(t, err)
	require.Equal(t, wantMessage, resp.Error)
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	err := json.NewDecoder(rr.Body).Decode(&v)
	require.NoError(t, err)

	return v
}

func newIdentityWithPassword(t *testing.T, id int, role domain.Role, email, plaintext string) *domain.Identity {
	t.Helper()

	identity := &domain.Identity{
		ID:    id,
		Role:  role,
		Name:  "Test " + string(role),
		Email: email,
	}

	err := identity.Password.Set(plaintext)
	require.NoError(t, err)

	return identity
}
