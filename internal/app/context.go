package app

import (
	"context"
	"net/http"

	"movie-booking/internal/auth"
)

type contextKey string

const claimsContextKey = contextKey("claims")

func contextSetClaims(r *http.Request, claims auth.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsContextKey, claims)
	return r.WithContext(ctx)
}

func contextGetClaims(r *http.Request) (auth.Claims, bool) {
	claims, ok := r.Context().Value(claimsContextKey).(auth.Claims)
	return claims, ok
}

// mustGetClaims is for handlers behind requireAuthentication, where a missing
// claims value means broken middleware wiring, not a client error.
func mustGetClaims(r *http.Request) auth.Claims {
	claims, ok := contextGetClaims(r)
	if !ok {
		panic("missing claims in request context")
	}

	return claims
}
