package app

import (
	"fmt"
	"net/http"
	"strings"

	"movie-booking/internal/auth"
	"movie-booking/internal/domain"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// authenticate verifies a bearer token when one is presented and stores its
// claims in the request context. Requests without an Authorization header
// pass through anonymously; route groups decide whether that is acceptable.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		authorizationHeader := r.Header.Get("Authorization")
		if authorizationHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		headerParts := strings.Split(authorizationHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			app.invalidAuthenticationTokenResponse(w, r)
			return
		}

		claims, err := auth.VerifyToken([]byte(app.config.jwt.secret), headerParts[1])
		if err != nil {
			app.invalidAuthenticationTokenResponse(w, r)
			return
		}

		next.ServeHTTP(w, contextSetClaims(r, claims))
	})
}

func (app *application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := contextGetClaims(r); !ok {
			app.authenticationRequiredResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireRole is the single authorization policy point: every role-gated
// route group declares its required role here instead of comparing role
// strings in handlers.
func (app *application) requireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := contextGetClaims(r)
			if !ok {
				app.authenticationRequiredResponse(w, r)
				return
			}

			if claims.Role != role {
				app.notPermittedResponse(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
