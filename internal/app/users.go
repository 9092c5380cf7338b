package app

import (
	"errors"
	"net/http"

	"movie-booking/internal/domain"
)

func (app *application) GetCurrentIdentity(w http.ResponseWriter, r *http.Request) {
	claims := mustGetClaims(r)

	identity, err := app.identityRepo(claims.Role).GetById(r.Context(), claims.IdentityID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toIdentityResponse(identity), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// identityRepo maps a token role to the repository of its namespace.
func (app *application) identityRepo(role domain.Role) domain.IdentityRepository {
	switch role {
	case domain.RoleAdmin:
		return app.adminRepo
	case domain.RoleOwner:
		return app.ownerRepo
	default:
		return app.userRepo
	}
}
