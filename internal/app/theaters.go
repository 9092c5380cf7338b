package app

import (
	"errors"
	"net/http"

	"movie-booking/api"
	"movie-booking/internal/domain"
)

func (app *application) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTheaterResponses(theaters), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetTheater(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	theater, err := app.theaterRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTheaterResponse(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CreateTheater registers a theater for the authenticated owner. New theaters
// always start out pending and only an admin can move them on from there.
func (app *application) CreateTheater(w http.ResponseWriter, r *http.Request) {
	claims := mustGetClaims(r)

	var req api.TheaterRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	theater := &domain.Theater{
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
		OwnerID:  claims.IdentityID,
	}

	err = app.theaterRepo.Create(r.Context(), theater)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toTheaterResponse(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetOwnedTheaters(w http.ResponseWriter, r *http.Request) {
	claims := mustGetClaims(r)

	theaters, err := app.theaterRepo.GetAllByOwnerId(r.Context(), claims.IdentityID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTheaterResponses(theaters), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateTheaterStatus(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.TheaterStatusRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	theater, err := app.theaterRepo.UpdateStatus(r.Context(), id, domain.TheaterStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrStatusTransition):
			app.conflictResponse(w, r, "The theater status has already been decided")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTheaterResponse(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toTheaterResponse(theater *domain.Theater) api.TheaterResponse {
	return api.TheaterResponse{
		Id:       theater.ID,
		Name:     theater.Name,
		Location: theater.Location,
		Capacity: theater.Capacity,
		OwnerId:  theater.OwnerID,
		Status:   string(theater.Status),
	}
}

func toTheaterResponses(theaters []domain.Theater) []api.TheaterResponse {
	resp := make([]api.TheaterResponse, 0, len(theaters))
	for i := range theaters {
		resp = append(resp, toTheaterResponse(&theaters[i]))
	}
	return resp
}
