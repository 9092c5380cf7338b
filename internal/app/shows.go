package app

import (
	"errors"
	"net/http"

	"movie-booking/api"
	"movie-booking/internal/domain"
)

func (app *application) GetShows(w http.ResponseWriter, r *http.Request) {
	shows, err := app.showRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowResponses(shows), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetShow(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowResponse(show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetShowsByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	shows, err := app.showRepo.GetAllByMovieId(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowResponses(shows), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetShowsByTheater(w http.ResponseWriter, r *http.Request) {
	theaterID, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	shows, err := app.showRepo.GetAllByTheaterId(r.Context(), theaterID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowResponses(shows), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req api.ShowRequest

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

	show := &domain.Show{
		MovieID:   req.MovieId,
		TheaterID: req.TheaterId,
		ShowTime:  req.ShowTime,
		Price:     req.Price,
	}

	err = app.showRepo.Create(r.Context(), show)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.ShowResponse{
		Id:        show.ID,
		MovieId:   show.MovieID,
		TheaterId: show.TheaterID,
		ShowTime:  show.ShowTime,
		Price:     show.Price,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteShow(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.showRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toShowResponse(show *domain.ShowDetail) api.ShowResponse {
	movie := toMovieResponse(&show.Movie)

	return api.ShowResponse{
		Id:        show.ID,
		MovieId:   show.MovieID,
		TheaterId: show.TheaterID,
		ShowTime:  show.ShowTime,
		Price:     show.Price,
		Movie:     &movie,
		Theater: &api.TheaterInfo{
			Name:     show.Theater.Name,
			Location: show.Theater.Location,
		},
	}
}

func toShowResponses(shows []domain.ShowDetail) []api.ShowResponse {
	resp := make([]api.ShowResponse, 0, len(shows))
	for i := range shows {
		resp = append(resp, toShowResponse(&shows[i]))
	}
	return resp
}
