package app

import (
	"errors"
	"net/http"

	"movie-booking/api"
	"movie-booking/internal/domain"
)

func (app *application) GetMovies(w http.ResponseWriter, r *http.Request) {
	var resp []api.MovieResponse

	if !app.cacheGet(r.Context(), moviesCacheKey, &resp) {
		movies, err := app.movieRepo.GetAll(r.Context())
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		resp = make([]api.MovieResponse, 0, len(movies))
		for i := range movies {
			resp = append(resp, toMovieResponse(&movies[i]))
		}

		app.cacheSet(r.Context(), moviesCacheKey, resp)
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req api.MovieRequest

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

	movie := &domain.Movie{
		Title:       req.Title,
		Duration:    req.Duration,
		Genre:       req.Genre,
		Description: req.Description,
		ImageUrl:    req.ImageUrl,
		ReleaseDate: req.ReleaseDate,
	}

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.cacheInvalidate(r.Context(), moviesCacheKey)

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.MovieRequest

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

	movie := &domain.Movie{
		ID:          id,
		Title:       req.Title,
		Duration:    req.Duration,
		Genre:       req.Genre,
		Description: req.Description,
		ImageUrl:    req.ImageUrl,
		ReleaseDate: req.ReleaseDate,
	}

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.cacheInvalidate(r.Context(), moviesCacheKey)

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.cacheInvalidate(r.Context(), moviesCacheKey)

	w.WriteHeader(http.StatusNoContent)
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:          movie.ID,
		Title:       movie.Title,
		Duration:    movie.Duration,
		Genre:       movie.Genre,
		Description: movie.Description,
		ImageUrl:    movie.ImageUrl,
		ReleaseDate: movie.ReleaseDate,
	}
}
