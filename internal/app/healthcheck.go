package app

import (
	"net/http"

	"movie-booking/api"
)

func (app *application) Healthcheck(w http.ResponseWriter, r *http.Request) {
	health := api.HealthResponse{
		Status:      "available",
		Environment: app.config.env,
		Version:     version,
	}

	err := app.writeJSON(w, http.StatusOK, health, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
