package app

import (
	"errors"
	"net/http"

	"movie-booking/api"
	"movie-booking/internal/domain"
)

func (app *application) GetFoodItems(w http.ResponseWriter, r *http.Request) {
	var resp []api.FoodItemResponse

	if !app.cacheGet(r.Context(), foodCacheKey, &resp) {
		items, err := app.foodRepo.GetAll(r.Context())
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		resp = make([]api.FoodItemResponse, 0, len(items))
		for i := range items {
			resp = append(resp, toFoodItemResponse(&items[i]))
		}

		app.cacheSet(r.Context(), foodCacheKey, resp)
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateFoodItem(w http.ResponseWriter, r *http.Request) {
	var req api.FoodItemRequest

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

	item := &domain.FoodItem{
		Name:  req.Name,
		Price: req.Price,
	}

	err = app.foodRepo.Create(r.Context(), item)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.cacheInvalidate(r.Context(), foodCacheKey)

	err = app.writeJSON(w, http.StatusCreated, toFoodItemResponse(item), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateFoodItem(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.FoodItemRequest

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

	item := &domain.FoodItem{
		ID:    id,
		Name:  req.Name,
		Price: req.Price,
	}

	err = app.foodRepo.Update(r.Context(), item)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.cacheInvalidate(r.Context(), foodCacheKey)

	err = app.writeJSON(w, http.StatusOK, toFoodItemResponse(item), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteFoodItem(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.foodRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.cacheInvalidate(r.Context(), foodCacheKey)

	w.WriteHeader(http.StatusNoContent)
}

func toFoodItemResponse(item *domain.FoodItem) api.FoodItemResponse {
	return api.FoodItemResponse{
		Id:    item.ID,
		Name:  item.Name,
		Price: item.Price,
	}
}
