package app

import (
	"context"
	"errors"
	"net/http"

	"movie-booking/api"
	"movie-booking/internal/domain"
)

// CreateBooking reserves seats and food for the authenticated user. The total
// is computed server-side inside the booking transaction, so nothing the
// client sends can influence the amount charged.
func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	claims := mustGetClaims(r)

	var req api.CreateBookingRequest

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

	booking := &domain.Booking{
		UserID: claims.IdentityID,
		ShowID: req.ShowId,
		Seats:  req.Seats,
	}

	for _, item := range req.FoodItems {
		booking.FoodItems = append(booking.FoodItems, domain.FoodSelection{
			FoodID:   item.FoodId,
			Quantity: item.Quantity,
		})
	}

	err = app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShowNotFound), errors.Is(err, domain.ErrFoodItemNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.background(func() {
		// The request context is gone by the time this runs.
		identity, err := app.userRepo.GetById(context.Background(), booking.UserID)
		if err != nil {
			app.logger.Error("failed to look up user for booking confirmation", "user_id", booking.UserID, "error", err)
			return
		}

		data := map[string]any{
			"name":        identity.Name,
			"bookingID":   booking.ID,
			"seats":       booking.Seats,
			"totalAmount": booking.TotalAmount.String(),
		}

		err = app.mailer.Send(identity.Email, "booking_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send booking confirmation email", "recipient", identity.Email, "error", err)
		}
	})

	resp := api.BookingResponse{
		Id:          booking.ID,
		ShowId:      booking.ShowID,
		Seats:       booking.Seats,
		TotalAmount: booking.TotalAmount,
		BookingDate: booking.BookingDate,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	claims := mustGetClaims(r)

	bookings, err := app.bookingRepo.GetAllByUserId(r.Context(), claims.IdentityID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingResponse(&bookings[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBookingLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := app.bookingRepo.GetLogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingLogResponses(logs), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetUserBookingLogs(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDParam(r, "userId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	logs, err := app.bookingRepo.GetLogsByUserId(r.Context(), userID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingLogResponses(logs), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(detail *domain.BookingDetail) api.BookingResponse {
	return api.BookingResponse{
		Id:          detail.Booking.ID,
		ShowId:      detail.Booking.ShowID,
		Seats:       detail.Booking.Seats,
		TotalAmount: detail.TotalAmount,
		BookingDate: detail.BookingDate,
		Show: &api.ShowResponse{
			Id:        detail.Show.ID,
			MovieId:   detail.Show.MovieID,
			TheaterId: detail.Show.TheaterID,
			ShowTime:  detail.Show.ShowTime,
			Price:     detail.Show.Price,
			Movie: &api.MovieResponse{
				Id:       detail.Show.MovieID,
				Title:    detail.MovieTitle,
				ImageUrl: detail.ImageUrl,
			},
			Theater: &api.TheaterInfo{
				Name:     detail.TheaterName,
				Location: detail.Location,
			},
		},
	}
}

func toBookingLogResponses(logs []domain.BookingLog) []api.BookingLogResponse {
	resp := make([]api.BookingLogResponse, 0, len(logs))
	for _, entry := range logs {
		resp = append(resp, api.BookingLogResponse{
			Id:        entry.ID,
			BookingId: entry.BookingID,
			UserId:    entry.UserID,
			Status:    entry.Status,
			ChangedAt: entry.ChangedAt,
		})
	}
	return resp
}
