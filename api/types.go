// Package api holds the request and response types of the HTTP JSON API.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error     string    `json:"error"`
	RequestId string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Error            string            `json:"error"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

// --- Auth ---

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Contact  string `json:"contact" validate:"required,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type IdentityResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  IdentityResponse `json:"user"`
}

// --- Movies ---

type MovieRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Duration    int       `json:"duration" validate:"required,min=1"`
	Genre       string    `json:"genre" validate:"required,max=50"`
	Description string    `json:"description" validate:"max=2000"`
	ImageUrl    string    `json:"image_url" validate:"omitempty,url"`
	ReleaseDate time.Time `json:"release_date" validate:"required"`
}

type MovieResponse struct {
	Id          int       `json:"id"`
	Title       string    `json:"title"`
	Duration    int       `json:"duration"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	ImageUrl    string    `json:"image_url"`
	ReleaseDate time.Time `json:"release_date"`
}

// --- Theaters ---

type TheaterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"required,max=200"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

type TheaterStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type TheaterResponse struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	OwnerId  int    `json:"owner_id"`
	Status   string `json:"status"`
}

// --- Shows ---

type ShowRequest struct {
	MovieId   int             `json:"movie_id" validate:"required"`
	TheaterId int             `json:"theater_id" validate:"required"`
	ShowTime  time.Time       `json:"show_time" validate:"required"`
	Price     decimal.Decimal `json:"price" validate:"required"`
}

type ShowResponse struct {
	Id        int             `json:"id"`
	MovieId   int             `json:"movie_id"`
	TheaterId int             `json:"theater_id"`
	ShowTime  time.Time       `json:"show_time"`
	Price     decimal.Decimal `json:"price"`
	Movie     *MovieResponse  `json:"movie,omitempty"`
	Theater   *TheaterInfo    `json:"theater,omitempty"`
}

type TheaterInfo struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// --- Food ---

type FoodItemRequest struct {
	Name  string          `json:"name" validate:"required,max=100"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

type FoodItemResponse struct {
	Id    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// --- Bookings ---

type FoodSelectionRequest struct {
	FoodId   int `json:"food_id" validate:"required"`
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type CreateBookingRequest struct {
	ShowId    int                    `json:"show_id" validate:"required"`
	Seats     []string               `json:"seats" validate:"required,min=1,dive,required,max=10"`
	FoodItems []FoodSelectionRequest `json:"food_items" validate:"omitempty,dive"`
}

type BookingResponse struct {
	Id          int             `json:"id"`
	ShowId      int             `json:"show_id"`
	Seats       []string        `json:"seats"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	BookingDate time.Time       `json:"booking_date"`
	Show        *ShowResponse   `json:"show,omitempty"`
}

type BookingLogResponse struct {
	Id        int       `json:"id"`
	BookingId int       `json:"booking_id"`
	UserId    int       `json:"user_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}
