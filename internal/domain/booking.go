package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Booking is only ever created through BookingRepository.Create, which runs
// the whole multi-row insert in a single transaction and fills ID,
// TotalAmount and BookingDate on success.
type Booking struct {
	ID          int
	UserID      int
	ShowID      int
	Seats       []string
	FoodItems   []FoodSelection
	TotalAmount decimal.Decimal
	BookingDate time.Time
}

// FoodSelection is the client's food pick: which item and how many.
type FoodSelection struct {
	FoodID   int
	Quantity int
}

// FoodLine is a priced selection, resolved against the food table inside the
// booking transaction.
type FoodLine struct {
	FoodID   int
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// CalculateTotal derives the booking total: show price per seat plus the food
// subtotal. The total is never taken from the client.
func CalculateTotal(showPrice decimal.Decimal, seatCount int, lines []FoodLine) decimal.Decimal {
	total := showPrice.Mul(decimal.NewFromInt(int64(seatCount)))

	for _, line := range lines {
		lineTotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(lineTotal)
	}

	return total
}

// BookingDetail is a booking joined with its show, movie and theater.
type BookingDetail struct {
	Booking
	Show        Show
	MovieTitle  string
	ImageUrl    string
	TheaterName string
	Location    string
}

type BookingLog struct {
	ID        int
	BookingID int
	UserID    int
	Status    string
	ChangedAt time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetAllByUserId(ctx context.Context, userID int) ([]BookingDetail, error)
	GetLogs(ctx context.Context) ([]BookingLog, error)
	GetLogsByUserId(ctx context.Context, userID int) ([]BookingLog, error)
}
