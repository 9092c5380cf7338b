package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Show struct {
	ID        int
	MovieID   int
	TheaterID int
	ShowTime  time.Time
	Price     decimal.Decimal
}

// ShowDetail is a show joined with its movie and theater, the shape the
// catalog endpoints return.
type ShowDetail struct {
	Show
	Movie   Movie
	Theater Theater
}

type ShowRepository interface {
	GetAll(ctx context.Context) ([]ShowDetail, error)
	GetById(ctx context.Context, id int) (*ShowDetail, error)
	GetAllByMovieId(ctx context.Context, movieID int) ([]ShowDetail, error)
	GetAllByTheaterId(ctx context.Context, theaterID int) ([]ShowDetail, error)
	Create(ctx context.Context, show *Show) error
	Delete(ctx context.Context, id int) error
}
