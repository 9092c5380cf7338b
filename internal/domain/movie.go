package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          int
	Title       string
	Duration    int
	Genre       string
	Description string
	ImageUrl    string
	ReleaseDate time.Time
	CreatedAt   time.Time
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
