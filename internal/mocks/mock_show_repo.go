package mocks

import (
	"context"

	"movie-booking/internal/domain"
)

type MockShowRepo struct {
	domain.ShowRepository
	GetAllFunc            func(ctx context.Context) ([]domain.ShowDetail, error)
	GetByIdFunc           func(ctx context.Context, id int) (*domain.ShowDetail, error)
	GetAllByMovieIdFunc   func(ctx context.Context, movieID int) ([]domain.ShowDetail, error)
	GetAllByTheaterIdFunc func(ctx context.Context, theaterID int) ([]domain.ShowDetail, error)
	CreateFunc            func(ctx context.Context, show *domain.Show) error
	DeleteFunc            func(ctx context.Context, id int) error
}

func (m *MockShowRepo) GetAll(ctx context.Context) ([]domain.ShowDetail, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockShowRepo) GetById(ctx context.Context, id int) (*domain.ShowDetail, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowRepo) GetAllByMovieId(ctx context.Context, movieID int) ([]domain.ShowDetail, error) {
	return m.GetAllByMovieIdFunc(ctx, movieID)
}

func (m *MockShowRepo) GetAllByTheaterId(ctx context.Context, theaterID int) ([]domain.ShowDetail, error) {
	return m.GetAllByTheaterIdFunc(ctx, theaterID)
}

func (m *MockShowRepo) Create(ctx context.Context, show *domain.Show) error {
	return m.CreateFunc(ctx, show)
}

func (m *MockShowRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
