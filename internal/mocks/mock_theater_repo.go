package mocks

import (
	"context"

	"movie-booking/internal/domain"
)

type MockTheaterRepo struct {
	domain.TheaterRepository
	GetAllFunc          func(ctx context.Context) ([]domain.Theater, error)
	GetByIdFunc         func(ctx context.Context, id int) (*domain.Theater, error)
	GetAllByOwnerIdFunc func(ctx context.Context, ownerID int) ([]domain.Theater, error)
	CreateFunc          func(ctx context.Context, theater *domain.Theater) error
	UpdateStatusFunc    func(ctx context.Context, id int, status domain.TheaterStatus) (*domain.Theater, error)
}

func (m *MockTheaterRepo) GetAll(ctx context.Context) ([]domain.Theater, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockTheaterRepo) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockTheaterRepo) GetAllByOwnerId(ctx context.Context, ownerID int) ([]domain.Theater, error) {
	return m.GetAllByOwnerIdFunc(ctx, ownerID)
}

func (m *MockTheaterRepo) Create(ctx context.Context, theater *domain.Theater) error {
	return m.CreateFunc(ctx, theater)
}

func (m *MockTheaterRepo) UpdateStatus(
	ctx context.Context,
	id int,
	status domain.TheaterStatus) (*domain.Theater, error) {

	return m.UpdateStatusFunc(ctx, id, status)
}
