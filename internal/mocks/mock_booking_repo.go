package mocks

import (
	"context"

	"movie-booking/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc          func(ctx context.Context, booking *domain.Booking) error
	GetAllByUserIdFunc  func(ctx context.Context, userID int) ([]domain.BookingDetail, error)
	GetLogsFunc         func(ctx context.Context) ([]domain.BookingLog, error)
	GetLogsByUserIdFunc func(ctx context.Context, userID int) ([]domain.BookingLog, error)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) GetAllByUserId(ctx context.Context, userID int) ([]domain.BookingDetail, error) {
	return m.GetAllByUserIdFunc(ctx, userID)
}

func (m *MockBookingRepo) GetLogs(ctx context.Context) ([]domain.BookingLog, error) {
	return m.GetLogsFunc(ctx)
}

func (m *MockBookingRepo) GetLogsByUserId(ctx context.Context, userID int) ([]domain.BookingLog, error) {
	return m.GetLogsByUserIdFunc(ctx, userID)
}
