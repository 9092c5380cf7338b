package mocks

import (
	"context"

	"movie-booking/internal/domain"
)

type MockFoodRepo struct {
	domain.FoodRepository
	GetAllFunc func(ctx context.Context) ([]domain.FoodItem, error)
	CreateFunc func(ctx context.Context, item *domain.FoodItem) error
	UpdateFunc func(ctx context.Context, item *domain.FoodItem) error
	DeleteFunc func(ctx context.Context, id int) error
}

func (m *MockFoodRepo) GetAll(ctx context.Context) ([]domain.FoodItem, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockFoodRepo) Create(ctx context.Context, item *domain.FoodItem) error {
	return m.CreateFunc(ctx, item)
}

func (m *MockFoodRepo) Update(ctx context.Context, item *domain.FoodItem) error {
	return m.UpdateFunc(ctx, item)
}

func (m *MockFoodRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
