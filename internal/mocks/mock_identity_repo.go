package mocks

import (
	"context"

	"movie-booking/internal/domain"
)

type MockIdentityRepo struct {
	domain.IdentityRepository
	CreateFunc     func(ctx context.Context, identity *domain.Identity) error
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Identity, error)
	GetByIdFunc    func(ctx context.Context, id int) (*domain.Identity, error)
}

func (m *MockIdentityRepo) Create(ctx context.Context, identity *domain.Identity) error {
	return m.CreateFunc(ctx, identity)
}

func (m *MockIdentityRepo) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockIdentityRepo) GetById(ctx context.Context, id int) (*domain.Identity, error) {
	return m.GetByIdFunc(ctx, id)
}
