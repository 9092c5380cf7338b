package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type FoodItem struct {
	ID    int
	Name  string
	Price decimal.Decimal
}

type FoodRepository interface {
	GetAll(ctx context.Context) ([]FoodItem, error)
	Create(ctx context.Context, item *FoodItem) error
	Update(ctx context.Context, item *FoodItem) error
	Delete(ctx context.Context, id int) error
}
