package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"movie-booking/internal/domain"
)

type PostgresFoodRepository struct {
	db *pgxpool.Pool
}

func NewPostgresFoodRepository(db *pgxpool.Pool) *PostgresFoodRepository {
	return &PostgresFoodRepository{
		db: db,
	}
}

func (p *PostgresFoodRepository) GetAll(ctx context.Context) ([]domain.FoodItem, error) {
	query := `
		SELECT id, name, price
		FROM food
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.FoodItem, 0)

	for rows.Next() {
		var item domain.FoodItem
		var price pgtype.Numeric

		err := rows.Scan(&item.ID, &item.Name, &price)
		if err != nil {
			return nil, err
		}

		item.Price = decimalFromNumeric(price)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (p *PostgresFoodRepository) Create(ctx context.Context, item *domain.FoodItem) error {
	query := `
		INSERT INTO food (name, price)
		VALUES ($1, $2)
		RETURNING id
	`

	return p.db.QueryRow(ctx, query, item.Name, numericFromDecimal(item.Price)).Scan(&item.ID)
}

func (p *PostgresFoodRepository) Update(ctx context.Context, item *domain.FoodItem) error {
	query := `
		UPDATE food
		SET name = $2, price = $3
		WHERE id = $1
	`

	tag, err := p.db.Exec(ctx, query, item.ID, item.Name, numericFromDecimal(item.Price))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresFoodRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM food WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
