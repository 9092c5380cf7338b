package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"movie-booking/internal/domain"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) GetAll(ctx context.Context) ([]domain.Theater, error) {
	query := `
		SELECT id, name, location, capacity, owner_id, status, created_at
		FROM theaters
		ORDER BY id
	`

	return p.list(ctx, query)
}

func (p *PostgresTheaterRepository) GetAllByOwnerId(ctx context.Context, ownerID int) ([]domain.Theater, error) {
	query := `
		SELECT id, name, location, capacity, owner_id, status, created_at
		FROM theaters
		WHERE owner_id = $1
		ORDER BY id
	`

	return p.list(ctx, query, ownerID)
}

func (p *PostgresTheaterRepository) list(ctx context.Context, query string, args ...any) ([]domain.Theater, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := make([]domain.Theater, 0)

	for rows.Next() {
		var theater domain.Theater

		err := rows.Scan(
			&theater.ID,
			&theater.Name,
			&theater.Location,
			&theater.Capacity,
			&theater.OwnerID,
			&theater.Status,
			&theater.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		theaters = append(theaters, theater)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}

func (p *PostgresTheaterRepository) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	query := `
		SELECT id, name, location, capacity, owner_id, status, created_at
		FROM theaters
		WHERE id = $1
	`

	var theater domain.Theater

	err := p.db.QueryRow(ctx, query, id).Scan(
		&theater.ID,
		&theater.Name,
		&theater.Location,
		&theater.Capacity,
		&theater.OwnerID,
		&theater.Status,
		&theater.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &theater, nil
}

func (p *PostgresTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	query := `
		INSERT INTO theaters (name, location, capacity, owner_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	theater.Status = domain.TheaterPending

	return p.db.QueryRow(ctx,
		query,
		theater.Name,
		theater.Location,
		theater.Capacity,
		theater.OwnerID,
		theater.Status).Scan(&theater.ID, &theater.CreatedAt)
}

// UpdateStatus applies an admin approve/reject decision. The transition is
// checked against the status machine first; the WHERE clause then restricts
// the update to pending rows so approved and rejected stay terminal even
// under concurrent requests.
func (p *PostgresTheaterRepository) UpdateStatus(
	ctx context.Context,
	id int,
	status domain.TheaterStatus) (*domain.Theater, error) {

	current, err := p.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, domain.ErrStatusTransition
	}

	query := `
		UPDATE theaters
		SET status = $2
		WHERE id = $1 AND status = 'pending'
		RETURNING id, name, location, capacity, owner_id, status, created_at
	`

	var theater domain.Theater

	err = p.db.QueryRow(ctx, query, id, status).Scan(
		&theater.ID,
		&theater.Name,
		&theater.Location,
		&theater.Capacity,
		&theater.OwnerID,
		&theater.Status,
		&theater.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A concurrent decision landed between the read and the update.
			return nil, domain.ErrStatusTransition
		}

		return nil, err
	}

	return &theater, nil
}
