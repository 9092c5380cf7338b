package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"movie-booking/internal/domain"
)

// Each identity namespace lives in its own table, so email uniqueness is per
// namespace by construction.
var roleTables = map[domain.Role]string{
	domain.RoleUser:  "users",
	domain.RoleAdmin: "admins",
	domain.RoleOwner: "theater_owners",
}

type PostgresIdentityRepository struct {
	db    *pgxpool.Pool
	role  domain.Role
	table string
}

func NewPostgresIdentityRepository(db *pgxpool.Pool, role domain.Role) *PostgresIdentityRepository {
	table, ok := roleTables[role]
	if !ok {
		panic(fmt.Sprintf("unknown identity role: %s", role))
	}

	return &PostgresIdentityRepository{
		db:    db,
		role:  role,
		table: table,
	}
}

func (p *PostgresIdentityRepository) Create(ctx context.Context, identity *domain.Identity) error {
	query := fmt.Sprintf(`INSERT INTO %s (name, email, password_hash, contact)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`, p.table)

	err := p.db.QueryRow(ctx,
		query,
		identity.Name,
		identity.Email,
		identity.Password.Hash,
		identity.Contact).Scan(&identity.ID, &identity.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateEmail
		}

		return err
	}

	identity.Role = p.role

	return nil
}

func (p *PostgresIdentityRepository) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	query := fmt.Sprintf(`SELECT id, name, email, password_hash, contact, created_at
		FROM %s
		WHERE email = $1`, p.table)

	return p.get(ctx, query, email)
}

func (p *PostgresIdentityRepository) GetById(ctx context.Context, id int) (*domain.Identity, error) {
	query := fmt.Sprintf(`SELECT id, name, email, password_hash, contact, created_at
		FROM %s
		WHERE id = $1`, p.table)

	return p.get(ctx, query, id)
}

func (p *PostgresIdentityRepository) get(ctx context.Context, query string, arg any) (*domain.Identity, error) {
	var identity domain.Identity

	err := p.db.QueryRow(ctx, query, arg).Scan(
		&identity.ID,
		&identity.Name,
		&identity.Email,
		&identity.Password.Hash,
		&identity.Contact,
		&identity.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	identity.Role = p.role

	return &identity, nil
}
