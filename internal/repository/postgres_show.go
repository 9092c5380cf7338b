package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"movie-booking/internal/domain"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

const showDetailColumns = `
	s.id, s.movie_id, s.theater_id, s.show_time, s.price,
	m.id, m.title, m.duration, m.genre, m.description, m.image_url, m.release_date, m.created_at,
	t.name, t.location
`

func (p *PostgresShowRepository) GetAll(ctx context.Context) ([]domain.ShowDetail, error) {
	query := `
		SELECT ` + showDetailColumns + `
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		ORDER BY s.show_time
	`

	return p.list(ctx, query)
}

func (p *PostgresShowRepository) GetAllByMovieId(ctx context.Context, movieID int) ([]domain.ShowDetail, error) {
	query := `
		SELECT ` + showDetailColumns + `
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE s.movie_id = $1
		ORDER BY s.show_time
	`

	return p.list(ctx, query, movieID)
}

func (p *PostgresShowRepository) GetAllByTheaterId(ctx context.Context, theaterID int) ([]domain.ShowDetail, error) {
	query := `
		SELECT ` + showDetailColumns + `
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE s.theater_id = $1
		ORDER BY s.show_time
	`

	return p.list(ctx, query, theaterID)
}

func (p *PostgresShowRepository) list(ctx context.Context, query string, args ...any) ([]domain.ShowDetail, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.ShowDetail, 0)

	for rows.Next() {
		show, err := scanShowDetail(rows)
		if err != nil {
			return nil, err
		}

		shows = append(shows, *show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id int) (*domain.ShowDetail, error) {
	query := `
		SELECT ` + showDetailColumns + `
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE s.id = $1
	`

	show, err := scanShowDetail(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return show, nil
}

func scanShowDetail(row pgx.Row) (*domain.ShowDetail, error) {
	var show domain.ShowDetail
	var price pgtype.Numeric

	err := row.Scan(
		&show.ID,
		&show.MovieID,
		&show.TheaterID,
		&show.ShowTime,
		&price,
		&show.Movie.ID,
		&show.Movie.Title,
		&show.Movie.Duration,
		&show.Movie.Genre,
		&show.Movie.Description,
		&show.Movie.ImageUrl,
		&show.Movie.ReleaseDate,
		&show.Movie.CreatedAt,
		&show.Theater.Name,
		&show.Theater.Location,
	)

	if err != nil {
		return nil, err
	}

	show.Price = decimalFromNumeric(price)

	return &show, nil
}

func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	query := `
		INSERT INTO shows (movie_id, theater_id, show_time, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := p.db.QueryRow(ctx,
		query,
		show.MovieID,
		show.TheaterID,
		show.ShowTime,
		numericFromDecimal(show.Price)).Scan(&show.ID)

	if err != nil {
		// A foreign key violation means the referenced movie or theater
		// does not exist.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresShowRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM shows WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
