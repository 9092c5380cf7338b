package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"movie-booking/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create runs the whole booking as one transaction: price lookup, total
// computation, booking row, food line rows and the audit log row. Either all
// of it commits or none of it is visible. The total is always recomputed
// server-side from current prices; a missing show or food item aborts before
// anything is written.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var price pgtype.Numeric

		err := tx.QueryRow(ctx, `SELECT price FROM shows WHERE id = $1`, booking.ShowID).Scan(&price)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrShowNotFound
			}

			return err
		}

		lines, err := resolveFoodLines(ctx, tx, booking.FoodItems)
		if err != nil {
			return err
		}

		booking.TotalAmount = domain.CalculateTotal(decimalFromNumeric(price), len(booking.Seats), lines)

		query := `
			INSERT INTO bookings (user_id, show_id, seats, total_amount)
			VALUES ($1, $2, $3, $4)
			RETURNING id, booking_date
		`

		err = tx.QueryRow(
			ctx,
			query,
			booking.UserID,
			booking.ShowID,
			booking.Seats,
			numericFromDecimal(booking.TotalAmount)).Scan(&booking.ID, &booking.BookingDate)

		if err != nil {
			return err
		}

		if len(booking.FoodItems) > 0 {
			rows := make([][]any, 0, len(booking.FoodItems))
			for _, item := range booking.FoodItems {
				rows = append(rows, []any{
					booking.ID,
					item.FoodID,
					item.Quantity,
				})
			}

			_, err = tx.CopyFrom(
				ctx,
				pgx.Identifier{"food_booking"},
				[]string{"booking_id", "food_id", "quantity"},
				pgx.CopyFromRows(rows),
			)
			if err != nil {
				return err
			}
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO booking_log (booking_id, user_id, status) VALUES ($1, $2, 'created')`,
			booking.ID,
			booking.UserID)

		return err
	})
}

// resolveFoodLines prices each selection against the food table. An id that
// resolves to nothing fails the booking instead of silently contributing
// zero to the total.
func resolveFoodLines(
	ctx context.Context,
	tx pgx.Tx,
	selections []domain.FoodSelection) ([]domain.FoodLine, error) {

	lines := make([]domain.FoodLine, 0, len(selections))

	for _, selection := range selections {
		var line domain.FoodLine
		var price pgtype.Numeric

		err := tx.QueryRow(ctx,
			`SELECT id, name, price FROM food WHERE id = $1`,
			selection.FoodID).Scan(&line.FoodID, &line.Name, &price)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrFoodItemNotFound
			}

			return nil, err
		}

		line.Price = decimalFromNumeric(price)
		line.Quantity = selection.Quantity

		lines = append(lines, line)
	}

	return lines, nil
}

// txBeginner is satisfied by *pgxpool.Pool.
type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// runInTx commits only when fn returns nil; any error rolls the whole
// transaction back, so no partial writes survive.
func runInTx(ctx context.Context, db txBeginner, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func (p *PostgresBookingRepository) GetAllByUserId(ctx context.Context, userID int) ([]domain.BookingDetail, error) {
	query := `
		SELECT
			b.id, b.seats, b.total_amount, b.booking_date,
			s.id, s.movie_id, s.theater_id, s.show_time, s.price,
			m.title, m.image_url,
			t.name, t.location
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE b.user_id = $1
		ORDER BY b.booking_date DESC
	`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingDetail, 0)

	for rows.Next() {
		var booking domain.BookingDetail
		var totalAmount, showPrice pgtype.Numeric

		err := rows.Scan(
			&booking.ID,
			&booking.Seats,
			&totalAmount,
			&booking.BookingDate,
			&booking.Show.ID,
			&booking.Show.MovieID,
			&booking.Show.TheaterID,
			&booking.Show.ShowTime,
			&showPrice,
			&booking.MovieTitle,
			&booking.ImageUrl,
			&booking.TheaterName,
			&booking.Location,
		)
		if err != nil {
			return nil, err
		}

		booking.UserID = userID
		booking.ShowID = booking.Show.ID
		booking.TotalAmount = decimalFromNumeric(totalAmount)
		booking.Show.Price = decimalFromNumeric(showPrice)

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) GetLogs(ctx context.Context) ([]domain.BookingLog, error) {
	query := `
		SELECT id, booking_id, user_id, status, changed_at
		FROM booking_log
		ORDER BY changed_at DESC
	`

	return p.listLogs(ctx, query)
}

func (p *PostgresBookingRepository) GetLogsByUserId(ctx context.Context, userID int) ([]domain.BookingLog, error) {
	query := `
		SELECT id, booking_id, user_id, status, changed_at
		FROM booking_log
		WHERE user_id = $1
		ORDER BY changed_at DESC
	`

	return p.listLogs(ctx, query, userID)
}

func (p *PostgresBookingRepository) listLogs(ctx context.Context, query string, args ...any) ([]domain.BookingLog, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]domain.BookingLog, 0)

	for rows.Next() {
		var log domain.BookingLog

		err := rows.Scan(&log.ID, &log.BookingID, &log.UserID, &log.Status, &log.ChangedAt)
		if err != nil {
			return nil, err
		}

		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
