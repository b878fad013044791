package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service/ports"
)

const bookingColumns = `id, student_id, instructor_id,
	to_char(scheduled_date, 'YYYY-MM-DD'), to_char(scheduled_time, 'HH24:MI'),
	duration_minutes, price_minor_units, payment_status, status,
	payment_intent_id, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var intentID sql.NullString
	err := row.Scan(
		&b.ID, &b.StudentID, &b.InstructorID,
		&b.ScheduledDate, &b.ScheduledTime,
		&b.DurationMinutes, &b.PriceMinorUnits, &b.PaymentStatus, &b.Status,
		&intentID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if intentID.Valid {
		b.PaymentIntentID = &intentID.String
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, student_id, instructor_id,
				scheduled_date, scheduled_time, duration_minutes,
				price_minor_units, payment_status, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.StudentID, b.InstructorID,
		b.ScheduledDate, b.ScheduledTime, b.DurationMinutes,
		b.PriceMinorUnits, b.PaymentStatus, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDoubleBooking
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE payment_intent_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, paymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("get booking by intent: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentIntentNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// UpdateStatus is the compare-and-swap every transition rides on: the UPDATE
// matches on the expected current status, and zero affected rows means the
// booking either vanished or moved first.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, expected domain.BookingStatus, update ports.BookingUpdate) error {
	query := `UPDATE bookings
			  SET status = $3,
			      payment_status = COALESCE($4, payment_status),
			      payment_intent_id = CASE WHEN $6 THEN NULL ELSE COALESCE($5, payment_intent_id) END,
			      updated_at = now()
			  WHERE id = $1 AND status = $2`

	var paymentStatus any
	if update.PaymentStatus != nil {
		paymentStatus = string(*update.PaymentStatus)
	}
	var intentID any
	if update.PaymentIntentID != nil {
		intentID = *update.PaymentIntentID
	}

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, expected, update.Status,
		paymentStatus, intentID, update.ClearPaymentIntent,
	)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		// Tell apart a missing booking from a lost race.
		var current string
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		row, scanErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if scanErr != nil {
			return domain.ErrBookingNotFound
		}
		if scanErr = row.Scan(&current); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return domain.ErrInvalidTransition
	}

	return nil
}

// SetPaymentIntent claims the booking for one charge: the guard on a NULL
// intent id makes a concurrent second attempt lose deterministically.
func (r *BookingRepository) SetPaymentIntent(ctx context.Context, id, paymentIntentID string) error {
	query := `UPDATE bookings
			  SET payment_intent_id = $2, payment_status = $3, updated_at = now()
			  WHERE id = $1 AND payment_intent_id IS NULL`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, paymentIntentID, domain.PaymentStatusPending,
	)
	if err != nil {
		return fmt.Errorf("set payment intent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		var current sql.NullString
		checkQuery := `SELECT payment_intent_id FROM bookings WHERE id = $1`
		row, scanErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if scanErr != nil {
			return domain.ErrBookingNotFound
		}
		if scanErr = row.Scan(&current); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return domain.ErrPaymentAlreadyStarted
	}

	return nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, instructorID, scheduledDate, scheduledTime string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE instructor_id = $1
			    AND scheduled_date = $2
			    AND scheduled_time = $3
			    AND status <> $4
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		instructorID, scheduledDate, scheduledTime, domain.BookingStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("find overlapping: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByStudent(ctx context.Context, studentID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE student_id = $1
			  ORDER BY scheduled_date DESC, scheduled_time DESC`

	return r.list(ctx, query, studentID)
}

func (r *BookingRepository) ListByInstructor(ctx context.Context, instructorID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE instructor_id = $1
			  ORDER BY scheduled_date DESC, scheduled_time DESC`

	return r.list(ctx, query, instructorID)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// CancelStalePending sweeps pending bookings whose lesson start plus the
// expiry tolerance has passed without payment.
func (r *BookingRepository) CancelStalePending(ctx context.Context) ([]*domain.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE status = $1
		  AND payment_status <> $3
		  AND scheduled_date + scheduled_time + make_interval(mins => $4) < now()
		RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled,
		domain.PaymentStatusPaid, int(domain.DefaultExpiryTolerance.Minutes()),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale pending: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
