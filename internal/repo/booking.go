package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adlertours/backend/internal/domain"
)

// BookingRepo defines the persistence operations for Bookings.
type BookingRepo interface {
	// Submit atomically checks that the booking's tour is active and inserts
	// the booking with status "new". Both steps run in one transaction: a
	// failure at any point leaves no booking row behind.
	//
	// Returns the persisted booking (with DB-generated id and created_at)
	// together with the referenced tour, so callers can build the
	// notification text without a second query.
	// Returns domain.ErrTourNotBookable when the tour does not exist or is
	// inactive.
	Submit(ctx context.Context, booking domain.Booking) (domain.Booking, domain.Tour, error)

	// List returns all bookings ordered by id descending (newest first).
	List(ctx context.Context) ([]domain.Booking, error)

	// GetByID retrieves a single booking by primary key.
	// Returns domain.ErrNotFound if no booking with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Booking, error)

	// UpdateStatus sets the status of an existing booking and returns the
	// updated record. Status is the only booking field that is ever mutated.
	// Returns domain.ErrNotFound if no booking with that ID exists.
	UpdateStatus(ctx context.Context, id int64, status string) (domain.Booking, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const bookingColumns = `id, tour_id, tg_user_id, tg_username, client_name, client_phone,
	people_count, date_time, comment, status, created_at`

// Submit runs the booking transaction: look up the active tour, insert the
// booking, commit. The insert never becomes durable unless the commit does.
func (r *pgBookingRepo) Submit(ctx context.Context, booking domain.Booking) (domain.Booking, domain.Tour, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Booking{}, domain.Tour{}, fmt.Errorf("repo.BookingRepo.Submit: begin: %w", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer tx.Rollback(ctx)

	// Only an active tour is a valid booking target.
	const tourQ = `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE id = @id AND is_active`

	tour, err := scanTour(tx.QueryRow(ctx, tourQ, pgx.NamedArgs{"id": booking.TourID}))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Booking{}, domain.Tour{}, domain.ErrTourNotBookable
		}
		return domain.Booking{}, domain.Tour{}, fmt.Errorf("repo.BookingRepo.Submit: lookup tour: %w", err)
	}

	const insertQ = `
		INSERT INTO bookings (tour_id, tg_user_id, tg_username, client_name, client_phone,
			people_count, date_time, comment, status)
		VALUES (@tour_id, @tg_user_id, @tg_username, @client_name, @client_phone,
			@people_count, @date_time, @comment, @status)
		RETURNING ` + bookingColumns

	args := pgx.NamedArgs{
		"tour_id":      booking.TourID,
		"tg_user_id":   booking.TgUserID, // nil becomes NULL
		"tg_username":  booking.TgUsername,
		"client_name":  booking.ClientName,
		"client_phone": booking.ClientPhone,
		"people_count": booking.PeopleCount,
		"date_time":    booking.DateTime.Time,
		"comment":      booking.Comment,
		"status":       domain.BookingStatusNew,
	}

	created, err := scanBooking(tx.QueryRow(ctx, insertQ, args))
	if err != nil {
		return domain.Booking{}, domain.Tour{}, fmt.Errorf("repo.BookingRepo.Submit: insert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Booking{}, domain.Tour{}, fmt.Errorf("repo.BookingRepo.Submit: commit: %w", err)
	}

	return created, tour, nil
}

// List returns all bookings, newest first.
func (r *pgBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY id DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.List: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BookingRepo.List: scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.List: rows: %w", err)
	}

	return bookings, nil
}

// GetByID retrieves a booking by primary key.
func (r *pgBookingRepo) GetByID(ctx context.Context, id int64) (domain.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = @id`

	booking, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.GetByID: %w", err)
	}
	return booking, nil
}

// UpdateStatus sets the booking status and returns the updated record.
func (r *pgBookingRepo) UpdateStatus(ctx context.Context, id int64, status string) (domain.Booking, error) {
	const q = `
		UPDATE bookings
		SET status = @status
		WHERE id = @id
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "status": status}))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.UpdateStatus: %w", err)
	}
	return booking, nil
}

// scanBooking maps a single database row into a domain.Booking.
func scanBooking(s scanner) (domain.Booking, error) {
	var b domain.Booking
	err := s.Scan(&b.ID, &b.TourID, &b.TgUserID, &b.TgUsername, &b.ClientName, &b.ClientPhone,
		&b.PeopleCount, &b.DateTime.Time, &b.Comment, &b.Status, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}
	return b, nil
}
