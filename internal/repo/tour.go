// Package repo contains all database access logic for the tour-booking API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adlertours/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TourRepo defines the persistence operations for Tours.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TourRepo interface {
	// ListActive returns all bookable tours ordered by id ascending.
	ListActive(ctx context.Context) ([]domain.Tour, error)

	// List returns all tours, active or not, ordered by id ascending.
	List(ctx context.Context) ([]domain.Tour, error)

	// GetByID retrieves a single tour by primary key.
	// Returns domain.ErrNotFound if no tour with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Tour, error)

	// Create inserts a new tour and returns the persisted record with its
	// DB-generated id populated.
	Create(ctx context.Context, tour domain.Tour) (domain.Tour, error)

	// Update overwrites the mutable fields of an existing tour and returns the
	// updated record. Returns domain.ErrNotFound if no tour with that ID exists.
	Update(ctx context.Context, tour domain.Tour) (domain.Tour, error)
}

// pgTourRepo is the Postgres implementation of TourRepo.
type pgTourRepo struct {
	db db
}

// NewTourRepo constructs a TourRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTourRepo(db db) TourRepo {
	return &pgTourRepo{db: db}
}

const tourColumns = `id, title, type, description, price_from, duration_hours, is_active`

// ListActive returns only tours eligible for booking.
func (r *pgTourRepo) ListActive(ctx context.Context) ([]domain.Tour, error) {
	const q = `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE is_active
		ORDER BY id`

	tours, err := r.queryTours(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.ListActive: %w", err)
	}
	return tours, nil
}

// List returns every tour for the admin surface.
func (r *pgTourRepo) List(ctx context.Context) ([]domain.Tour, error) {
	const q = `
		SELECT ` + tourColumns + `
		FROM tours
		ORDER BY id`

	tours, err := r.queryTours(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.List: %w", err)
	}
	return tours, nil
}

// GetByID retrieves a tour by primary key.
func (r *pgTourRepo) GetByID(ctx context.Context, id int64) (domain.Tour, error) {
	const q = `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	tour, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.GetByID: %w", err)
	}
	return tour, nil
}

// Create inserts a new tour row and returns the full persisted record.
func (r *pgTourRepo) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	const q = `
		INSERT INTO tours (title, type, description, price_from, duration_hours, is_active)
		VALUES (@title, @type, @description, @price_from, @duration_hours, @is_active)
		RETURNING ` + tourColumns

	args := pgx.NamedArgs{
		"title":          tour.Title,
		"type":           tour.Type,
		"description":    tour.Description, // nil becomes NULL
		"price_from":     tour.PriceFrom,
		"duration_hours": tour.DurationHours,
		"is_active":      tour.IsActive,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.Create: %w", err)
	}
	return result, nil
}

// Update overwrites the mutable fields of a tour and returns the updated record.
func (r *pgTourRepo) Update(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	const q = `
		UPDATE tours
		SET title          = @title,
		    type           = @type,
		    description    = @description,
		    price_from     = @price_from,
		    duration_hours = @duration_hours,
		    is_active      = @is_active
		WHERE id = @id
		RETURNING ` + tourColumns

	args := pgx.NamedArgs{
		"id":             tour.ID,
		"title":          tour.Title,
		"type":           tour.Type,
		"description":    tour.Description,
		"price_from":     tour.PriceFrom,
		"duration_hours": tour.DurationHours,
		"is_active":      tour.IsActive,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.Update: %w", err)
	}
	return result, nil
}

// queryTours runs a query returning tour rows and scans them all.
func (r *pgTourRepo) queryTours(ctx context.Context, q string, args ...any) ([]domain.Tour, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tours []domain.Tour
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tours = append(tours, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return tours, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTour maps a single database row into a domain.Tour.
// Nullable columns scan into pointer fields (NULL becomes nil).
func scanTour(s scanner) (domain.Tour, error) {
	var t domain.Tour
	err := s.Scan(&t.ID, &t.Title, &t.Type, &t.Description, &t.PriceFrom, &t.DurationHours, &t.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tour{}, domain.ErrNotFound
		}
		return domain.Tour{}, err
	}
	return t, nil
}
