package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adlertours/backend/internal/domain"
	"github.com/adlertours/backend/internal/notify"
	"github.com/adlertours/backend/internal/repo"
)

// BookingService implements the booking submission workflow and the admin
// operations over bookings. It is stateless and safe for concurrent use;
// atomicity of the submit step is delegated to the repo transaction.
type BookingService struct {
	bookings repo.BookingRepo
	notifier notify.Notifier
	log      *slog.Logger
}

// NewBookingService constructs a BookingService.
// Pass a nil repo when storage is unavailable to get a service that fails
// fast with domain.ErrNotConfigured.
func NewBookingService(bookings repo.BookingRepo, notifier notify.Notifier, log *slog.Logger) *BookingService {
	return &BookingService{bookings: bookings, notifier: notifier, log: log}
}

// Submit validates the booking request, persists it atomically, and fires a
// best-effort manager notification with the persisted id.
//
// The notification runs strictly after commit and its outcome is discarded:
// a degraded Telegram channel never rolls back or fails an accepted booking.
func (s *BookingService) Submit(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	if s.bookings == nil {
		return domain.Booking{}, domain.ErrNotConfigured
	}

	if booking.TourID <= 0 {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Submit: %w: tour_id is required", domain.ErrValidation)
	}
	if booking.PeopleCount < 1 {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Submit: %w: people_count must be positive", domain.ErrValidation)
	}
	if booking.DateTime.IsZero() {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Submit: %w: date_time is required", domain.ErrValidation)
	}

	created, tour, err := s.bookings.Submit(ctx, booking)
	if err != nil {
		return domain.Booking{}, err
	}

	s.notifier.Send(ctx, formatBookingMessage(created, tour))

	return created, nil
}

// List returns all bookings for the admin surface, newest first.
func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	if s.bookings == nil {
		return nil, domain.ErrNotConfigured
	}
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

// GetByID returns a single booking by ID.
func (s *BookingService) GetByID(ctx context.Context, id int64) (domain.Booking, error) {
	if s.bookings == nil {
		return domain.Booking{}, domain.ErrNotConfigured
	}
	return s.bookings.GetByID(ctx, id)
}

// UpdateStatus sets the status of an existing booking.
func (s *BookingService) UpdateStatus(ctx context.Context, id int64, status string) (domain.Booking, error) {
	if s.bookings == nil {
		return domain.Booking{}, domain.ErrNotConfigured
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return domain.Booking{}, fmt.Errorf("service.BookingService.UpdateStatus: %w: status is required", domain.ErrValidation)
	}
	return s.bookings.UpdateStatus(ctx, id, status)
}

// formatBookingMessage builds the human-readable summary sent to the manager
// chat after a booking is committed.
func formatBookingMessage(b domain.Booking, tour domain.Tour) string {
	client := b.ClientName
	if b.TgUsername != nil && *b.TgUsername != "" {
		client = fmt.Sprintf("%s (@%s)", client, *b.TgUsername)
	}

	comment := "—"
	if b.Comment != nil && *b.Comment != "" {
		comment = *b.Comment
	}

	return fmt.Sprintf(
		"New booking #%d\nTour: %s\nDate: %s\nPeople: %d\nClient: %s\nPhone: %s\nComment: %s",
		b.ID,
		tour.Title,
		b.DateTime.Format("2006-01-02 15:04"),
		b.PeopleCount,
		client,
		b.ClientPhone,
		comment,
	)
}
