package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/adlertours/backend/internal/domain"
	"github.com/adlertours/backend/internal/handler"
)

// Shared test doubles for the handler package. Each mock uses function
// fields — set only the ones your test needs.

const testAdminToken = "test-admin-token"

type mockTourService struct {
	listActive func(ctx context.Context) ([]domain.Tour, error)
	list       func(ctx context.Context) ([]domain.Tour, error)
	getByID    func(ctx context.Context, id int64) (domain.Tour, error)
	create     func(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	update     func(ctx context.Context, tour domain.Tour) (domain.Tour, error)
}

func (m *mockTourService) ListActive(ctx context.Context) ([]domain.Tour, error) {
	return m.listActive(ctx)
}
func (m *mockTourService) List(ctx context.Context) ([]domain.Tour, error) {
	return m.list(ctx)
}
func (m *mockTourService) GetByID(ctx context.Context, id int64) (domain.Tour, error) {
	return m.getByID(ctx, id)
}
func (m *mockTourService) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	return m.create(ctx, tour)
}
func (m *mockTourService) Update(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	return m.update(ctx, tour)
}

var _ handler.TourServicer = (*mockTourService)(nil)

type mockBookingService struct {
	submit       func(ctx context.Context, b domain.Booking) (domain.Booking, error)
	list         func(ctx context.Context) ([]domain.Booking, error)
	getByID      func(ctx context.Context, id int64) (domain.Booking, error)
	updateStatus func(ctx context.Context, id int64, status string) (domain.Booking, error)
}

func (m *mockBookingService) Submit(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	return m.submit(ctx, b)
}
func (m *mockBookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return m.list(ctx)
}
func (m *mockBookingService) GetByID(ctx context.Context, id int64) (domain.Booking, error) {
	return m.getByID(ctx, id)
}
func (m *mockBookingService) UpdateStatus(ctx context.Context, id int64, status string) (domain.Booking, error) {
	return m.updateStatus(ctx, id, status)
}

var _ handler.BookingServicer = (*mockBookingService)(nil)

// recordingNotifier captures notifications instead of delivering them.
type recordingNotifier struct {
	sent   []string
	sentTo map[int64][]string
}

func (r *recordingNotifier) Send(_ context.Context, text string) {
	r.sent = append(r.sent, text)
}
func (r *recordingNotifier) SendTo(_ context.Context, chatID int64, text string) {
	if r.sentTo == nil {
		r.sentTo = map[int64][]string{}
	}
	r.sentTo[chatID] = append(r.sentTo[chatID], text)
}
func (r *recordingNotifier) RegisterWebhook(context.Context, string) error { return nil }

// pingerFunc adapts a function to handler.Pinger.
type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// deps bundles everything newTestRouter wires into the router, so individual
// tests can override just the piece they exercise.
type deps struct {
	tours    handler.TourServicer
	bookings handler.BookingServicer
	notifier *recordingNotifier
	db       handler.Pinger
}

// newTestRouter builds the full production router around the given doubles,
// so tests exercise routing, middleware, and handlers together.
func newTestRouter(d deps) http.Handler {
	if d.notifier == nil {
		d.notifier = &recordingNotifier{}
	}
	s := handler.NewServer(d.tours, d.bookings, d.notifier, d.db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return handler.NewRouter(s, handler.RouterConfig{
		CORSOrigins: []string{"http://localhost:5173"},
		AdminToken:  testAdminToken,
	})
}
