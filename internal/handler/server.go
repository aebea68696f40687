// Package handler implements the HTTP handlers for the tour-booking API.
// Handlers are methods on Server, split into domain-specific files
// (tour.go, booking.go, admin.go, webhook.go, health.go), and translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/adlertours/backend/internal/domain"
	"github.com/adlertours/backend/internal/middleware"
	"github.com/adlertours/backend/internal/notify"
)

// TourServicer defines the business operations the tour handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TourServicer interface {
	ListActive(ctx context.Context) ([]domain.Tour, error)
	List(ctx context.Context) ([]domain.Tour, error)
	GetByID(ctx context.Context, id int64) (domain.Tour, error)
	Create(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	Update(ctx context.Context, tour domain.Tour) (domain.Tour, error)
}

// BookingServicer defines the business operations the booking handlers depend on.
type BookingServicer interface {
	Submit(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status string) (domain.Booking, error)
}

// Pinger is the subset of *pgxpool.Pool the health handlers need.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies shared by all HTTP handlers.
// A nil db means storage is not configured; /db-check then answers 503.
type Server struct {
	tours    TourServicer
	bookings BookingServicer
	notifier notify.Notifier
	db       Pinger
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(tours TourServicer, bookings BookingServicer, notifier notify.Notifier, db Pinger, log *slog.Logger) *Server {
	return &Server{tours: tours, bookings: bookings, notifier: notifier, db: db, log: log}
}

// RouterConfig carries the router-level settings out of the process config.
type RouterConfig struct {
	CORSOrigins []string
	AdminToken  string
}

// maxBodySize caps JSON request bodies at 1 MB.
const maxBodySize = 1 << 20

// NewRouter builds the chi router with the full middleware stack and all routes.
//
// Middleware order: RequestID generates a trace ID per request, RealIP sets
// r.RemoteAddr from proxy headers, SlogLogger writes one structured line per
// request, Recoverer turns panics into HTTP 500.
func NewRouter(s *Server, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(s.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	r.Get("/", s.Root)
	r.Get("/db-check", s.DBCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/tours", s.ListTours)
		r.Post("/bookings", s.CreateBooking)
		r.Post("/telegram/webhook", s.TelegramWebhook)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.NewAdminAuth(cfg.AdminToken))
			r.Get("/tours", s.AdminListTours)
			r.Post("/tours", s.AdminCreateTour)
			r.Get("/tours/{id}", s.AdminGetTour)
			r.Patch("/tours/{id}", s.AdminUpdateTour)
			r.Get("/bookings", s.AdminListBookings)
			r.Patch("/bookings/{id}", s.AdminUpdateBooking)
		})
	})

	return r
}
