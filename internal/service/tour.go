// Package service contains the business logic for the tour-booking API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/adlertours/backend/internal/domain"
	"github.com/adlertours/backend/internal/repo"
)

// TourService implements business logic for Tour operations.
// A nil repo means storage is not configured; every operation then fails
// with domain.ErrNotConfigured before any work is attempted.
type TourService struct {
	repo repo.TourRepo
}

// NewTourService constructs a TourService backed by the provided TourRepo.
// Pass nil when storage is unavailable to get a service that degrades cleanly.
func NewTourService(r repo.TourRepo) *TourService {
	return &TourService{repo: r}
}

// ListActive returns all bookable tours for the public catalogue.
func (s *TourService) ListActive(ctx context.Context) ([]domain.Tour, error) {
	if s.repo == nil {
		return nil, domain.ErrNotConfigured
	}
	tours, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []domain.Tour{}
	}
	return tours, nil
}

// List returns every tour, active or not, for the admin surface.
func (s *TourService) List(ctx context.Context) ([]domain.Tour, error) {
	if s.repo == nil {
		return nil, domain.ErrNotConfigured
	}
	tours, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []domain.Tour{}
	}
	return tours, nil
}

// GetByID returns a single tour by ID.
func (s *TourService) GetByID(ctx context.Context, id int64) (domain.Tour, error) {
	if s.repo == nil {
		return domain.Tour{}, domain.ErrNotConfigured
	}
	return s.repo.GetByID(ctx, id)
}

// Create validates and persists a new tour.
func (s *TourService) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	if s.repo == nil {
		return domain.Tour{}, domain.ErrNotConfigured
	}
	if err := validateTour(&tour); err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w", err)
	}
	return s.repo.Create(ctx, tour)
}

// Update validates and updates an existing tour.
func (s *TourService) Update(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	if s.repo == nil {
		return domain.Tour{}, domain.ErrNotConfigured
	}
	if err := validateTour(&tour); err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Update: %w", err)
	}
	return s.repo.Update(ctx, tour)
}

// validateTour checks required fields, trimming whitespace in place.
func validateTour(tour *domain.Tour) error {
	tour.Title = strings.TrimSpace(tour.Title)
	if tour.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	tour.Type = strings.TrimSpace(tour.Type)
	if tour.Type == "" {
		return fmt.Errorf("%w: type is required", domain.ErrValidation)
	}
	return nil
}
