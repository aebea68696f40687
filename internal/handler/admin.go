package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adlertours/backend/internal/domain"
)

// tourRequest is the payload for creating a tour. All admin-managed fields
// are settable; is_active defaults to true unless provided.
type tourRequest struct {
	Title         string   `json:"title"`
	Type          string   `json:"type"`
	Description   *string  `json:"description,omitempty"`
	PriceFrom     *float64 `json:"price_from,omitempty"`
	DurationHours *int     `json:"duration_hours,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// tourPatch is the payload for partially updating a tour.
// Only non-nil fields are applied.
type tourPatch struct {
	Title         *string  `json:"title,omitempty"`
	Type          *string  `json:"type,omitempty"`
	Description   *string  `json:"description,omitempty"`
	PriceFrom     *float64 `json:"price_from,omitempty"`
	DurationHours *int     `json:"duration_hours,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// bookingPatch is the payload for updating a booking. Status is the only
// mutable booking field.
type bookingPatch struct {
	Status string `json:"status"`
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// AdminListTours handles GET /api/admin/tours.
// Unlike the public catalogue it includes inactive tours.
func (s *Server) AdminListTours(w http.ResponseWriter, r *http.Request) {
	tours, err := s.tours.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tours)
}

// AdminCreateTour handles POST /api/admin/tours.
func (s *Server) AdminCreateTour(w http.ResponseWriter, r *http.Request) {
	var req tourRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	tour := domain.Tour{
		Title:         req.Title,
		Type:          req.Type,
		Description:   req.Description,
		PriceFrom:     req.PriceFrom,
		DurationHours: req.DurationHours,
		IsActive:      true,
	}
	if req.IsActive != nil {
		tour.IsActive = *req.IsActive
	}

	created, err := s.tours.Create(r.Context(), tour)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// AdminGetTour handles GET /api/admin/tours/{id}.
func (s *Server) AdminGetTour(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tour id")
		return
	}

	tour, err := s.tours.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tour)
}

// AdminUpdateTour handles PATCH /api/admin/tours/{id}.
// Reads the current record, applies the non-nil fields, and writes it back.
func (s *Server) AdminUpdateTour(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tour id")
		return
	}

	var patch tourPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	tour, err := s.tours.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if patch.Title != nil {
		tour.Title = *patch.Title
	}
	if patch.Type != nil {
		tour.Type = *patch.Type
	}
	if patch.Description != nil {
		tour.Description = patch.Description
	}
	if patch.PriceFrom != nil {
		tour.PriceFrom = patch.PriceFrom
	}
	if patch.DurationHours != nil {
		tour.DurationHours = patch.DurationHours
	}
	if patch.IsActive != nil {
		tour.IsActive = *patch.IsActive
	}

	updated, err := s.tours.Update(r.Context(), tour)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// AdminListBookings handles GET /api/admin/bookings.
func (s *Server) AdminListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.bookings.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// AdminUpdateBooking handles PATCH /api/admin/bookings/{id}.
func (s *Server) AdminUpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	var patch bookingPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	updated, err := s.bookings.UpdateStatus(r.Context(), id, patch.Status)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
