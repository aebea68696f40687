package handler

import (
	"net/http"

	"github.com/adlertours/backend/internal/domain"
)

// createBookingRequest is the payload for POST /api/bookings.
// date_time accepts RFC 3339 or the zone-less "2006-01-02T15:04:05" form.
type createBookingRequest struct {
	TourID      int64           `json:"tour_id"`
	DateTime    domain.DateTime `json:"date_time"`
	PeopleCount int             `json:"people_count"`
	ClientName  string          `json:"client_name"`
	ClientPhone string          `json:"client_phone"`
	Comment     *string         `json:"comment,omitempty"`
	TgUserID    *int64          `json:"tg_user_id,omitempty"`
	TgUsername  *string         `json:"tg_username,omitempty"`
}

// createBookingResponse is the success envelope for POST /api/bookings.
type createBookingResponse struct {
	OK        bool  `json:"ok"`
	BookingID int64 `json:"booking_id"`
}

// CreateBooking handles POST /api/bookings.
// On success the booking is durable and the manager notification has been
// attempted; the response carries the server-assigned booking id.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	booking := domain.Booking{
		TourID:      req.TourID,
		DateTime:    req.DateTime,
		PeopleCount: req.PeopleCount,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Comment:     req.Comment,
		TgUserID:    req.TgUserID,
		TgUsername:  req.TgUsername,
	}

	created, err := s.bookings.Submit(r.Context(), booking)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createBookingResponse{OK: true, BookingID: created.ID})
}
