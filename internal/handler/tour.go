package handler

import "net/http"

// ListTours handles GET /api/tours.
// Returns the public catalogue: active tours only, ordered by id.
func (s *Server) ListTours(w http.ResponseWriter, r *http.Request) {
	tours, err := s.tours.ListActive(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tours)
}
