package handler

import "net/http"

// Root handles GET /.
// It returns a static liveness payload so load balancers and uptime checks
// can probe the process without touching the database.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "adler backend working",
	})
}

// DBCheck handles GET /db-check.
// It round-trips the database to verify connectivity: 503 when no connection
// string is configured, 500 with the ping error when the database is
// unreachable, {"db_ok":true} otherwise.
func (s *Server) DBCheck(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "DATABASE_URL is not configured")
		return
	}
	if err := s.db.Ping(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"db_ok": true})
}
