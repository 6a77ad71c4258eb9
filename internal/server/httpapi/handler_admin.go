package httpapi

import "net/http"

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.Dashboard(r.Context())
	if err != nil {
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
