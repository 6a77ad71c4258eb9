package httpapi

import "net/http"

type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Environment: s.config.Environment,
	})
}
