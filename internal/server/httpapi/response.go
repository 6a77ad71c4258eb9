package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devhub/backend/internal/common"
	"github.com/google/uuid"
)

// requestID generates a unique request identifier.
func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

// errorResponse is the JSON body of every failed request. Error carries
// internal detail and is only populated in development mode.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Message: message})
}

// respondError maps a service error to a status code and JSON body.
// Unexpected errors become a bare 500; detail leaks only in development.
func (s *Server) respondError(w http.ResponseWriter, err error, message string) {
	status := statusFromError(err)

	body := errorResponse{Message: message}
	if body.Message == "" {
		body.Message = err.Error()
	}
	if status == http.StatusInternalServerError {
		body.Message = "Internal Server Error"
		if s.config.IsDev() {
			body.Error = err.Error()
		}
	}

	respondJSON(w, status, body)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorInvalidCredentials),
		errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrorInvalidToken),
		errors.Is(err, common.ErrorTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
