package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devhub/backend/internal/common"
	"github.com/devhub/backend/internal/server/models"
	"github.com/go-chi/chi/v5"
)

type resourceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}

func (s *Server) handleCreateResource(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	var req resourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := s.resources.Create(r.Context(), &models.Resource{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		URL:         req.URL,
		Category:    req.Category,
	}, identity.UserID)
	if err != nil {
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusCreated, res)
}

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := s.resources.List(r.Context())
	if err != nil {
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, resources)
}

func (s *Server) handleUpdateResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req resourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := s.resources.Update(r.Context(), &models.Resource{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		URL:         req.URL,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondMessage(w, http.StatusNotFound, "Resource not found")
			return
		}
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleUpdateResourceStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := s.resources.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondMessage(w, http.StatusNotFound, "Resource not found")
			return
		}
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleDeleteResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.resources.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondMessage(w, http.StatusNotFound, "Resource not found")
			return
		}
		s.respondError(w, err, "")
		return
	}

	respondMessage(w, http.StatusOK, "Resource deleted successfully")
}
