package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/devhub/backend/internal/common"
	"github.com/devhub/backend/internal/server/models"
	"github.com/go-chi/chi/v5"
)

type createTaskRequest struct {
	Title      string    `json:"title"`
	Module     string    `json:"module"`
	Student    *string   `json:"student"`
	Status     string    `json:"status"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	Difficulty string    `json:"difficulty"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := s.tasks.Create(r.Context(), &models.Task{
		Title:      req.Title,
		Module:     req.Module,
		StudentID:  req.Student,
		Status:     req.Status,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Type:       req.Type,
		Content:    req.Content,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List(r.Context())
	if err != nil {
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

// handleStudentTasks lists tasks ordered by approaching deadline, the
// order students work through them.
func (s *Server) handleStudentTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.ListForStudents(r.Context())
	if err != nil {
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := s.tasks.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondMessage(w, http.StatusNotFound, "Task not found")
			return
		}
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.tasks.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondMessage(w, http.StatusNotFound, "Task not found")
			return
		}
		s.respondError(w, err, "")
		return
	}

	respondMessage(w, http.StatusOK, "Task deleted successfully")
}

func (s *Server) handleTaskStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.tasks.Stats(r.Context())
	if err != nil {
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
