package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/devhub/backend/internal/server/models"
	usersrepo "github.com/devhub/backend/internal/server/repositories/users"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token,omitempty"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(w, err, "")
		return
	}

	// The token travels both ways: as an http-only cookie for browser
	// clients and in the body for clients that send it as a bearer header.
	http.SetCookie(w, s.cookies.SessionCookie(token))

	respondJSON(w, http.StatusOK, authResponse{
		Message: "Login successful",
		User:    user,
		Token:   token,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.cookies.ExpiredCookie())
	respondMessage(w, http.StatusOK, "Logged out successfully")
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	user, err := s.users.Profile(r.Context(), identity.UserID)
	if err != nil {
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// updateProfileRequest distinguishes absent fields from empty ones so a
// client can clear a title without touching the rest of the profile.
type updateProfileRequest struct {
	Name          *string               `json:"name"`
	Title         *string               `json:"title"`
	CodingHandles *models.CodingHandles `json:"codingHandles"`
	Role          *string               `json:"role"`
	Password      *string               `json:"password"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Role changes and password changes do not belong to profile editing.
	// A role in the payload is an explicit error; a password is ignored.
	if req.Role != nil {
		respondMessage(w, http.StatusBadRequest, "Role cannot be changed via this endpoint")
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), identity.UserID, usersrepo.ProfileUpdate{
		Name:          req.Name,
		Title:         req.Title,
		CodingHandles: req.CodingHandles,
	})
	if err != nil {
		s.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
