package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/service"
)

// AuthHandler exposes login and staff account management.
type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	Staff *domain.Staff `json:"staff"`
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, staff, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Staff: staff})
}

type staffRequest struct {
	Username string           `json:"username"`
	Password string           `json:"password"`
	Name     string           `json:"name"`
	Role     domain.StaffRole `json:"role"`
}

// CreateStaff registers a new staff account.
func (h *AuthHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req staffRequest
	if !decodeBody(w, r, &req) {
		return
	}

	staff, err := h.auth.CreateStaff(r.Context(), req.Username, req.Password, req.Name, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, staff)
}

// ListStaff returns every staff account.
func (h *AuthHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.auth.ListStaff(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

// UpdateStaff changes name, password or role of an account.
func (h *AuthHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var req staffRequest
	if !decodeBody(w, r, &req) {
		return
	}

	staff, err := h.auth.UpdateStaff(r.Context(), mux.Vars(r)["id"], req.Name, req.Password, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

// DeleteStaff removes an account.
func (h *AuthHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.DeleteStaff(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
