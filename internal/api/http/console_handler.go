package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/service"
)

// ConsoleHandler manages the stations.
type ConsoleHandler struct {
	consoles service.ConsoleService
}

func NewConsoleHandler(consoles service.ConsoleService) *ConsoleHandler {
	return &ConsoleHandler{consoles: consoles}
}

type consoleRequest struct {
	Name     string               `json:"name"`
	Type     domain.ConsoleType   `json:"type"`
	Status   domain.ConsoleStatus `json:"status"`
	ImageURL string               `json:"image_url"`
}

func (h *ConsoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req consoleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	console, err := h.consoles.CreateConsole(r.Context(), req.Name, req.Type)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, console)
}

func (h *ConsoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	console, err := h.consoles.GetConsole(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, console)
}

func (h *ConsoleHandler) List(w http.ResponseWriter, r *http.Request) {
	consoles, err := h.consoles.ListConsoles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, consoles)
}

func (h *ConsoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req consoleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	console, err := h.consoles.GetConsole(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Name != "" {
		console.Name = req.Name
	}
	if req.Type != "" {
		console.Type = req.Type
	}
	if req.Status != "" {
		console.Status = req.Status
	}
	if req.ImageURL != "" {
		console.ImageURL = req.ImageURL
	}
	if err := h.consoles.UpdateConsole(r.Context(), console); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, console)
}

func (h *ConsoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.consoles.DeleteConsole(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
