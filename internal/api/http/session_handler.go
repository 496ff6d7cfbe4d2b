package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/logger"
	"gamestation-backend/internal/security"
	"gamestation-backend/internal/service"
)

// SessionHandler exposes the rental session lifecycle.
type SessionHandler struct {
	rentals service.RentalService
	catalog service.CatalogService
}

func NewSessionHandler(rentals service.RentalService, catalog service.CatalogService) *SessionHandler {
	return &SessionHandler{rentals: rentals, catalog: catalog}
}

type openSessionRequest struct {
	ConsoleID    string `json:"console_id"`
	MemberID     string `json:"member_id"`
	CustomerName string `json:"customer_name"`
}

type sessionResponse struct {
	Session any    `json:"session"`
	Warning string `json:"warning,omitempty"`
}

// Open starts a session on a console.
func (h *SessionHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ConsoleID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "console_id is required"})
		return
	}

	session, warning, err := h.rentals.OpenSession(r.Context(), req.ConsoleID, req.MemberID, req.CustomerName, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Session: session, Warning: string(warning)})
}

// Get returns one session by id.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.rentals.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// ListActive returns every running session.
func (h *SessionHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.rentals.ListActiveSessions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

// AddItem appends one unit of a product to the session cart and decrements
// catalog stock.
func (h *SessionHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "product_id is required"})
		return
	}

	session, err := h.rentals.AddItem(r.Context(), mux.Vars(r)["id"], req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.catalog.AdjustStock(r.Context(), req.ProductID, -1); err != nil {
		// The cart line is already saved. Stock drift is logged, not fatal.
		logger.Warn("Failed to decrement stock", "product_id", req.ProductID, "error", err)
	}
	writeJSON(w, http.StatusOK, session)
}

// Tick refreshes the advisory running totals of a session.
func (h *SessionHandler) Tick(w http.ResponseWriter, r *http.Request) {
	session, err := h.rentals.Tick(r.Context(), mux.Vars(r)["id"], time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

type closeSessionRequest struct {
	FeeOverride *int32 `json:"fee_override,omitempty"`
}

// Close settles and ends a session. The body is optional; when present it
// may carry a manual fee override, which is reserved for admins.
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	var req closeSessionRequest
	if r.Body != nil && r.ContentLength > 0 {
		if !decodeBody(w, r, &req) {
			return
		}
	}

	claims := claimsFrom(r.Context())
	staffID := ""
	if claims != nil {
		staffID = claims.StaffID
	}
	if req.FeeOverride != nil {
		if claims == nil || !security.Can(claims.Role, security.ActionOverrideFee) {
			writeError(w, fmt.Errorf("fee override requires admin role: %w", domain.ErrForbidden))
			return
		}
	}

	session, err := h.rentals.CloseSession(r.Context(), mux.Vars(r)["id"], staffID, time.Now(), req.FeeOverride)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}
