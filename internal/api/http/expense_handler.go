package http

import (
	"net/http"
	"time"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/service"
)

// ExpenseHandler records and lists cash expenses.
type ExpenseHandler struct {
	expenses service.ExpenseService
	auth     service.AuthService
}

func NewExpenseHandler(expenses service.ExpenseService, auth service.AuthService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, auth: auth}
}

type expenseRequest struct {
	Note   string `json:"note"`
	Amount int32  `json:"amount"`
}

// Create records an expense attributed to the authenticated staff.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var staff *domain.Staff
	if claims := claimsFrom(r.Context()); claims != nil {
		if s, err := h.auth.GetStaff(r.Context(), claims.StaffID); err == nil {
			staff = s
		}
	}

	expense, err := h.expenses.RecordExpense(r.Context(), req.Note, req.Amount, staff, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

// List returns expenses in [from, to); both default to the last 30 days.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "from must be RFC3339"})
			return
		}
		from = t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "to must be RFC3339"})
			return
		}
		to = t
	}

	expenses, err := h.expenses.ListExpenses(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}
