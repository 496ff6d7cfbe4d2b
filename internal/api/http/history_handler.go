package http

import (
	"net/http"
	"time"

	"gamestation-backend/internal/service"
)

// HistoryHandler serves the income/expense aggregation.
type HistoryHandler struct {
	history service.HistoryService
}

func NewHistoryHandler(history service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// Summary returns the aggregate for a window; defaults to daily.
func (h *HistoryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	window := service.HistoryWindow(r.URL.Query().Get("window"))
	if window == "" {
		window = service.HistoryWindowDaily
	}

	summary, err := h.history.Summarize(r.Context(), window, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
