package http

import (
	"net/http"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/service"
)

// PricingHandler exposes the day/night rate table.
type PricingHandler struct {
	pricing service.PricingService
}

func NewPricingHandler(pricing service.PricingService) *PricingHandler {
	return &PricingHandler{pricing: pricing}
}

// List returns the full rate table.
func (h *PricingHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.pricing.Rates())
}

type setRateRequest struct {
	ConsoleType domain.ConsoleType   `json:"console_type"`
	Period      domain.PricingPeriod `json:"period"`
	Rate        int32                `json:"rate"`
}

// SetRate updates one day or night rate.
func (h *PricingHandler) SetRate(w http.ResponseWriter, r *http.Request) {
	var req setRateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.pricing.SetRate(r.Context(), req.ConsoleType, req.Period, req.Rate); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.pricing.Rates())
}
