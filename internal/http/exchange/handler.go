package exchange

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/exchange"
	"github.com/frostguard/frostguard/internal/http/render"
)

type Handler struct {
	provider *exchange.Provider
}

func NewHandler(provider *exchange.Provider) *Handler {
	return &Handler{provider: provider}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/rates/{currency}", h.rate)
}

type rateResponse struct {
	Base   currency.Code   `json:"base"`
	Target currency.Code   `json:"target"`
	Rate   decimal.Decimal `json:"rate"`
	Source exchange.Source `json:"source"`
}

func (h *Handler) rate(w http.ResponseWriter, r *http.Request) {
	code, err := currency.ParseCode(chi.URLParam(r, "currency"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := h.provider.Lookup(r.Context(), code)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	render.JSON(w, http.StatusOK, rateResponse(q))
}
