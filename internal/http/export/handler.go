package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/frostguard/frostguard/internal/export"
	"github.com/frostguard/frostguard/internal/http/render"
	"github.com/frostguard/frostguard/internal/report"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/reports", h.exportReport)
}

type exportRequest struct {
	Report report.Name   `json:"report" validate:"required"`
	Format export.Format `json:"format"`
	From   string        `json:"from,omitempty"`
	To     string        `json:"to,omitempty"`
	Limit  int           `json:"limit,omitempty" validate:"gte=0"`
}

func (req exportRequest) params() (report.Params, error) {
	params := report.Params{Limit: req.Limit}

	for _, d := range []struct {
		raw string
		dst **time.Time
	}{
		{req.From, &params.From},
		{req.To, &params.To},
	} {
		if d.raw == "" {
			continue
		}

		t, err := time.Parse(time.DateOnly, d.raw)
		if err != nil {
			return params, fmt.Errorf("invalid date %q, want YYYY-MM-DD", d.raw)
		}

		*d.dst = &t
	}

	return params, nil
}

func (h *Handler) exportReport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := render.Decode(r, &req); err != nil {
		render.Invalid(w, err)
		return
	}

	if req.Format == "" {
		req.Format = export.FormatText
	}

	params, err := req.params()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.svc.Export(r.Context(), req.Report, req.Format, params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))

	if _, err := w.Write(doc.Body); err != nil {
		slog.Error("failed to write export", "report", req.Report, "error", err)
	}
}
