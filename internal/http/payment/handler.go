package payment

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frostguard/frostguard/internal/auth"
	"github.com/frostguard/frostguard/internal/http/render"
	"github.com/frostguard/frostguard/internal/payment"
)

type Handler struct {
	svc *payment.Service
}

func NewHandler(svc *payment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/status", h.updateStatus)
}

type createPaymentRequest struct {
	MaintenanceID uuid.UUID       `json:"maintenance_id" validate:"required"`
	CostCenterID  uuid.UUID       `json:"cost_center_id" validate:"required"`
	InvoiceNumber string          `json:"invoice_number"`
	Condition     string          `json:"condition"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := render.Decode(r, &req); err != nil {
		render.Invalid(w, err)
		return
	}

	due, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		http.Error(w, "due_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), payment.CreateParams{
		MaintenanceID: req.MaintenanceID,
		CostCenterID:  req.CostCenterID,
		InvoiceNumber: req.InvoiceNumber,
		Condition:     req.Condition,
		Amount:        req.Amount,
		DueDate:       due,
		CreatedBy:     auth.UserIDPtr(r.Context()),
	})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := payment.ListFilter{}
	q := r.URL.Query()

	if s := q.Get("status"); s != "" {
		filter.Status = new(payment.Status(s))
	}

	for name, dst := range map[string]**uuid.UUID{
		"maintenance_id": &filter.MaintenanceID,
		"cost_center_id": &filter.CostCenterID,
	} {
		s := q.Get(name)
		if s == "" {
			continue
		}

		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid "+name, http.StatusBadRequest)
			return
		}

		*dst = &id
	}

	var err error

	if filter.StartDate, err = render.DateParam(r, "start_date"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if filter.EndDate, err = render.DateParam(r, "end_date"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ps, err := h.svc.List(r.Context(), filter)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponseList(ps))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status payment.Status `json:"status" validate:"required"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := render.Decode(r, &req); err != nil {
		render.Invalid(w, err)
		return
	}

	p, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(p))
}
