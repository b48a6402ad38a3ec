package maintenance

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/auth"
	"github.com/frostguard/frostguard/internal/http/render"
	"github.com/frostguard/frostguard/internal/maintenance"
)

type Handler struct {
	svc *maintenance.Service
}

func NewHandler(svc *maintenance.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/status", h.updateStatus)
	r.Post("/{id}/complete", h.complete)
}

type maintenanceRequest struct {
	EquipmentID    *uuid.UUID         `json:"equipment_id,omitempty"`
	ProblemGroupID *uuid.UUID         `json:"problem_group_id,omitempty"`
	WorkshopID     *uuid.UUID         `json:"workshop_id,omitempty"`
	Trailer        string             `json:"trailer"`
	Observation    string             `json:"observation"`
	Status         maintenance.Status `json:"status,omitempty"`
	ProblemDate    string             `json:"problem_date,omitempty"`
}

func (req maintenanceRequest) problemDate() (time.Time, error) {
	if req.ProblemDate == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.DateOnly, req.ProblemDate)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req maintenanceRequest
	if err := render.Decode(r, &req); err != nil {
		render.Invalid(w, err)
		return
	}

	date, err := req.problemDate()
	if err != nil {
		http.Error(w, "problem_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	m, err := h.svc.Create(r.Context(), maintenance.CreateParams{
		EquipmentID:    req.EquipmentID,
		ProblemGroupID: req.ProblemGroupID,
		WorkshopID:     req.WorkshopID,
		Trailer:        req.Trailer,
		Observation:    req.Observation,
		Status:         req.Status,
		ProblemDate:    date,
		CreatedBy:      auth.UserIDPtr(r.Context()),
	})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(m))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := maintenance.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(maintenance.Status(s))
	}

	if s := r.URL.Query().Get("equipment_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid equipment_id", http.StatusBadRequest)
			return
		}

		filter.EquipmentID = &id
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

	ms, err := h.svc.List(r.Context(), filter)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponseList(ms))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(m))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req maintenanceRequest
	if err := render.Decode(r, &req); err != nil {
		render.Invalid(w, err)
		return
	}

	date, err := req.problemDate()
	if err != nil {
		http.Error(w, "problem_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	m, err := h.svc.Update(r.Context(), id, maintenance.UpdateParams{
		EquipmentID:    req.EquipmentID,
		ProblemGroupID: req.ProblemGroupID,
		WorkshopID:     req.WorkshopID,
		Trailer:        req.Trailer,
		Observation:    req.Observation,
		ProblemDate:    date,
	})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(m))
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
	Status maintenance.Status `json:"status" validate:"required"`
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

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Complete(r.Context(), id); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
