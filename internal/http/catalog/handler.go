package catalog

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/http/render"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/equipment", func(r chi.Router) {
		r.Post("/", h.createEquipment)
		r.Get("/", h.listEquipment)
		r.Get("/{id}", h.getEquipment)
	})

	r.Route("/problem-groups", func(r chi.Router) {
		r.Post("/", h.createProblemGroup)
		r.Get("/", h.listProblemGroups)
	})

	r.Route("/cost-centers", func(r chi.Router) {
		r.Post("/", h.createCostCenter)
		r.Get("/", h.listCostCenters)
		r.Get("/{id}", h.getCostCenter)
	})

	r.Route("/workshops", func(r chi.Router) {
		r.Post("/", h.createWorkshop)
		r.Get("/", h.listWorkshops)
	})
}

type equipmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Fleet     string    `json:"fleet"`
	Model     string    `json:"model,omitempty"`
	Brand     string    `json:"brand,omitempty"`
	Year      int       `json:"year,omitempty"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

func toEquipmentResponse(e *catalog.Equipment) equipmentResponse {
	return equipmentResponse{
		ID:        e.ID,
		Fleet:     e.Fleet,
		Model:     e.Model,
		Brand:     e.Brand,
		Year:      e.Year,
		Label:     e.Label(),
		CreatedAt: e.CreatedAt,
	}
}

type createEquipmentRequest struct {
	Fleet string `json:"fleet" validate:"required"`
	Model string `json:"model"`
	Brand string `json:"brand"`
	Year  int    `json:"year" validate:"gte=0"`
}

func (h *Handler) createEquipment(w http.ResponseWriter, r *http.Request) {
	var req createEquipmentRequest
	if err := render.Decode(r, &req); err != nil {
		render.Invalid(w, err)
		return
	}

	e, err := h.svc.CreateEquipment(r.Context(), catalog.EquipmentParams(req))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toEquipmentResponse(e))
}

func (h *Handler) listEquipment(w http.ResponseWriter, r *http.Request) {
	es, err := h.svc.ListEquipment(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := make([]equipmentResponse, len(es))
	for i, e := range es {
		resp[i] = toEquipmentResponse(e)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.GetEquipment(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toEquipmentResponse(e))
}

type problemGroupResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *Handler) createProblemGroup(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := render.Decode(r, &req); err != nil {
		render.Invalid(w, err)
		return
	}

	g, err := h.svc.CreateProblemGroup(r.Context(), req.Name)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, problemGroupResponse{ID: g.ID, Name: g.Name})
}

func (h *Handler) listProblemGroups(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.ListProblemGroups(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := make([]problemGroupResponse, len(gs))
	for i, g := range gs {
		resp[i] = problemGroupResponse{ID: g.ID, Name: g.Name}
	}

	render.JSON(w, http.StatusOK, resp)
}

type costCenterResponse struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Currency currency.Code `json:"currency"`
}

type createCostCenterRequest struct {
	Name     string `json:"name" validate:"required"`
	Currency string `json:"currency" validate:"required"`
}

func (h *Handler) createCostCenter(w http.ResponseWriter, r *http.Request) {
	var req createCostCenterRequest
	if err := render.Decode(r, &req); err != nil {
		render.Invalid(w, err)
		return
	}

	c, err := h.svc.CreateCostCenter(r.Context(), req.Name, req.Currency)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, costCenterResponse{ID: c.ID, Name: c.Name, Currency: c.Currency})
}

func (h *Handler) listCostCenters(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.ListCostCenters(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := make([]costCenterResponse, len(cs))
	for i, c := range cs {
		resp[i] = costCenterResponse{ID: c.ID, Name: c.Name, Currency: c.Currency}
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getCostCenter(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.GetCostCenter(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, costCenterResponse{ID: c.ID, Name: c.Name, Currency: c.Currency})
}

type workshopResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address,omitempty"`
	Phone   string    `json:"phone,omitempty"`
}

type createWorkshopRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (h *Handler) createWorkshop(w http.ResponseWriter, r *http.Request) {
	var req createWorkshopRequest
	if err := render.Decode(r, &req); err != nil {
		render.Invalid(w, err)
		return
	}

	ws, err := h.svc.CreateWorkshop(r.Context(), catalog.WorkshopParams(req))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, workshopResponse{ID: ws.ID, Name: ws.Name, Address: ws.Address, Phone: ws.Phone})
}

func (h *Handler) listWorkshops(w http.ResponseWriter, r *http.Request) {
	wss, err := h.svc.ListWorkshops(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := make([]workshopResponse, len(wss))
	for i, ws := range wss {
		resp[i] = workshopResponse{ID: ws.ID, Name: ws.Name, Address: ws.Address, Phone: ws.Phone}
	}

	render.JSON(w, http.StatusOK, resp)
}
