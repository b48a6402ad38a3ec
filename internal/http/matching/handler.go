package matching

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/http/render"
	"github.com/frostguard/frostguard/internal/matching"
)

type Handler struct {
	svc *matching.Service
}

func NewHandler(svc *matching.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/suggest", h.suggest)
	r.Post("/", h.learn)
}

type suggestResponse struct {
	Observation    string     `json:"observation"`
	ProblemGroupID *uuid.UUID `json:"problem_group_id"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	observation := r.URL.Query().Get("observation")
	if observation == "" {
		http.Error(w, "observation query parameter is required", http.StatusBadRequest)
		return
	}

	id, ok, err := h.svc.Suggest(r.Context(), observation)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := suggestResponse{Observation: observation}
	if ok {
		resp.ProblemGroupID = &id
	}

	render.JSON(w, http.StatusOK, resp)
}

type learnRequest struct {
	RawPattern     string    `json:"raw_pattern" validate:"required"`
	ProblemGroupID uuid.UUID `json:"problem_group_id" validate:"required"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := render.Decode(r, &req); err != nil {
		render.Invalid(w, err)
		return
	}

	if req.ProblemGroupID == uuid.Nil {
		http.Error(w, "raw_pattern and problem_group_id are required", http.StatusBadRequest)
		return
	}

	if err := h.svc.Learn(r.Context(), req.RawPattern, req.ProblemGroupID); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
