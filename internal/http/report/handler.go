package report

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/frostguard/frostguard/internal/http/render"
	"github.com/frostguard/frostguard/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.names)
	r.Get("/{name}", h.run)
}

func (h *Handler) DashboardRoutes(r chi.Router) {
	r.Get("/", h.dashboard)
}

// ParseParams reads the from, to and limit query parameters.
func ParseParams(r *http.Request) (report.Params, error) {
	var (
		params report.Params
		err    error
	)

	if params.From, err = render.DateParam(r, "from"); err != nil {
		return params, err
	}

	if params.To, err = render.DateParam(r, "to"); err != nil {
		return params, err
	}

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return params, errors.New("limit must be a non-negative integer")
		}

		params.Limit = n
	}

	return params, nil
}

type namesResponse struct {
	Currency string        `json:"currency"`
	Reports  []report.Name `json:"reports"`
}

func (h *Handler) names(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, namesResponse{Currency: h.svc.Currency().String(), Reports: report.Names()})
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	params, err := ParseParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.Run(r.Context(), report.Name(chi.URLParam(r, "name")), params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(res))
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	params, err := ParseParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	widgets, err := h.svc.Dashboard(r.Context(), params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := make([]widgetResponse, len(widgets))
	for i, wg := range widgets {
		resp[i] = toWidgetResponse(wg)
	}

	render.JSON(w, http.StatusOK, resp)
}
