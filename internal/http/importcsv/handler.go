package importcsv

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/frostguard/frostguard/internal/auth"
	"github.com/frostguard/frostguard/internal/http/render"
	"github.com/frostguard/frostguard/internal/importer"
	"github.com/frostguard/frostguard/internal/payment"
)

type Handler struct {
	importSvc  *importer.Service
	paymentSvc *payment.Service
}

func NewHandler(importSvc *importer.Service, paymentSvc *payment.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		paymentSvc: paymentSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type rejectionResponse struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type importResponse struct {
	Imported int                 `json:"imported"`
	Rejected []rejectionResponse `json:"rejected"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Import(importer.Format(r.FormValue("format")), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.paymentSvc.ImportBatch(r.Context(), rows, auth.UserIDPtr(r.Context()))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := importResponse{
		Imported: len(result.Imported),
		Rejected: make([]rejectionResponse, 0, len(result.Rejected)),
	}
	for _, rej := range result.Rejected {
		resp.Rejected = append(resp.Rejected, rejectionResponse{Line: rej.Line, Reason: rej.Reason})
	}

	status := http.StatusCreated
	if resp.Imported == 0 && len(resp.Rejected) > 0 {
		status = http.StatusUnprocessableEntity
	}

	render.JSON(w, status, resp)
}
