// Package render writes JSON responses and maps domain errors to status codes.
package render

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/frostguard/frostguard/internal/auth"
	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/export"
	"github.com/frostguard/frostguard/internal/maintenance"
	"github.com/frostguard/frostguard/internal/matching"
	"github.com/frostguard/frostguard/internal/payment"
	"github.com/frostguard/frostguard/internal/report"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

var statuses = []struct {
	status int
	errs   []error
}{
	{http.StatusNotFound, []error{
		catalog.ErrNotFound, maintenance.ErrNotFound, payment.ErrNotFound, auth.ErrNotFound,
		report.ErrUnknownReport,
	}},
	{http.StatusConflict, []error{
		maintenance.ErrInvalidTransition, payment.ErrInvalidTransition, payment.ErrMaintenanceNotFinished,
		auth.ErrEmailTaken,
	}},
	{http.StatusUnauthorized, []error{auth.ErrInvalidCredentials}},
	{http.StatusBadRequest, []error{
		catalog.ErrInvalid, currency.ErrInvalidCode,
		maintenance.ErrInvalidStatus, maintenance.ErrIncomplete,
		payment.ErrInvalidStatus, payment.ErrInvalidAmount,
		matching.ErrEmptyPattern, export.ErrUnsupportedFormat,
		auth.ErrInvalidEmail, auth.ErrWeakPassword, auth.ErrInvalidToken,
	}},
}

// Status returns the HTTP status for err, 500 when it is not a known domain error.
func Status(err error) int {
	for _, s := range statuses {
		for _, target := range s.errs {
			if errors.Is(err, target) {
				return s.status
			}
		}
	}

	return http.StatusInternalServerError
}

// Error writes err with its mapped status. Unknown errors are logged and hidden.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", status)

		return
	}

	http.Error(w, err.Error(), status)
}

// DateParam parses an optional YYYY-MM-DD query parameter.
func DateParam(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, errors.New(name + " must be YYYY-MM-DD")
	}

	return &t, nil
}
