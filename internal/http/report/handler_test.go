package report_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/currency"
	reportHandler "github.com/frostguard/frostguard/internal/http/report"
	"github.com/frostguard/frostguard/internal/maintenance"
	"github.com/frostguard/frostguard/internal/payment"
	"github.com/frostguard/frostguard/internal/report"
)

func newRouter(repo report.Repository) http.Handler {
	h := reportHandler.NewHandler(report.NewService(repo, currency.NewNormalizer(nil, currency.BRL)))

	r := chi.NewRouter()
	r.Route("/reports", h.Routes)
	r.Route("/dashboard", h.DashboardRoutes)

	return r
}

func TestHandler_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := report.NewMockRepository(ctrl)

	center := &catalog.CostCenter{ID: uuid.New(), Name: "Sao Paulo", Currency: currency.BRL}
	m := &maintenance.Maintenance{ID: uuid.New(), Status: maintenance.StatusFinished}
	settled := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().ListPayments(gomock.Any()).Return([]*payment.Payment{
		{ID: uuid.New(), MaintenanceID: m.ID, CostCenterID: center.ID, Amount: decimal.NewFromInt(80),
			Status: payment.StatusSettled, DueDate: settled, SettledDate: &settled},
	}, nil)
	repo.EXPECT().ListMaintenances(gomock.Any()).Return([]*maintenance.Maintenance{m}, nil)
	repo.EXPECT().ListCostCenters(gomock.Any()).Return([]*catalog.CostCenter{center}, nil)
	repo.EXPECT().ListEquipment(gomock.Any()).Return(nil, nil)
	repo.EXPECT().ListProblemGroups(gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/cost-by-problem-group?from=2024-01-01", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got struct {
		Currency string `json:"currency"`
		Total    string `json:"total"`
		Buckets  []struct {
			Label string `json:"label"`
			Count int    `json:"count"`
		} `json:"buckets"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

	assert.Equal(t, "BRL", got.Currency)
	assert.Equal(t, "80", got.Total)
	require.Len(t, got.Buckets, 1)
	assert.Equal(t, "Sem grupo", got.Buckets[0].Label)
}

func TestHandler_Run_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "bad date", target: "/reports/total-cost?from=01-01-2024"},
		{name: "bad limit", target: "/reports/top-costly-equipment?limit=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			rec := httptest.NewRecorder()
			newRouter(report.NewMockRepository(ctrl)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Run_UnknownReport(t *testing.T) {
	ctrl := gomock.NewController(t)

	rec := httptest.NewRecorder()
	newRouter(report.NewMockRepository(ctrl)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/profit", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown report")
}

func TestHandler_Dashboard_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := report.NewMockRepository(ctrl)

	repo.EXPECT().ListPayments(gomock.Any()).Return(nil, errors.New("timeout")).AnyTimes()
	repo.EXPECT().ListMaintenances(gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().ListCostCenters(gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().ListEquipment(gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().ListProblemGroups(gomock.Any()).Return(nil, nil).AnyTimes()

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []struct {
		Report string          `json:"report"`
		Result json.RawMessage `json:"result"`
		Error  string          `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, len(report.Names()))

	byName := make(map[string]int)
	for i, w := range got {
		byName[w.Report] = i
	}

	assert.NotEmpty(t, got[byName["total-cost"]].Error)
	assert.Empty(t, got[byName["finished-maintenances-by-month"]].Error)
	assert.NotEmpty(t, got[byName["finished-maintenances-by-month"]].Result)
}

func TestHandler_Names(t *testing.T) {
	ctrl := gomock.NewController(t)

	rec := httptest.NewRecorder()
	newRouter(report.NewMockRepository(ctrl)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cost-by-month"`)
}
