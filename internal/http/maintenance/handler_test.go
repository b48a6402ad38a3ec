package maintenance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/frostguard/frostguard/internal/auth"
	maintenanceHandler "github.com/frostguard/frostguard/internal/http/maintenance"
	"github.com/frostguard/frostguard/internal/maintenance"
)

func newRouter(repo maintenance.Repository) http.Handler {
	r := chi.NewRouter()
	r.Route("/maintenances", maintenanceHandler.NewHandler(maintenance.NewService(repo, nil, nil)).Routes)

	return r
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := maintenance.NewMockRepository(ctrl)

	userID := uuid.New()
	equipmentID := uuid.New()

	repo.EXPECT().CreateMaintenance(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *maintenance.Maintenance) error {
		assert.Equal(t, &userID, m.CreatedBy)
		assert.Equal(t, maintenance.StatusInTreatment, m.Status)
		assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), m.ProblemDate)

		m.ID = uuid.New()

		return nil
	})

	body := `{"equipment_id":"` + equipmentID.String() + `","trailer":"TR-9","problem_date":"2024-03-04"}`
	req := httptest.NewRequest(http.MethodPost, "/maintenances/", strings.NewReader(body))
	req = req.WithContext(auth.WithUserID(req.Context(), userID))

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "in_treatment", got["status"])
	assert.Equal(t, "2024-03-04", got["problem_date"])
	assert.Equal(t, equipmentID.String(), got["equipment_id"])
}

func TestHandler_UpdateStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		body      string
		setupMock func(m *maintenance.MockRepository)
		want      int
	}{
		{
			name: "moves between in-progress stages",
			body: `{"status":"in_maintenance"}`,
			setupMock: func(m *maintenance.MockRepository) {
				m.EXPECT().GetMaintenance(gomock.Any(), id).Return(&maintenance.Maintenance{ID: id, Status: maintenance.StatusSentToWorkshop}, nil)
				m.EXPECT().UpdateStatus(gomock.Any(), id, maintenance.StatusInMaintenance).Return(nil)
			},
			want: http.StatusNoContent,
		},
		{
			name: "finished is terminal",
			body: `{"status":"in_treatment"}`,
			setupMock: func(m *maintenance.MockRepository) {
				m.EXPECT().GetMaintenance(gomock.Any(), id).Return(&maintenance.Maintenance{ID: id, Status: maintenance.StatusFinished}, nil)
			},
			want: http.StatusConflict,
		},
		{
			name:      "unknown status",
			body:      `{"status":"lost"}`,
			setupMock: func(m *maintenance.MockRepository) {},
			want:      http.StatusBadRequest,
		},
		{
			name: "missing",
			body: `{"status":"finished"}`,
			setupMock: func(m *maintenance.MockRepository) {
				m.EXPECT().GetMaintenance(gomock.Any(), id).Return(nil, maintenance.ErrNotFound)
			},
			want: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := maintenance.NewMockRepository(ctrl)
			tt.setupMock(repo)

			req := httptest.NewRequest(http.MethodPatch, "/maintenances/"+id.String()+"/status", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_List_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := maintenance.NewMockRepository(ctrl)

	repo.EXPECT().ListMaintenances(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f maintenance.ListFilter) ([]*maintenance.Maintenance, error) {
			require.NotNil(t, f.Status)
			assert.Equal(t, maintenance.StatusFinished, *f.Status)
			require.NotNil(t, f.StartDate)
			assert.Nil(t, f.EndDate)

			return []*maintenance.Maintenance{{ID: uuid.New(), Status: maintenance.StatusFinished}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/maintenances/?status=finished&start_date=2024-01-01", nil)
	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}

func TestHandler_Get_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)

	rec := httptest.NewRecorder()
	newRouter(maintenance.NewMockRepository(ctrl)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/maintenances/nope", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
