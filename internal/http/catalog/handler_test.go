package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/frostguard/frostguard/internal/catalog"
	catalogHandler "github.com/frostguard/frostguard/internal/http/catalog"
)

func newRouter(repo catalog.Repository) http.Handler {
	r := chi.NewRouter()
	catalogHandler.NewHandler(catalog.NewService(repo)).Routes(r)

	return r
}

func TestHandler_CreateCostCenter(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(m *catalog.MockRepository)
		want      int
		wantCode  string
	}{
		{
			name: "upper-cases currency",
			body: `{"name":"Montevideo","currency":"uyu"}`,
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().CreateCostCenter(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *catalog.CostCenter) error {
					c.ID = uuid.New()
					return nil
				})
			},
			want:     http.StatusCreated,
			wantCode: "UYU",
		},
		{
			name:      "unknown currency",
			body:      `{"name":"Montevideo","currency":"QQQ"}`,
			setupMock: func(m *catalog.MockRepository) {},
			want:      http.StatusBadRequest,
		},
		{
			name:      "missing name",
			body:      `{"currency":"BRL"}`,
			setupMock: func(m *catalog.MockRepository) {},
			want:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := catalog.NewMockRepository(ctrl)
			tt.setupMock(repo)

			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cost-centers/", strings.NewReader(tt.body)))

			require.Equal(t, tt.want, rec.Code, rec.Body.String())

			if tt.wantCode != "" {
				var got map[string]any
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, tt.wantCode, got["currency"])
			}
		})
	}
}

func TestHandler_ListEquipment(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)

	repo.EXPECT().ListEquipment(gomock.Any()).Return([]*catalog.Equipment{
		{ID: uuid.New(), Fleet: "FG-7", Model: "Thermo King"},
	}, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/equipment/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "FG-7 - Thermo King", got[0]["label"])
}

func TestHandler_GetCostCenter_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().GetCostCenter(gomock.Any(), id).Return(nil, catalog.ErrNotFound)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cost-centers/"+id.String(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
