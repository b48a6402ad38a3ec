package matching_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	matchingHandler "github.com/frostguard/frostguard/internal/http/matching"
	"github.com/frostguard/frostguard/internal/matching"
)

func newRouter(repo matching.Repository) http.Handler {
	r := chi.NewRouter()
	r.Route("/matching", matchingHandler.NewHandler(matching.NewService(repo)).Routes)

	return r
}

func TestHandler_Learn(t *testing.T) {
	groupID := uuid.New()

	tests := []struct {
		name      string
		body      string
		setupMock func(m *matching.MockRepository)
		want      int
	}{
		{
			name: "learns",
			body: `{"raw_pattern":" compressor ","problem_group_id":"` + groupID.String() + `"}`,
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().CreateMapping(gomock.Any(), "compressor", groupID).Return(nil)
			},
			want: http.StatusCreated,
		},
		{
			name:      "blank pattern",
			body:      `{"raw_pattern":"  ","problem_group_id":"` + groupID.String() + `"}`,
			setupMock: func(m *matching.MockRepository) {},
			want:      http.StatusBadRequest,
		},
		{
			name:      "missing group",
			body:      `{"raw_pattern":"compressor"}`,
			setupMock: func(m *matching.MockRepository) {},
			want:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := matching.NewMockRepository(ctrl)
			tt.setupMock(repo)

			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/matching/", strings.NewReader(tt.body)))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := matching.NewMockRepository(ctrl)

	groupID := uuid.New()
	repo.EXPECT().FindMatch(gomock.Any(), "compressor ruidoso").Return(groupID, true, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matching/suggest?observation=compressor+ruidoso", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), groupID.String())
}
