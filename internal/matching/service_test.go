package matching_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/frostguard/frostguard/internal/matching"
)

func TestService_Suggest(t *testing.T) {
	groupID := uuid.New()

	type testCase struct {
		name        string
		observation string
		setupMock   func(m *matching.MockRepository)
		wantID      uuid.UUID
		wantOK      bool
		wantErr     bool
	}

	tests := []testCase{
		{
			name:        "Match",
			observation: "Compressor parou no trajeto",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindMatch(gomock.Any(), "Compressor parou no trajeto").Return(groupID, true, nil)
			},
			wantID: groupID,
			wantOK: true,
		},
		{
			name:        "NoMatch",
			observation: "pneu furado",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindMatch(gomock.Any(), "pneu furado").Return(uuid.Nil, false, nil)
			},
		},
		{
			name:        "BlankSkipsRepository",
			observation: "   ",
		},
		{
			name:        "RepoError",
			observation: "motor",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindMatch(gomock.Any(), "motor").Return(uuid.Nil, false, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := matching.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, ok, err := matching.NewService(repo).Suggest(context.Background(), tt.observation)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, got)
		})
	}
}

func TestService_Learn(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := matching.NewMockRepository(ctrl)

	groupID := uuid.New()
	repo.EXPECT().CreateMapping(gomock.Any(), "compressor", groupID).Return(nil)

	svc := matching.NewService(repo)

	require.NoError(t, svc.Learn(context.Background(), " compressor ", groupID))
	assert.ErrorIs(t, svc.Learn(context.Background(), "", groupID), matching.ErrEmptyPattern)
}
