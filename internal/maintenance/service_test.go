package maintenance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/frostguard/frostguard/internal/event"
	"github.com/frostguard/frostguard/internal/maintenance"
)

type recorder struct {
	changes []event.Change
}

func (r *recorder) Publish(_ context.Context, c event.Change) {
	r.changes = append(r.changes, c)
}

func TestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to maintenance.Status
		want     bool
	}{
		{maintenance.StatusInTreatment, maintenance.StatusSentToWorkshop, true},
		{maintenance.StatusInMaintenance, maintenance.StatusInTreatment, true},
		{maintenance.StatusSentToWorkshop, maintenance.StatusFinished, true},
		{maintenance.StatusFinished, maintenance.StatusInMaintenance, false},
		{maintenance.StatusFinished, maintenance.StatusFinished, false},
		{maintenance.StatusInTreatment, "em_tratativa", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestService_Create(t *testing.T) {
	equipmentID := uuid.New()
	groupID := uuid.New()
	suggestedID := uuid.New()

	type testCase struct {
		name          string
		params        maintenance.CreateParams
		setupMock     func(m *maintenance.MockRepository, s *maintenance.MockSuggester)
		wantStatus    maintenance.Status
		wantGroup     *uuid.UUID
		wantErr       error
		wantPublished int
	}

	tests := []testCase{
		{
			name:   "DefaultsToInTreatment",
			params: maintenance.CreateParams{EquipmentID: &equipmentID, ProblemGroupID: &groupID},
			setupMock: func(m *maintenance.MockRepository, _ *maintenance.MockSuggester) {
				m.EXPECT().CreateMaintenance(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mt *maintenance.Maintenance) error {
						mt.ID = uuid.New()
						return nil
					})
			},
			wantStatus:    maintenance.StatusInTreatment,
			wantGroup:     &groupID,
			wantPublished: 1,
		},
		{
			name:   "SuggestsProblemGroup",
			params: maintenance.CreateParams{EquipmentID: &equipmentID, Observation: "compressor sem gás"},
			setupMock: func(m *maintenance.MockRepository, s *maintenance.MockSuggester) {
				s.EXPECT().Suggest(gomock.Any(), "compressor sem gás").Return(suggestedID, true, nil)
				m.EXPECT().CreateMaintenance(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus:    maintenance.StatusInTreatment,
			wantGroup:     &suggestedID,
			wantPublished: 1,
		},
		{
			name:   "SuggestionFailureIsNotFatal",
			params: maintenance.CreateParams{Observation: "barulho"},
			setupMock: func(m *maintenance.MockRepository, s *maintenance.MockSuggester) {
				s.EXPECT().Suggest(gomock.Any(), "barulho").Return(uuid.Nil, false, errors.New("db error"))
				m.EXPECT().CreateMaintenance(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus:    maintenance.StatusInTreatment,
			wantPublished: 1,
		},
		{
			name:    "FinishedNeedsEquipment",
			params:  maintenance.CreateParams{Status: maintenance.StatusFinished, ProblemGroupID: &groupID},
			wantErr: maintenance.ErrIncomplete,
		},
		{
			name:    "UnknownStatus",
			params:  maintenance.CreateParams{Status: "Finalizada"},
			wantErr: maintenance.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := maintenance.NewMockRepository(ctrl)
			suggester := maintenance.NewMockSuggester(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, suggester)
			}

			events := &recorder{}
			svc := maintenance.NewService(repo, suggester, events)

			got, err := svc.Create(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, events.changes)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantGroup, got.ProblemGroupID)
			assert.False(t, got.ProblemDate.IsZero())
			require.Len(t, events.changes, tt.wantPublished)
			assert.Equal(t, event.ActionInsert, events.changes[0].Action)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	id := uuid.New()
	equipmentID := uuid.New()
	groupID := uuid.New()

	type testCase struct {
		name      string
		status    maintenance.Status
		current   *maintenance.Maintenance
		setupMock func(m *maintenance.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:    "MoveBetweenStages",
			status:  maintenance.StatusInTreatment,
			current: &maintenance.Maintenance{ID: id, Status: maintenance.StatusInMaintenance},
			setupMock: func(m *maintenance.MockRepository) {
				m.EXPECT().UpdateStatus(gomock.Any(), id, maintenance.StatusInTreatment).Return(nil)
			},
		},
		{
			name:   "Finish",
			status: maintenance.StatusFinished,
			current: &maintenance.Maintenance{
				ID: id, Status: maintenance.StatusInMaintenance, EquipmentID: &equipmentID, ProblemGroupID: &groupID,
			},
			setupMock: func(m *maintenance.MockRepository) {
				m.EXPECT().UpdateStatus(gomock.Any(), id, maintenance.StatusFinished).Return(nil)
			},
		},
		{
			name:    "FinishIncomplete",
			status:  maintenance.StatusFinished,
			current: &maintenance.Maintenance{ID: id, Status: maintenance.StatusInMaintenance, EquipmentID: &equipmentID},
			wantErr: maintenance.ErrIncomplete,
		},
		{
			name:    "ReopenFinished",
			status:  maintenance.StatusInMaintenance,
			current: &maintenance.Maintenance{ID: id, Status: maintenance.StatusFinished},
			wantErr: maintenance.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := maintenance.NewMockRepository(ctrl)
			repo.EXPECT().GetMaintenance(gomock.Any(), id).Return(tt.current, nil)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			events := &recorder{}
			err := maintenance.NewService(repo, nil, events).UpdateStatus(context.Background(), id, tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, events.changes)

				return
			}

			require.NoError(t, err)
			require.Len(t, events.changes, 1)
			assert.Equal(t, id, events.changes[0].ID)
		})
	}
}

func TestService_Update_KeepsFinishedComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := maintenance.NewMockRepository(ctrl)

	id := uuid.New()
	equipmentID := uuid.New()
	groupID := uuid.New()

	repo.EXPECT().GetMaintenance(gomock.Any(), id).Return(&maintenance.Maintenance{
		ID: id, Status: maintenance.StatusFinished, EquipmentID: &equipmentID, ProblemGroupID: &groupID,
		ProblemDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}, nil)

	svc := maintenance.NewService(repo, nil, nil)

	_, err := svc.Update(context.Background(), id, maintenance.UpdateParams{EquipmentID: &equipmentID})
	assert.ErrorIs(t, err, maintenance.ErrIncomplete)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := maintenance.NewMockRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().DeleteMaintenance(gomock.Any(), id).Return(nil)

	events := &recorder{}
	require.NoError(t, maintenance.NewService(repo, nil, events).Delete(context.Background(), id))

	require.Len(t, events.changes, 1)
	assert.Equal(t, event.ActionDelete, events.changes[0].Action)
}
