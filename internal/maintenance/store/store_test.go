package store_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostguard/frostguard/internal/maintenance"
	"github.com/frostguard/frostguard/internal/maintenance/store"
)

var columns = []string{
	"id", "equipment_id", "problem_group_id", "workshop_id", "trailer", "observation", "status",
	"problem_date", "created_by", "created_at", "updated_at",
}

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_ListMaintenances_Filters(t *testing.T) {
	s, mock := newStore(t)

	status := maintenance.StatusFinished
	equipmentID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columns).
		AddRow(uuid.NewString(), equipmentID.String(), nil, nil, "R-12", "compressor", "finished",
			start, nil, start, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE 1 = 1 AND status = $1 AND equipment_id = $2 AND problem_date >= $3 ORDER BY`)).
		WithArgs("finished", equipmentID, start).
		WillReturnRows(rows)

	got, err := s.ListMaintenances(context.Background(), maintenance.ListFilter{
		Status:      &status,
		EquipmentID: &equipmentID,
		StartDate:   &start,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, maintenance.StatusFinished, got[0].Status)
	require.NotNil(t, got[0].EquipmentID)
	assert.Equal(t, equipmentID, *got[0].EquipmentID)
	assert.Nil(t, got[0].ProblemGroupID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetMaintenance_NotFound(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM maintenances WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := s.GetMaintenance(context.Background(), id)
	assert.ErrorIs(t, err, maintenance.ErrNotFound)
}

func TestStore_UpdateStatus_FinishedIsTerminal(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE maintenances`)).
		WithArgs("in_maintenance", id, "finished").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdateStatus(context.Background(), id, maintenance.StatusInMaintenance)
	assert.ErrorIs(t, err, maintenance.ErrInvalidTransition)
}

func TestStore_DeleteMaintenance(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM maintenances WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.DeleteMaintenance(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
