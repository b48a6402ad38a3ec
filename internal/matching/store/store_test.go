package store_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostguard/frostguard/internal/matching/store"
)

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

// Patterns are matched as plain substrings, so % and _ in a learned pattern are literal.
const findQuery = `FROM description_mappings WHERE strpos(lower($1), lower(raw_pattern)) > 0`

func TestStore_FindMatch(t *testing.T) {
	groupID := uuid.New()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantID  uuid.UUID
		wantOK  bool
		wantErr bool
	}{
		{
			name: "match",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs("compressor não liga").
					WillReturnRows(sqlmock.NewRows([]string{"problem_group_id"}).AddRow(groupID.String()))
			},
			wantID: groupID,
			wantOK: true,
		},
		{
			name: "no match",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs("compressor não liga").
					WillReturnRows(sqlmock.NewRows([]string{"problem_group_id"}))
			},
			wantID: uuid.Nil,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs("compressor não liga").
					WillReturnError(errors.New("connection reset"))
			},
			wantID:  uuid.Nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)
			tt.setup(mock)

			id, ok, err := s.FindMatch(context.Background(), "compressor não liga")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_CreateMapping(t *testing.T) {
	s, mock := newStore(t)

	groupID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO description_mappings (raw_pattern, problem_group_id, created_at)`)).
		WithArgs("compressor", groupID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.CreateMapping(context.Background(), "compressor", groupID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
