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

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/catalog/store"
	"github.com/frostguard/frostguard/internal/currency"
)

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_CreateCostCenter(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cost_centers (name, currency_code)`)).
		WithArgs("Montevideo", "UYU").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), now))

	c := &catalog.CostCenter{Name: "Montevideo", Currency: currency.UYU}
	require.NoError(t, s.CreateCostCenter(context.Background(), c))

	assert.Equal(t, id, c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetCostCenter_NotFound(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cost_centers WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "currency_code", "created_at"}))

	_, err := s.GetCostCenter(context.Background(), id)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestStore_ListCostCenters(t *testing.T) {
	s, mock := newStore(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "currency_code", "created_at"}).
		AddRow(uuid.NewString(), "Lima", "PEN", now).
		AddRow(uuid.NewString(), "Sao Paulo", "BRL", now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cost_centers ORDER BY name ASC`)).WillReturnRows(rows)

	got, err := s.ListCostCenters(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, currency.PEN, got[0].Currency)
	assert.Equal(t, "Sao Paulo", got[1].Name)
}

func TestStore_ListEquipment(t *testing.T) {
	s, mock := newStore(t)

	rows := sqlmock.NewRows([]string{"id", "fleet", "model", "brand", "year", "created_at"}).
		AddRow(uuid.NewString(), "FG-001", "X-430", "Thermo King", 2019, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM equipment ORDER BY fleet ASC`)).WillReturnRows(rows)

	got, err := s.ListEquipment(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "FG-001 - X-430", got[0].Label())
	assert.Equal(t, 2019, got[0].Year)
}
