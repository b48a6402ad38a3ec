package store_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/payment"
	"github.com/frostguard/frostguard/internal/report/store"
)

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_ListPayments(t *testing.T) {
	s, mock := newStore(t)

	settled := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "maintenance_id", "cost_center_id", "amount", "status", "due_date", "settled_date"}).
		AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), "100.50", "settled", due, settled).
		AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), "7", "pending", due, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM payments`)).WillReturnRows(rows)

	got, err := s.ListPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, decimal.RequireFromString("100.5").Equal(got[0].Amount))
	assert.Equal(t, payment.StatusSettled, got[0].Status)
	require.NotNil(t, got[0].SettledDate)
	assert.Equal(t, settled, *got[0].SettledDate)
	assert.Nil(t, got[1].SettledDate)
}

func TestStore_ListCostCenters(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cost_centers`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "currency_code"}).AddRow(uuid.NewString(), "Asunción", "PYG"))

	got, err := s.ListCostCenters(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, currency.PYG, got[0].Currency)
}

func TestStore_QueryFailure(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM maintenances`)).WillReturnError(errors.New("connection reset"))

	_, err := s.ListMaintenances(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing maintenances")
}
