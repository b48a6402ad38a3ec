package report_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/maintenance"
	"github.com/frostguard/frostguard/internal/payment"
	"github.com/frostguard/frostguard/internal/report"
)

func TestJoin_SumType(t *testing.T) {
	m := &maintenance.Maintenance{ID: uuid.New(), Status: maintenance.StatusFinished}
	cc := &catalog.CostCenter{ID: uuid.New(), Currency: currency.BRL}

	ok := &payment.Payment{ID: uuid.New(), MaintenanceID: m.ID, CostCenterID: cc.ID}
	noMaintenance := &payment.Payment{ID: uuid.New(), MaintenanceID: uuid.New(), CostCenterID: cc.ID}
	noCenter := &payment.Payment{ID: uuid.New(), MaintenanceID: m.ID, CostCenterID: uuid.New()}

	refs := report.NewReferences([]*maintenance.Maintenance{m}, []*catalog.CostCenter{cc}, nil, nil)

	results := report.Join([]*payment.Payment{ok, noMaintenance, noCenter}, refs)
	require.Len(t, results, 3)

	resolved, isResolved := results[0].(report.Resolved)
	require.True(t, isResolved)
	assert.Same(t, m, resolved.Row.Maintenance)
	assert.Nil(t, resolved.Row.Equipment)

	missing, isMissing := results[1].(report.Missing)
	require.True(t, isMissing)
	assert.Equal(t, report.MissingMaintenance, missing.Reason)
	assert.Equal(t, noMaintenance.ID, missing.PaymentID)

	missing, isMissing = results[2].(report.Missing)
	require.True(t, isMissing)
	assert.Equal(t, report.MissingCostCenter, missing.Reason)
}

func TestSelect_Predicates(t *testing.T) {
	finished := &maintenance.Maintenance{ID: uuid.New(), Status: maintenance.StatusFinished}
	open := &maintenance.Maintenance{ID: uuid.New(), Status: maintenance.StatusInMaintenance}
	cc := &catalog.CostCenter{ID: uuid.New(), Currency: currency.BRL}

	pay := func(m *maintenance.Maintenance, s payment.Status) *payment.Payment {
		return &payment.Payment{ID: uuid.New(), MaintenanceID: m.ID, CostCenterID: cc.ID, Status: s, Amount: decimal.NewFromInt(1)}
	}

	payments := []*payment.Payment{
		pay(finished, payment.StatusSettled),
		pay(finished, payment.StatusPending),
		pay(open, payment.StatusSettled),
		pay(finished, payment.StatusCancelled),
		{ID: uuid.New(), MaintenanceID: uuid.New(), CostCenterID: cc.ID, Status: payment.StatusSettled},
	}

	refs := report.NewReferences([]*maintenance.Maintenance{finished, open}, []*catalog.CostCenter{cc}, nil, nil)

	rows, missing := report.Select(payments, refs, report.SettledAndFinished)
	assert.Len(t, rows, 1)
	assert.Len(t, missing, 1)

	rows, _ = report.Select(payments, refs, report.Settled)
	assert.Len(t, rows, 2)
}

func TestWindow_Contains(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	w := report.Window{From: &from, To: &to}

	assert.True(t, w.Contains(from))
	assert.True(t, w.Contains(to.Add(23*time.Hour)), "to is inclusive for the whole day")
	assert.False(t, w.Contains(to.AddDate(0, 0, 1)))
	assert.False(t, w.Contains(from.Add(-time.Second)))
	assert.True(t, report.Window{}.Contains(time.Time{}))
}

func TestCostDate(t *testing.T) {
	due := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	settled := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, due, report.CostDate(&payment.Payment{DueDate: due}))
	assert.Equal(t, settled, report.CostDate(&payment.Payment{DueDate: due, SettledDate: &settled}))
}
