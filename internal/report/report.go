// Package report turns payments and maintenances into grouped figures in the reporting currency.
package report

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/frostguard/frostguard/internal/currency"
)

var ErrUnknownReport = errors.New("unknown report")

type Name string

const (
	CostByProblemGroup             Name = "cost-by-problem-group"
	AverageCostByProblemGroup      Name = "average-cost-by-problem-group"
	CostByEquipment                Name = "cost-by-equipment"
	TopCostlyEquipment             Name = "top-costly-equipment"
	CostByMonth                    Name = "cost-by-month"
	CostByMonthPerEquipment        Name = "cost-by-month-per-equipment"
	CostByCostCenter               Name = "cost-by-cost-center"
	MaintenanceCountByProblemGroup Name = "maintenance-count-by-problem-group"
	FinishedMaintenancesByMonth    Name = "finished-maintenances-by-month"
	TopMaintainedEquipment         Name = "top-maintained-equipment"
	TotalCost                      Name = "total-cost"
	MaintenancesPerEquipment       Name = "maintenances-per-equipment"
	MaintenancesByProblemGroup     Name = "maintenances-by-problem-group"
)

// Unit tells how a bucket Total should be read.
type Unit string

const (
	UnitMoney Unit = "money"
	UnitCount Unit = "count"
	UnitRatio Unit = "ratio"
)

const DefaultLimit = 20

type Params struct {
	Window
	// Limit caps top-N reports. Zero means DefaultLimit.
	Limit int
}

func (p Params) limit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return p.Limit
}

type Result struct {
	Report   Name
	Unit     Unit
	Currency currency.Code
	Buckets  []*Bucket
	// Skipped counts payments left out because a reference did not resolve.
	Skipped int
	// Degraded lists currencies that had no rate and were summed unconverted.
	Degraded []currency.Code
}

// Total adds every bucket total.
func (r *Result) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range r.Buckets {
		total = total.Add(b.Total)
	}

	return total
}
