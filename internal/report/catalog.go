package report

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/maintenance"
)

const (
	noProblemGroup = "Sem grupo"
	noEquipment    = "Sem equipamento"
)

type definition struct {
	name    Name
	unit    Unit
	compute func(c *computation) ([]*Bucket, error)
}

// order is the dashboard layout.
var order = []Name{
	TotalCost,
	CostByProblemGroup,
	AverageCostByProblemGroup,
	MaintenancesByProblemGroup,
	MaintenanceCountByProblemGroup,
	CostByEquipment,
	TopCostlyEquipment,
	TopMaintainedEquipment,
	CostByMonth,
	CostByMonthPerEquipment,
	FinishedMaintenancesByMonth,
	CostByCostCenter,
	MaintenancesPerEquipment,
}

// Names lists every report in dashboard order.
func Names() []Name {
	out := make([]Name, len(order))
	copy(out, order)

	return out
}

var definitions = map[Name]definition{
	CostByProblemGroup: {
		name: CostByProblemGroup, unit: UnitMoney,
		compute: func(c *computation) ([]*Bucket, error) {
			return costBy(c, problemGroupKey)
		},
	},
	AverageCostByProblemGroup: {
		name: AverageCostByProblemGroup, unit: UnitMoney,
		compute: func(c *computation) ([]*Bucket, error) {
			buckets, err := costBy(c, problemGroupKey)
			if err != nil {
				return nil, err
			}

			SortDesc(buckets, ByAverage)

			return buckets, nil
		},
	},
	CostByEquipment: {
		name: CostByEquipment, unit: UnitMoney,
		compute: func(c *computation) ([]*Bucket, error) {
			return costBy(c, equipmentKey)
		},
	},
	TopCostlyEquipment: {
		name: TopCostlyEquipment, unit: UnitMoney,
		compute: func(c *computation) ([]*Bucket, error) {
			buckets, err := costBy(c, equipmentKey)
			if err != nil {
				return nil, err
			}

			return TopN(buckets, c.params.limit(), ByTotal), nil
		},
	},
	CostByMonth: {
		name: CostByMonth, unit: UnitMoney,
		compute: costByMonth,
	},
	CostByMonthPerEquipment: {
		name: CostByMonthPerEquipment, unit: UnitMoney,
		compute: func(c *computation) ([]*Bucket, error) {
			n, err := c.equipmentCount()
			if err != nil {
				return nil, err
			}

			buckets, err := costByMonth(c)
			if err != nil {
				return nil, err
			}

			for _, b := range buckets {
				b.Total = perUnit(b.Total, n)
				b.SetAverage(b.Total)
			}

			return buckets, nil
		},
	},
	CostByCostCenter: {
		name: CostByCostCenter, unit: UnitMoney,
		compute: func(c *computation) ([]*Bucket, error) {
			return costBy(c, func(e entry) (string, string) {
				cc := e.CostCenter
				return cc.ID.String(), fmt.Sprintf("%s (%s)", cc.Name, cc.Currency)
			})
		},
	},
	MaintenanceCountByProblemGroup: {
		name: MaintenanceCountByProblemGroup, unit: UnitMoney,
		compute: func(c *computation) ([]*Bucket, error) {
			entries, err := c.costEntries(SettledAndFinished)
			if err != nil {
				return nil, err
			}

			seen := make(map[string]map[uuid.UUID]struct{})

			return Aggregate(entries, problemGroupKey, func(b *Bucket, e entry) {
				ids, ok := seen[b.Key]
				if !ok {
					ids = make(map[uuid.UUID]struct{})
					seen[b.Key] = ids
				}

				if _, dup := ids[e.Maintenance.ID]; !dup {
					ids[e.Maintenance.ID] = struct{}{}
					b.Count++
				}

				b.Total = b.Total.Add(e.Converted)
			}), nil
		},
	},
	MaintenancesByProblemGroup: {
		name: MaintenancesByProblemGroup, unit: UnitCount,
		compute: func(c *computation) ([]*Bucket, error) {
			ms, err := c.maintenancesInWindow(func(m *maintenance.Maintenance) bool {
				return m.ProblemGroupID != nil
			})
			if err != nil {
				return nil, err
			}

			groups, err := c.data.problemGroups()
			if err != nil {
				return nil, fmt.Errorf("load problem groups: %w", err)
			}

			counts := make(map[uuid.UUID]*Bucket)
			reduce := Count[*maintenance.Maintenance]()

			for _, m := range ms {
				b, ok := counts[*m.ProblemGroupID]
				if !ok {
					b = &Bucket{Key: m.ProblemGroupID.String()}
					counts[*m.ProblemGroupID] = b
				}

				reduce(b, m)
			}

			// Catalog order. Groups without maintenances are left out, and so are
			// maintenances pointing at a group that no longer exists.
			buckets := make([]*Bucket, 0, len(counts))

			for _, g := range groups {
				if b, ok := counts[g.ID]; ok {
					b.Label = g.Name
					buckets = append(buckets, b)
				}
			}

			return buckets, nil
		},
	},
	FinishedMaintenancesByMonth: {
		name: FinishedMaintenancesByMonth, unit: UnitCount,
		compute: func(c *computation) ([]*Bucket, error) {
			ms, err := c.maintenancesInWindow(func(m *maintenance.Maintenance) bool {
				return m.Status == maintenance.StatusFinished
			})
			if err != nil {
				return nil, err
			}

			buckets := Aggregate(ms, func(m *maintenance.Maintenance) (string, string) {
				return monthKey(m.ProblemDate.Format(monthLayout))
			}, Count[*maintenance.Maintenance]())
			SortByKey(buckets)

			return buckets, nil
		},
	},
	TopMaintainedEquipment: {
		name: TopMaintainedEquipment, unit: UnitCount,
		compute: func(c *computation) ([]*Bucket, error) {
			ms, err := c.maintenancesInWindow(func(*maintenance.Maintenance) bool { return true })
			if err != nil {
				return nil, err
			}

			equipment, err := c.data.equipment()
			if err != nil {
				return nil, fmt.Errorf("load equipment: %w", err)
			}

			byID := index(equipment, func(e *catalog.Equipment) uuid.UUID { return e.ID })

			buckets := Aggregate(ms, func(m *maintenance.Maintenance) (string, string) {
				if m.EquipmentID == nil {
					return "", noEquipment
				}

				return equipmentLabel(m.EquipmentID, byID[*m.EquipmentID])
			}, Count[*maintenance.Maintenance]())

			return TopN(buckets, c.params.limit(), ByCount), nil
		},
	},
	TotalCost: {
		name: TotalCost, unit: UnitMoney,
		compute: func(c *computation) ([]*Bucket, error) {
			entries, err := c.costEntries(Settled)
			if err != nil {
				return nil, err
			}

			total := &Bucket{Key: "total", Label: "Total"}
			reduce := Sum(converted)

			for _, e := range entries {
				reduce(total, e)
			}

			return []*Bucket{total}, nil
		},
	},
	MaintenancesPerEquipment: {
		name: MaintenancesPerEquipment, unit: UnitRatio,
		compute: func(c *computation) ([]*Bucket, error) {
			ms, err := c.maintenancesInWindow(func(*maintenance.Maintenance) bool { return true })
			if err != nil {
				return nil, err
			}

			n, err := c.equipmentCount()
			if err != nil {
				return nil, err
			}

			return []*Bucket{{
				Key:   "per-equipment",
				Label: "Manutenções por equipamento",
				Count: len(ms),
				Total: perUnit(decimal.NewFromInt(int64(len(ms))), n),
			}}, nil
		},
	},
}

func costBy(c *computation, key KeyFunc[entry]) ([]*Bucket, error) {
	entries, err := c.costEntries(SettledAndFinished)
	if err != nil {
		return nil, err
	}

	return Aggregate(entries, key, Sum(converted)), nil
}

func costByMonth(c *computation) ([]*Bucket, error) {
	buckets, err := costBy(c, func(e entry) (string, string) {
		return monthKey(CostDate(e.Payment).Format(monthLayout))
	})
	if err != nil {
		return nil, err
	}

	SortByKey(buckets)

	return buckets, nil
}

const monthLayout = "2006-01"

func monthKey(key string) (string, string) {
	return key, currency.MonthLabel(key)
}

func problemGroupKey(e entry) (string, string) {
	if e.ProblemGroup == nil {
		return "", noProblemGroup
	}

	return e.ProblemGroup.ID.String(), e.ProblemGroup.Name
}

func equipmentKey(e entry) (string, string) {
	if e.Maintenance.EquipmentID == nil {
		return "", noEquipment
	}

	return equipmentLabel(e.Maintenance.EquipmentID, e.Equipment)
}

// equipmentLabel keys by id even when the equipment row is gone.
func equipmentLabel(id *uuid.UUID, e *catalog.Equipment) (string, string) {
	if e == nil {
		return id.String(), id.String()
	}

	return id.String(), e.Label()
}

// perUnit divides total by n, or returns zero when there is nothing to divide by.
func perUnit(total decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}

	return total.Div(decimal.NewFromInt(int64(n)))
}
