package report

import (
	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/maintenance"
	"github.com/frostguard/frostguard/internal/payment"
)

// Row is a payment with every reference resolved.
type Row struct {
	Payment     *payment.Payment
	Maintenance *maintenance.Maintenance
	CostCenter  *catalog.CostCenter
	// Equipment and ProblemGroup are nil when the maintenance does not point at one.
	Equipment    *catalog.Equipment
	ProblemGroup *catalog.ProblemGroup
}

// JoinResult is implemented by Resolved and Missing only.
type JoinResult interface {
	joinResult()
}

type Resolved struct {
	Row Row
}

type MissingReason string

const (
	MissingMaintenance MissingReason = "maintenance"
	MissingCostCenter  MissingReason = "cost_center"
)

// Missing is a payment whose maintenance or cost center does not exist.
type Missing struct {
	PaymentID uuid.UUID
	Reason    MissingReason
	Ref       uuid.UUID
}

func (Resolved) joinResult() {}
func (Missing) joinResult()  {}

// References indexes the collections payments point at.
type References struct {
	Maintenances  map[uuid.UUID]*maintenance.Maintenance
	CostCenters   map[uuid.UUID]*catalog.CostCenter
	Equipment     map[uuid.UUID]*catalog.Equipment
	ProblemGroups map[uuid.UUID]*catalog.ProblemGroup
}

func NewReferences(
	maintenances []*maintenance.Maintenance,
	costCenters []*catalog.CostCenter,
	equipment []*catalog.Equipment,
	problemGroups []*catalog.ProblemGroup,
) References {
	return References{
		Maintenances:  index(maintenances, func(m *maintenance.Maintenance) uuid.UUID { return m.ID }),
		CostCenters:   index(costCenters, func(c *catalog.CostCenter) uuid.UUID { return c.ID }),
		Equipment:     index(equipment, func(e *catalog.Equipment) uuid.UUID { return e.ID }),
		ProblemGroups: index(problemGroups, func(g *catalog.ProblemGroup) uuid.UUID { return g.ID }),
	}
}

func index[T any](items []*T, id func(*T) uuid.UUID) map[uuid.UUID]*T {
	out := make(map[uuid.UUID]*T, len(items))
	for _, item := range items {
		out[id(item)] = item
	}

	return out
}

// Join resolves every payment against refs, in payment order.
func Join(payments []*payment.Payment, refs References) []JoinResult {
	out := make([]JoinResult, 0, len(payments))

	for _, p := range payments {
		out = append(out, join(p, refs))
	}

	return out
}

func join(p *payment.Payment, refs References) JoinResult {
	m, ok := refs.Maintenances[p.MaintenanceID]
	if !ok {
		return Missing{PaymentID: p.ID, Reason: MissingMaintenance, Ref: p.MaintenanceID}
	}

	cc, ok := refs.CostCenters[p.CostCenterID]
	if !ok {
		return Missing{PaymentID: p.ID, Reason: MissingCostCenter, Ref: p.CostCenterID}
	}

	row := Row{Payment: p, Maintenance: m, CostCenter: cc}

	if m.EquipmentID != nil {
		row.Equipment = refs.Equipment[*m.EquipmentID]
	}

	if m.ProblemGroupID != nil {
		row.ProblemGroup = refs.ProblemGroups[*m.ProblemGroupID]
	}

	return Resolved{Row: row}
}

// Select keeps the resolved rows accepted by pred. Missing joins are returned separately and never fail the call.
func Select(payments []*payment.Payment, refs References, pred Predicate) ([]Row, []Missing) {
	var (
		rows    []Row
		missing []Missing
	)

	for _, res := range Join(payments, refs) {
		switch r := res.(type) {
		case Resolved:
			if pred(r.Row) {
				rows = append(rows, r.Row)
			}
		case Missing:
			missing = append(missing, r)
		}
	}

	return rows, missing
}
