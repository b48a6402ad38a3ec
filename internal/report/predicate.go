package report

import (
	"time"

	"github.com/frostguard/frostguard/internal/maintenance"
	"github.com/frostguard/frostguard/internal/payment"
)

// Predicate decides whether a joined row counts towards a report.
type Predicate func(Row) bool

// SettledAndFinished is the filter of every cost report.
func SettledAndFinished(r Row) bool {
	return r.Payment.Status == payment.StatusSettled && r.Maintenance.Status == maintenance.StatusFinished
}

// Settled ignores the maintenance status.
func Settled(r Row) bool {
	return r.Payment.Status == payment.StatusSettled
}

// And combines predicates.
func And(preds ...Predicate) Predicate {
	return func(r Row) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}

		return true
	}
}

// CostDate is the date a payment is reported under: settled date, else due date.
func CostDate(p *payment.Payment) time.Time {
	if p.SettledDate != nil {
		return *p.SettledDate
	}

	return p.DueDate
}

// Window is an inclusive date range. Nil bounds are open.
type Window struct {
	From *time.Time
	To   *time.Time
}

func (w Window) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}

	if w.To != nil && !t.Before(w.To.AddDate(0, 0, 1)) {
		return false
	}

	return true
}

// InWindow filters rows on their cost date.
func InWindow(w Window) Predicate {
	return func(r Row) bool {
		return w.Contains(CostDate(r.Payment))
	}
}
