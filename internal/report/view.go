package report

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/frostguard/frostguard/internal/currency"
)

// BucketView is a bucket with its figures rendered for display.
type BucketView struct {
	Key         string
	Label       string
	Count       int
	Total       decimal.Decimal
	Average     decimal.Decimal
	TotalText   string
	AverageText string
}

// View is a Result ready to be shown or exported.
type View struct {
	Report    Name
	Unit      Unit
	Currency  currency.Code
	Buckets   []BucketView
	Total     decimal.Decimal
	TotalText string
	Skipped   int
	Degraded  []currency.Code
}

func NewView(r *Result) View {
	v := View{
		Report:   r.Report,
		Unit:     r.Unit,
		Currency: r.Currency,
		Buckets:  make([]BucketView, len(r.Buckets)),
		Total:    r.Total(),
		Skipped:  r.Skipped,
		Degraded: r.Degraded,
	}

	v.TotalText = r.FormatValue(v.Total)

	for i, b := range r.Buckets {
		avg := b.Average()
		v.Buckets[i] = BucketView{
			Key:         b.Key,
			Label:       b.Label,
			Count:       b.Count,
			Total:       b.Total,
			Average:     avg,
			TotalText:   r.FormatValue(b.Total),
			AverageText: r.FormatValue(avg),
		}
	}

	return v
}

// FormatValue renders d according to the result unit.
func (r *Result) FormatValue(d decimal.Decimal) string {
	switch r.Unit {
	case UnitMoney:
		return currency.Format(d, r.Currency)
	case UnitCount:
		return strconv.FormatInt(d.Round(0).IntPart(), 10)
	default:
		return d.StringFixed(2)
	}
}
