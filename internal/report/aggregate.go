package report

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// Bucket is one group of a report. Total is always in the reporting currency.
type Bucket struct {
	Key   string
	Label string
	Count int
	Total decimal.Decimal

	average *decimal.Decimal
}

// SetAverage replaces the Total / Count average for buckets whose total is already a ratio.
func (b *Bucket) SetAverage(avg decimal.Decimal) {
	b.average = &avg
}

// Average is Total / Count, or zero for an empty bucket.
func (b *Bucket) Average() decimal.Decimal {
	if b.average != nil {
		return *b.average
	}

	if b.Count == 0 {
		return decimal.Zero
	}

	return b.Total.Div(decimal.NewFromInt(int64(b.Count)))
}

// KeyFunc returns the group key of an item and the label shown for that group.
type KeyFunc[T any] func(item T) (key, label string)

// ReduceFunc folds an item into its bucket.
type ReduceFunc[T any] func(b *Bucket, item T)

// Aggregate groups items by key. Buckets come back in order of first occurrence.
func Aggregate[T any](items []T, key KeyFunc[T], reduce ReduceFunc[T]) []*Bucket {
	var (
		order   []*Bucket
		buckets = make(map[string]*Bucket)
	)

	for _, item := range items {
		k, label := key(item)

		b, ok := buckets[k]
		if !ok {
			b = &Bucket{Key: k, Label: label}
			buckets[k] = b
			order = append(order, b)
		}

		reduce(b, item)
	}

	return order
}

// Sum counts items and adds their amount.
func Sum[T any](amount func(T) decimal.Decimal) ReduceFunc[T] {
	return func(b *Bucket, item T) {
		b.Count++
		b.Total = b.Total.Add(amount(item))
	}
}

// Count counts items. Total mirrors Count so count reports can be summed and formatted.
func Count[T any]() ReduceFunc[T] {
	return func(b *Bucket, _ T) {
		b.Count++
		b.Total = b.Total.Add(one)
	}
}

var one = decimal.NewFromInt(1)

// Metric ranks buckets.
type Metric func(*Bucket) decimal.Decimal

func ByTotal(b *Bucket) decimal.Decimal   { return b.Total }
func ByAverage(b *Bucket) decimal.Decimal { return b.Average() }
func ByCount(b *Bucket) decimal.Decimal   { return decimal.NewFromInt(int64(b.Count)) }

// SortDesc orders buckets by metric, highest first. Ties keep their current order.
func SortDesc(buckets []*Bucket, metric Metric) {
	slices.SortStableFunc(buckets, func(a, b *Bucket) int {
		return metric(b).Cmp(metric(a))
	})
}

// TopN returns the n highest buckets by metric. Fewer than n buckets are all returned; n <= 0 means all.
func TopN(buckets []*Bucket, n int, metric Metric) []*Bucket {
	sorted := slices.Clone(buckets)
	SortDesc(sorted, metric)

	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}

// SortByKey orders buckets by key ascending; "2006-01" keys sort chronologically.
func SortByKey(buckets []*Bucket) {
	slices.SortStableFunc(buckets, func(a, b *Bucket) int {
		return cmp.Compare(a.Key, b.Key)
	})
}
