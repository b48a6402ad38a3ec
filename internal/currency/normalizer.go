package currency

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RateSource returns how many units of the reporting currency one unit of from is worth.
//
//go:generate mockgen -source=normalizer.go -destination=ratesource_mock.go -package=currency
type RateSource interface {
	Rate(ctx context.Context, from Code) (decimal.Decimal, error)
}

// Conversion is the result of normalizing one amount.
type Conversion struct {
	Original  decimal.Decimal
	Converted decimal.Decimal
	Rate      decimal.Decimal
	Currency  Code
	// Degraded is set when no rate could be found and the amount was passed through unchanged.
	Degraded bool
}

// Amount is an (amount, currency) pair awaiting normalization.
type Amount struct {
	Value    decimal.Decimal
	Currency Code
}

// Normalizer converts amounts into the reporting currency. It never fails:
// a missing rate degrades to an identity conversion.
type Normalizer struct {
	rates     RateSource
	reporting Code
	// Concurrency bounds rate lookups issued by NormalizeAll.
	concurrency int
	onDegrade   func(Code)
}

type NormalizerOption func(*Normalizer)

// WithConcurrency bounds the number of concurrent rate lookups in NormalizeAll.
func WithConcurrency(n int) NormalizerOption {
	return func(nz *Normalizer) {
		if n > 0 {
			nz.concurrency = n
		}
	}
}

// WithDegradeHook registers a callback invoked for every degraded conversion.
func WithDegradeHook(fn func(Code)) NormalizerOption {
	return func(nz *Normalizer) {
		nz.onDegrade = fn
	}
}

func NewNormalizer(rates RateSource, reporting Code, opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		rates:       rates,
		reporting:   reporting,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Reporting returns the currency every converted amount is expressed in.
func (n *Normalizer) Reporting() Code {
	return n.reporting
}

// Normalize converts a single amount.
func (n *Normalizer) Normalize(ctx context.Context, amount decimal.Decimal, cur Code) Conversion {
	rate, ok := n.rate(ctx, cur)
	if !ok {
		n.degraded(amount, cur)
	}

	return convert(amount, cur, rate, ok)
}

// NormalizeAll converts every amount, looking each distinct currency up once.
// The result is index-aligned with amounts.
func (n *Normalizer) NormalizeAll(ctx context.Context, amounts []Amount) []Conversion {
	rates := n.Rates(ctx, distinct(amounts))

	out := make([]Conversion, len(amounts))

	for i, a := range amounts {
		rate, ok := rates[a.Currency]
		if !ok {
			n.degraded(a.Value, a.Currency)
		}

		out[i] = convert(a.Value, a.Currency, rate, ok)
	}

	return out
}

// Rates resolves the given currencies concurrently. Currencies without a rate are absent from the result.
func (n *Normalizer) Rates(ctx context.Context, codes []Code) map[Code]decimal.Decimal {
	var (
		mu     sync.Mutex
		result = make(map[Code]decimal.Decimal, len(codes))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.concurrency)

	for _, c := range codes {
		g.Go(func() error {
			rate, ok := n.rate(gctx, c)
			if !ok {
				return nil
			}

			mu.Lock()
			result[c] = rate
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	return result
}

func (n *Normalizer) rate(ctx context.Context, cur Code) (decimal.Decimal, bool) {
	if cur == n.reporting {
		return decimal.NewFromInt(1), true
	}

	if n.rates == nil {
		return decimal.Zero, false
	}

	rate, err := n.rates.Rate(ctx, cur)
	if err != nil || !rate.IsPositive() {
		return decimal.Zero, false
	}

	return rate, true
}

func (n *Normalizer) degraded(amount decimal.Decimal, cur Code) {
	slog.Warn("could not convert amount, keeping original value",
		"amount", amount.String(), "currency", cur, "reporting_currency", n.reporting)

	if n.onDegrade != nil {
		n.onDegrade(cur)
	}
}

func convert(amount decimal.Decimal, cur Code, rate decimal.Decimal, ok bool) Conversion {
	if !ok {
		return Conversion{
			Original:  amount,
			Converted: amount,
			Rate:      decimal.NewFromInt(1),
			Currency:  cur,
			Degraded:  true,
		}
	}

	return Conversion{
		Original:  amount,
		Converted: amount.Mul(rate),
		Rate:      rate,
		Currency:  cur,
	}
}

func distinct(amounts []Amount) []Code {
	seen := make(map[Code]struct{}, len(amounts))

	var codes []Code

	for _, a := range amounts {
		if _, ok := seen[a.Currency]; ok {
			continue
		}

		seen[a.Currency] = struct{}{}
		codes = append(codes, a.Currency)
	}

	return codes
}
