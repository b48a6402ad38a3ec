// Package exchange resolves exchange rates into the reporting currency, backed by a
// remote rate service, an injectable cache and a static fallback table.
package exchange

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/metrics"
)

// Source tells where a quote came from.
type Source string

const (
	SourceIdentity Source = "identity"
	SourceCache    Source = "cache"
	SourceAPI      Source = "api"
	SourceFallback Source = "fallback"
)

// Quote is a resolved rate from Base into Target.
type Quote struct {
	Base   currency.Code
	Target currency.Code
	Rate   decimal.Decimal
	Source Source
}

// Fetcher downloads the conversion table of a base currency.
//
//go:generate mockgen -source=provider.go -destination=fetcher_mock.go -package=exchange
type Fetcher interface {
	Latest(ctx context.Context, base currency.Code) (Table, error)
}

// Provider implements currency.RateSource.
type Provider struct {
	fetcher   Fetcher
	cache     Cache
	fallback  Table
	reporting currency.Code
	retries   int
	group     singleflight.Group
}

type ProviderOption func(*Provider)

// WithFallback sets the static table consulted when a lookup fails.
func WithFallback(table Table) ProviderOption {
	return func(p *Provider) {
		p.fallback = table
	}
}

// WithRetries allows n extra attempts against the rate service before falling back.
func WithRetries(n int) ProviderOption {
	return func(p *Provider) {
		if n > 0 {
			p.retries = n
		}
	}
}

func NewProvider(fetcher Fetcher, cache Cache, reporting currency.Code, opts ...ProviderOption) *Provider {
	p := &Provider{
		fetcher:   fetcher,
		cache:     cache,
		reporting: reporting,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.cache == nil {
		p.cache = NewMemoryCache(0)
	}

	return p
}

// Rate returns the reporting-currency value of one unit of from.
func (p *Provider) Rate(ctx context.Context, from currency.Code) (decimal.Decimal, error) {
	q, err := p.Lookup(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}

	return q.Rate, nil
}

// Lookup resolves from -> reporting currency. It only fails with currency.ErrRateUnavailable.
func (p *Provider) Lookup(ctx context.Context, from currency.Code) (Quote, error) {
	quote := Quote{Base: from, Target: p.reporting}

	if from == p.reporting {
		quote.Rate = decimal.NewFromInt(1)
		quote.Source = SourceIdentity

		return quote, nil
	}

	if table, ok := p.cache.Get(ctx, from); ok {
		if rate, ok := table[p.reporting]; ok && rate.IsPositive() {
			metrics.ObserveRateLookup(string(SourceCache), true)

			quote.Rate = rate
			quote.Source = SourceCache

			return quote, nil
		}
	}

	rate, err := p.shared(ctx, from)
	if err == nil {
		metrics.ObserveRateLookup(string(SourceAPI), true)

		quote.Rate = rate
		quote.Source = SourceAPI

		return quote, nil
	}

	metrics.ObserveRateLookup(string(SourceAPI), false)
	slog.Error("failed to fetch exchange rate", "currency", from, "error", err)

	if rate, ok := p.fallback[from]; ok && rate.IsPositive() {
		metrics.ObserveRateLookup(string(SourceFallback), true)

		quote.Rate = rate
		quote.Source = SourceFallback

		return quote, nil
	}

	metrics.ObserveRateLookup(string(SourceFallback), false)

	return quote, fmt.Errorf("%w: %s to %s", currency.ErrRateUnavailable, from, p.reporting)
}

// shared coalesces concurrent misses for one currency. The fetch runs detached from any
// single caller, so a caller that goes away only gives up its own wait.
func (p *Provider) shared(ctx context.Context, from currency.Code) (decimal.Decimal, error) {
	ch := p.group.DoChan(string(from), func() (any, error) {
		return p.fetch(context.WithoutCancel(ctx), from)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return decimal.Zero, res.Err
		}

		return res.Val.(decimal.Decimal), nil
	case <-ctx.Done():
		return decimal.Zero, ctx.Err()
	}
}

func (p *Provider) fetch(ctx context.Context, from currency.Code) (decimal.Decimal, error) {
	if p.fetcher == nil {
		return decimal.Zero, fmt.Errorf("no rate service configured")
	}

	var lastErr error

	for attempt := 0; attempt <= p.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return decimal.Zero, err
		}

		table, err := p.fetcher.Latest(ctx, from)
		if err != nil {
			lastErr = err
			continue
		}

		rate, ok := table[p.reporting]
		if !ok || !rate.IsPositive() {
			lastErr = fmt.Errorf("%w: no %s rate for base %s", ErrMalformedResponse, p.reporting, from)
			continue
		}

		if err := p.cache.Set(ctx, from, table); err != nil {
			slog.Warn("failed to cache rate table", "base", from, "error", err)
		}

		return rate, nil
	}

	return decimal.Zero, lastErr
}
