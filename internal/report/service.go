package report

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/maintenance"
	"github.com/frostguard/frostguard/internal/metrics"
	"github.com/frostguard/frostguard/internal/payment"
)

// Repository loads whole collections; reports filter in memory.
//
//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	ListPayments(ctx context.Context) ([]*payment.Payment, error)
	ListMaintenances(ctx context.Context) ([]*maintenance.Maintenance, error)
	ListCostCenters(ctx context.Context) ([]*catalog.CostCenter, error)
	ListEquipment(ctx context.Context) ([]*catalog.Equipment, error)
	ListProblemGroups(ctx context.Context) ([]*catalog.ProblemGroup, error)
}

type Service struct {
	repo       Repository
	normalizer *currency.Normalizer
}

func NewService(repo Repository, normalizer *currency.Normalizer) *Service {
	return &Service{repo: repo, normalizer: normalizer}
}

// Currency is the currency every money report is expressed in.
func (s *Service) Currency() currency.Code {
	return s.normalizer.Reporting()
}

// Run computes a single report.
func (s *Service) Run(ctx context.Context, name Name, params Params) (*Result, error) {
	def, ok := definitions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReport, name)
	}

	return s.run(ctx, def, newDataset(ctx, s.repo), params)
}

// Widget is one report of the dashboard. Err is set instead of Result when that report failed.
type Widget struct {
	Report Name
	Result *Result
	Err    error
}

// Dashboard computes every report concurrently over one shared load of the data.
// A failing collection only fails the widgets that read it.
func (s *Service) Dashboard(ctx context.Context, params Params) ([]Widget, error) {
	data := newDataset(ctx, s.repo)
	widgets := make([]Widget, len(order))

	var wg sync.WaitGroup

	for i, name := range order {
		wg.Go(func() {
			res, err := s.run(ctx, definitions[name], data, params)
			widgets[i] = Widget{Report: name, Result: res, Err: err}
		})
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return widgets, nil
}

func (s *Service) run(ctx context.Context, def definition, data *dataset, params Params) (*Result, error) {
	start := time.Now()

	c := &computation{
		ctx:        ctx,
		data:       data,
		normalizer: s.normalizer,
		params:     params,
		result: &Result{
			Report:   def.name,
			Unit:     def.unit,
			Currency: s.normalizer.Reporting(),
		},
	}

	buckets, err := def.compute(c)
	if err == nil {
		err = ctx.Err()
	}

	metrics.ObserveReport(string(def.name), err == nil, time.Since(start))

	if err != nil {
		return nil, fmt.Errorf("report %s: %w", def.name, err)
	}

	c.result.Buckets = buckets

	return c.result, nil
}

// dataset loads each collection at most once, on first use.
type dataset struct {
	payments      func() ([]*payment.Payment, error)
	maintenances  func() ([]*maintenance.Maintenance, error)
	costCenters   func() ([]*catalog.CostCenter, error)
	equipment     func() ([]*catalog.Equipment, error)
	problemGroups func() ([]*catalog.ProblemGroup, error)
}

func newDataset(ctx context.Context, repo Repository) *dataset {
	return &dataset{
		payments:      sync.OnceValues(func() ([]*payment.Payment, error) { return repo.ListPayments(ctx) }),
		maintenances:  sync.OnceValues(func() ([]*maintenance.Maintenance, error) { return repo.ListMaintenances(ctx) }),
		costCenters:   sync.OnceValues(func() ([]*catalog.CostCenter, error) { return repo.ListCostCenters(ctx) }),
		equipment:     sync.OnceValues(func() ([]*catalog.Equipment, error) { return repo.ListEquipment(ctx) }),
		problemGroups: sync.OnceValues(func() ([]*catalog.ProblemGroup, error) { return repo.ListProblemGroups(ctx) }),
	}
}

func (d *dataset) references() (References, error) {
	maintenances, err := d.maintenances()
	if err != nil {
		return References{}, fmt.Errorf("load maintenances: %w", err)
	}

	costCenters, err := d.costCenters()
	if err != nil {
		return References{}, fmt.Errorf("load cost centers: %w", err)
	}

	equipment, err := d.equipment()
	if err != nil {
		return References{}, fmt.Errorf("load equipment: %w", err)
	}

	problemGroups, err := d.problemGroups()
	if err != nil {
		return References{}, fmt.Errorf("load problem groups: %w", err)
	}

	return NewReferences(maintenances, costCenters, equipment, problemGroups), nil
}

// entry is a selected row with its amount in the reporting currency.
type entry struct {
	Row
	Converted decimal.Decimal
}

func converted(e entry) decimal.Decimal {
	return e.Converted
}

type computation struct {
	ctx        context.Context
	data       *dataset
	normalizer *currency.Normalizer
	params     Params
	result     *Result
}

// costEntries selects the payments matching pred inside the window, then converts them.
func (c *computation) costEntries(pred Predicate) ([]entry, error) {
	payments, err := c.data.payments()
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}

	refs, err := c.data.references()
	if err != nil {
		return nil, err
	}

	rows, missing := Select(payments, refs, And(pred, InWindow(c.params.Window)))
	for _, m := range missing {
		slog.Warn("skipped payment with unresolved reference",
			"report", c.result.Report, "payment_id", m.PaymentID, "reason", m.Reason, "ref", m.Ref)
		metrics.IncJoinGap(string(m.Reason))
	}

	c.result.Skipped = len(missing)

	amounts := make([]currency.Amount, len(rows))
	for i, r := range rows {
		amounts[i] = currency.Amount{Value: r.Payment.Amount, Currency: r.CostCenter.Currency}
	}

	conversions := c.normalizer.NormalizeAll(c.ctx, amounts)

	entries := make([]entry, len(rows))

	for i, r := range rows {
		entries[i] = entry{Row: r, Converted: conversions[i].Converted}

		if conversions[i].Degraded && !slices.Contains(c.result.Degraded, conversions[i].Currency) {
			c.result.Degraded = append(c.result.Degraded, conversions[i].Currency)
		}
	}

	return entries, nil
}

// maintenancesInWindow filters on problem date.
func (c *computation) maintenancesInWindow(pred func(*maintenance.Maintenance) bool) ([]*maintenance.Maintenance, error) {
	all, err := c.data.maintenances()
	if err != nil {
		return nil, fmt.Errorf("load maintenances: %w", err)
	}

	var out []*maintenance.Maintenance

	for _, m := range all {
		if c.params.Contains(m.ProblemDate) && pred(m) {
			out = append(out, m)
		}
	}

	return out, nil
}

func (c *computation) equipmentCount() (int, error) {
	equipment, err := c.data.equipment()
	if err != nil {
		return 0, fmt.Errorf("load equipment: %w", err)
	}

	return len(equipment), nil
}
