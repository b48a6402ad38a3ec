// Package metrics holds the Prometheus collectors. Observe helpers are no-ops until Init runs.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "frostguard_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once
	registry     *prometheus.Registry

	rateLookups         *prometheus.CounterVec
	degradedConversions *prometheus.CounterVec
	joinGaps            *prometheus.CounterVec
	reportTotal         *prometheus.CounterVec
	reportLatency       *prometheus.HistogramVec
	exportTotal         *prometheus.CounterVec
	importedPayments    *prometheus.CounterVec
	eventsPublished     *prometheus.CounterVec
)

// Init registers the collectors on a dedicated registry.
func Init() {
	registerOnce.Do(func() {
		registry = prometheus.NewRegistry()

		rateLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "rate_lookups_total",
				Help: "Exchange rate lookups by source and result",
			},
			[]string{"source", "result"},
		)
		degradedConversions = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "degraded_conversions_total",
				Help: "Amounts kept in their original currency because no rate was available",
			},
			[]string{"currency"},
		)
		joinGaps = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "join_gaps_total",
				Help: "Payments left out of reports because a reference did not resolve",
			},
			[]string{"reason"},
		)
		reportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_total",
				Help: "Report computations by report and result",
			},
			[]string{"report", "result"},
		)
		reportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_latency_seconds",
				Help:    "Report computation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Report exports by format and result",
			},
			[]string{"format", "result"},
		)
		importedPayments = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "imported_payments_total",
				Help: "Payment rows processed by CSV import",
			},
			[]string{"result"},
		)
		eventsPublished = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "events_published_total",
				Help: "Change events published by topic",
			},
			[]string{"topic"},
		)

		registry.MustRegister(
			prometheus.NewGoCollector(),
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
			rateLookups,
			degradedConversions,
			joinGaps,
			reportTotal,
			reportLatency,
			exportTotal,
			importedPayments,
			eventsPublished,
		)
	})
}

// Handler serves the registry. It calls Init if nobody has yet.
func Handler() http.Handler {
	Init()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func result(ok bool) string {
	if ok {
		return resultSuccess
	}
	return resultError
}

func ObserveRateLookup(source string, ok bool) {
	if source == "" {
		source = "unknown"
	}
	if rateLookups != nil {
		rateLookups.WithLabelValues(source, result(ok)).Inc()
	}
}

func IncDegradedConversion(currency string) {
	if degradedConversions != nil {
		degradedConversions.WithLabelValues(currency).Inc()
	}
}

func IncJoinGap(reason string) {
	if joinGaps != nil {
		joinGaps.WithLabelValues(reason).Inc()
	}
}

// ObserveReport records report latency and result.
func ObserveReport(report string, ok bool, duration time.Duration) {
	if reportTotal != nil {
		reportTotal.WithLabelValues(report, result(ok)).Inc()
	}
	if reportLatency != nil {
		reportLatency.WithLabelValues(report).Observe(duration.Seconds())
	}
}

func ObserveExport(format string, ok bool) {
	if format == "" {
		format = "unknown"
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result(ok)).Inc()
	}
}

func AddImportedPayments(ok bool, count int) {
	if importedPayments != nil && count > 0 {
		importedPayments.WithLabelValues(result(ok)).Add(float64(count))
	}
}

func IncEventPublished(topic string) {
	if eventsPublished != nil {
		eventsPublished.WithLabelValues(topic).Inc()
	}
}
