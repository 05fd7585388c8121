package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK         = "ok"
	OutcomeValidation = "validation"
	OutcomeNotFound   = "not_found"
	OutcomeConflict   = "conflict"
	OutcomeCanceled   = "canceled"
	OutcomeError      = "error"
)

const (
	KindTaxCredit    = "tax_credit"
	KindDepreciation = "depreciation"
	KindSettlement   = "settlement"
)

// Config holds constant labels applied to every series.
type Config struct {
	ServiceName string
	Environment string
}

// LedgerMetrics holds the prometheus instruments of the service.
type LedgerMetrics struct {
	registry *prometheus.Registry

	calculations        *prometheus.CounterVec
	calculationDuration *prometheus.HistogramVec
	periodsGenerated    *prometheus.CounterVec
	settlementWarnings  *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// New creates the instruments on a dedicated registry that also carries the
// Go runtime and process collectors.
func New(cfg Config) *LedgerMetrics {
	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "fixed_asset_ledger"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	m := &LedgerMetrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "fal_calculations_total",
			Help:        "Calculations run by kind and outcome.",
			ConstLabels: constLabels,
		}, []string{"kind", "outcome"}),
		calculationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "fal_calculation_duration_seconds",
			Help:        "Calculation latency including repository reads.",
			Buckets:     []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			ConstLabels: constLabels,
		}, []string{"kind"}),
		periodsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "fal_schedule_periods_generated_total",
			Help:        "Schedule periods produced by successful calculations.",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		settlementWarnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "fal_settlement_warnings_total",
			Help:        "Non-fatal settlement warnings by code.",
			ConstLabels: constLabels,
		}, []string{"code"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "fal_http_requests_total",
			Help:        "HTTP requests by method, route template and status.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "fal_http_request_duration_seconds",
			Help:        "HTTP request latency by route template.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.calculations,
		m.calculationDuration,
		m.periodsGenerated,
		m.settlementWarnings,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *LedgerMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *LedgerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveCalculation records one calculation run.
func (m *LedgerMetrics) ObserveCalculation(kind string, periods int, err error, duration time.Duration) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(kind, Outcome(err)).Inc()
	m.calculationDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if err == nil && periods > 0 {
		m.periodsGenerated.WithLabelValues(kind).Add(float64(periods))
	}
}

// ObserveSettlementWarning counts a settlement warning code.
func (m *LedgerMetrics) ObserveSettlementWarning(code string) {
	if m == nil {
		return
	}
	m.settlementWarnings.WithLabelValues(code).Inc()
}

// ObserveHTTPRequest records one served request.
func (m *LedgerMetrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Outcome maps an error to a low-cardinality outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return OutcomeCanceled
	case errors.Is(err, apperrors.ErrValidation):
		return OutcomeValidation
	case errors.Is(err, apperrors.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		return OutcomeConflict
	}
	return OutcomeError
}
