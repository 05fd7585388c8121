package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeOK},
		{apperrors.NewValidationError("x", "bad"), OutcomeValidation},
		{fmt.Errorf("asset not found: %w", apperrors.ErrNotFound), OutcomeNotFound},
		{apperrors.ErrDuplicate, OutcomeConflict},
		{fmt.Errorf("written off: %w", apperrors.ErrConflict), OutcomeConflict},
		{context.DeadlineExceeded, OutcomeCanceled},
		{errors.New("boom"), OutcomeError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Outcome(tt.err))
	}
}

func TestObserveCalculation(t *testing.T) {
	m := New(Config{Environment: "test"})

	m.ObserveCalculation(KindTaxCredit, 12, nil, 3*time.Millisecond)
	m.ObserveCalculation(KindTaxCredit, 0, apperrors.ErrValidation, time.Millisecond)
	m.ObserveCalculation(KindDepreciation, 24, nil, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues(KindTaxCredit, OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues(KindTaxCredit, OutcomeValidation)))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.periodsGenerated.WithLabelValues(KindTaxCredit)))
	assert.Equal(t, 24.0, testutil.ToFloat64(m.periodsGenerated.WithLabelValues(KindDepreciation)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.calculationDuration))
}

func TestObserveHTTPRequestAndHandler(t *testing.T) {
	m := New(Config{})
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/assets/:assetID", http.StatusOK, 5*time.Millisecond)
	m.ObserveSettlementWarning("INCONSISTENT_STATE")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/v1/assets/:assetID", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.settlementWarnings.WithLabelValues("INCONSISTENT_STATE")))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fal_http_requests_total")
	assert.Contains(t, w.Body.String(), `service="fixed_asset_ledger"`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *LedgerMetrics
	assert.NotPanics(t, func() {
		m.ObserveCalculation(KindSettlement, 1, nil, time.Millisecond)
		m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.ObserveSettlementWarning("x")
	})
}
