package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCreditsFromStdin(t *testing.T) {
	input := `{"baseValue":"10000","granularity":"MONTHLY","startDate":"2024-01-10",
		"taxes":{"IPI":{"rate":"10","installments":1}}}`

	out, err := run(t, input, "credits")
	require.NoError(t, err)

	var res accounting.TaxCreditResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Schedules, 1)
	assert.Equal(t, domain.IPI, res.Schedules[0].TaxType)
	assert.True(t, res.TotalCredit.Equal(decimal.NewFromInt(1000)))
}

func TestCreditsRequiresBaseValue(t *testing.T) {
	input := `{"granularity":"MONTHLY","startDate":"2024-01-10","taxes":{"IPI":{"rate":"10","installments":1}}}`

	_, err := run(t, input, "credits")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreditsRejectsUnknownFields(t *testing.T) {
	_, err := run(t, `{"granularty":"MONTHLY"}`, "credits")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode input")
}

func TestDepreciationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dep.json")
	input := `{"assetValue":"9000","annualRate":"10","usefulLifeMonths":24,"granularity":"MONTHLY","startDate":"2024-01-01"}`
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))

	out, err := run(t, "", "depreciation", path, "--compact")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1)

	var res accounting.DepreciationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Periods, 24)
	assert.True(t, res.BookValue.Equal(decimal.NewFromInt(7200)))
}

func TestDepreciationWithoutRate(t *testing.T) {
	input := `{"assetValue":"9000","granularity":"MONTHLY","startDate":"2024-01-01"}`

	_, err := run(t, input, "depreciation")
	assert.True(t, errors.Is(err, accounting.ErrCategoryRequired))
}

func TestSettlementUnknownStrategy(t *testing.T) {
	_, err := run(t, `{}`, "settlement", "--strategy", "fifo")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSettlementWithoutCalculationsWarns(t *testing.T) {
	input := `{
		"asset": {"assetID":"a1","acquisitionDate":"2024-01-01T00:00:00Z","totalValue":"10000","status":"ACTIVE"},
		"saleDate": "2024-06-30",
		"saleValue": "9000"
	}`

	out, err := run(t, input, "settlement")
	require.NoError(t, err)

	var s domain.Settlement
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.True(t, s.ResidualBookValue.Equal(decimal.NewFromInt(10000)))
	assert.True(t, s.GainOrLoss.Equal(decimal.NewFromInt(-1000)))
	assert.NotEmpty(t, s.Warnings)
}
