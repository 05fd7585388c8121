package dto_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	value := decimal.NewFromInt(100)
	tests := []struct {
		name      string
		req       any
		wantField string
	}{
		{"valid disposal", dto.DisposalRequest{Kind: "SALE", SaleDate: "2024-05-01", SaleValue: &value}, ""},
		{"unknown kind", dto.DisposalRequest{Kind: "DONATION", SaleDate: "2024-05-01"}, "kind"},
		{"bad date", dto.DisposalRequest{Kind: "SALE", SaleDate: "01/05/2024"}, "saleDate"},
		{"missing granularity", dto.TaxCreditRequest{Taxes: map[string]dto.TaxParamsRequest{"IPI": {}}}, "granularity"},
		{"empty taxes", dto.TaxCreditRequest{Granularity: "MONTHLY"}, "taxes"},
		{"life out of range", dto.CreateCategoryRequest{Name: "Vehicles", AnnualRate: &value, UsefulLifeMonths: 1300}, "usefulLifeMonths"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dto.Validate(tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
			var verr *apperrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestParseOptionalDate(t *testing.T) {
	fallback, err := dto.ParseDate("d", "2023-12-31")
	require.NoError(t, err)

	got, err := dto.ParseOptionalDate("startDate", "", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	got, err = dto.ParseOptionalDate("startDate", "2024-02-29", fallback)
	require.NoError(t, err)
	assert.Equal(t, 29, got.Day())

	_, err = dto.ParseOptionalDate("startDate", "2024-02-30", fallback)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
