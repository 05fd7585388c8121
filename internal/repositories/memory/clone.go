package memory

import (
	"maps"
	"slices"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

func cloneAsset(a domain.Asset) domain.Asset {
	if a.MarketValue != nil {
		v := *a.MarketValue
		a.MarketValue = &v
	}
	if a.LastReassessedAt != nil {
		t := *a.LastReassessedAt
		a.LastReassessedAt = &t
	}
	return a
}

func cloneCategory(c domain.Category) domain.Category { return c }

func cloneTaxCredit(c domain.TaxCreditCalculation) domain.TaxCreditCalculation {
	c.Params = maps.Clone(c.Params)
	schedules := make([]domain.TaxCreditSchedule, len(c.Schedules))
	for i, sch := range c.Schedules {
		sch.Periods = slices.Clone(sch.Periods)
		schedules[i] = sch
	}
	c.Schedules = schedules
	return c
}

func cloneDepreciation(c domain.DepreciationCalculation) domain.DepreciationCalculation {
	c.Periods = slices.Clone(c.Periods)
	return c
}

func cloneDisposal(d domain.DisposalRecord) domain.DisposalRecord {
	d.Settlement.Warnings = slices.Clone(d.Settlement.Warnings)
	return d
}

func cloneMaintenance(m domain.MaintenanceRecord) domain.MaintenanceRecord {
	if m.CompletedAt != nil {
		t := *m.CompletedAt
		m.CompletedAt = &t
	}
	return m
}
