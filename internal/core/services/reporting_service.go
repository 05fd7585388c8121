package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.ReportingService {
	svc := &reportingService{repos: repos}
	svc.apply(opts)
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// Dashboard loads the register concurrently and aggregates it.
func (s *reportingService) Dashboard(ctx context.Context, year int) (*domain.DashboardSummary, error) {
	var in accounting.SummaryInput
	in.Year = year

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.Assets, err = s.repos.AssetRepo.ListAssets(gctx, domain.AssetFilter{})
		return wrapIf(err, "failed to list assets")
	})
	g.Go(func() (err error) {
		in.CreditCalculations, err = s.repos.TaxCreditRepo.ListTaxCreditCalculations(gctx)
		return wrapIf(err, "failed to list tax credit calculations")
	})
	g.Go(func() (err error) {
		in.DepreciationCalculations, err = s.repos.DepreciationRepo.ListDepreciationCalculations(gctx)
		return wrapIf(err, "failed to list depreciation calculations")
	})
	g.Go(func() (err error) {
		in.Disposals, err = s.repos.DisposalRepo.ListDisposals(gctx)
		return wrapIf(err, "failed to list disposals")
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load dashboard data", slog.Int("year", year))
		return nil, err
	}

	summary := accounting.Summarize(in)
	s.LogDebug(ctx, "Dashboard computed",
		slog.Int("assets", summary.AssetCount),
		slog.Int("months", len(summary.Monthly)))
	return &summary, nil
}

func wrapIf(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
