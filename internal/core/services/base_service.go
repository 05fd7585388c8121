package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
)

// CalculationObserver receives one observation per calculation run.
type CalculationObserver interface {
	ObserveCalculation(kind string, periods int, err error, duration time.Duration)
	ObserveSettlementWarning(code string)
}

// BaseService provides common functionality for all services
type BaseService struct {
	Observer CalculationObserver
	Clock    func() time.Time
}

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithObserver reports calculation runs to observer.
func WithObserver(observer CalculationObserver) Option {
	return func(s *BaseService) {
		s.Observer = observer
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func (s *BaseService) apply(opts []Option) {
	for _, opt := range opts {
		opt(s)
	}
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// logRepoError logs repository failures, except the expected ones that
// callers turn into 4xx responses.
func (s *BaseService) logRepoError(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrConflict) {
		s.LogDebug(ctx, msg, append(keyvals, slog.String("error", err.Error()))...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

func (s *BaseService) observe(kind string, periods int, err error, start time.Time) {
	if s.Observer == nil {
		return
	}
	s.Observer.ObserveCalculation(kind, periods, err, time.Since(start))
}

// loadAsset fetches an asset, wrapping a missing one as "asset not found".
func (s *BaseService) loadAsset(ctx context.Context, repo portsrepo.AssetReader, assetID string) (*domain.Asset, error) {
	asset, err := repo.FindAssetByID(ctx, assetID)
	if err != nil {
		s.logRepoError(ctx, err, "Failed to find asset", slog.String("asset_id", assetID))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("asset not found: %w", err)
		}
		return nil, fmt.Errorf("failed to load asset: %w", err)
	}
	return asset, nil
}

// loadWritableAsset fetches an asset that may still receive new calculations.
func (s *BaseService) loadWritableAsset(ctx context.Context, repo portsrepo.AssetReader, assetID string) (*domain.Asset, error) {
	asset, err := s.loadAsset(ctx, repo, assetID)
	if err != nil {
		return nil, err
	}
	if asset.IsWrittenOff() {
		s.LogWarn(ctx, "Rejected change to written-off asset", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("asset %s is written off: %w", assetID, apperrors.ErrConflict)
	}
	return asset, nil
}

func newAudit(userID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}
