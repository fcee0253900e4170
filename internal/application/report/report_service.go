package report

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Repository runs the aggregate queries behind the reports namespace.
// All figures come from the stored operation totals, which the
// recalculation keeps in sync with the invoices.
type Repository interface {
	Summary(ctx context.Context) (*Summary, error)
	ProfitByOperation(ctx context.Context, filter PeriodFilter) ([]OperationProfitRow, error)
	ProfitByPeriod(ctx context.Context, filter PeriodFilter) ([]PeriodProfitRow, error)
	ProfitByClient(ctx context.Context, filter PeriodFilter) ([]ClientProfitRow, error)
}

// SummaryCache caches the dashboard summary between billing mutations
type SummaryCache interface {
	Get(ctx context.Context) (*Summary, bool)
	Set(ctx context.Context, summary *Summary, ttl time.Duration)
	Invalidate(ctx context.Context)
}

// Service serves the reporting endpoints
type Service struct {
	repo     Repository
	cache    SummaryCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService creates a new report Service
func NewService(repo Repository, cache SummaryCache, cacheTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// GetSummary returns the dashboard summary, served from cache when warm
func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	if summary, ok := s.cache.Get(ctx); ok {
		return summary, nil
	}

	summary, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, summary, s.cacheTTL)
	return summary, nil
}

// InvalidateSummary drops the cached summary after billing data changed
func (s *Service) InvalidateSummary(ctx context.Context) {
	s.cache.Invalidate(ctx)
	s.logger.Debug("report summary cache invalidated")
}

// GetProfitByOperation lists per-operation profitability
func (s *Service) GetProfitByOperation(ctx context.Context, filter PeriodFilter) ([]OperationProfitRow, error) {
	return s.repo.ProfitByOperation(ctx, filter)
}

// GetProfitByPeriod aggregates profitability per calendar month
func (s *Service) GetProfitByPeriod(ctx context.Context, filter PeriodFilter) ([]PeriodProfitRow, error) {
	return s.repo.ProfitByPeriod(ctx, filter)
}

// GetProfitByClient aggregates profitability per client
func (s *Service) GetProfitByClient(ctx context.Context, filter PeriodFilter) ([]ClientProfitRow, error) {
	return s.repo.ProfitByClient(ctx, filter)
}
