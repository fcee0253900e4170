package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Summary(ctx context.Context) (*Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Summary), args.Error(1)
}

func (m *MockRepository) ProfitByOperation(ctx context.Context, filter PeriodFilter) ([]OperationProfitRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]OperationProfitRow), args.Error(1)
}

func (m *MockRepository) ProfitByPeriod(ctx context.Context, filter PeriodFilter) ([]PeriodProfitRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PeriodProfitRow), args.Error(1)
}

func (m *MockRepository) ProfitByClient(ctx context.Context, filter PeriodFilter) ([]ClientProfitRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ClientProfitRow), args.Error(1)
}

// MockSummaryCache is a mock implementation of SummaryCache
type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) Get(ctx context.Context) (*Summary, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*Summary), args.Bool(1)
}

func (m *MockSummaryCache) Set(ctx context.Context, summary *Summary, ttl time.Duration) {
	m.Called(ctx, summary, ttl)
}

func (m *MockSummaryCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()

	summary := &Summary{
		TotalOperations:     10,
		CompletedOperations: 4,
		TotalSelling:        decimal.NewFromInt(10000),
		TotalCost:           decimal.NewFromInt(6000),
		TotalProfit:         decimal.NewFromInt(4000),
		AverageMargin:       decimal.NewFromInt(40),
	}

	t.Run("cache miss queries and fills cache", func(t *testing.T) {
		repo := new(MockRepository)
		cache := new(MockSummaryCache)
		service := NewService(repo, cache, 5*time.Minute, zap.NewNop())

		cache.On("Get", ctx).Return(nil, false)
		repo.On("Summary", ctx).Return(summary, nil)
		cache.On("Set", ctx, summary, 5*time.Minute).Return()

		got, err := service.GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, summary, got)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips the query", func(t *testing.T) {
		repo := new(MockRepository)
		cache := new(MockSummaryCache)
		service := NewService(repo, cache, 5*time.Minute, zap.NewNop())

		cache.On("Get", ctx).Return(summary, true)

		got, err := service.GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, summary, got)
		repo.AssertNotCalled(t, "Summary", mock.Anything)
	})

	t.Run("invalidate drops the cache", func(t *testing.T) {
		repo := new(MockRepository)
		cache := new(MockSummaryCache)
		service := NewService(repo, cache, 5*time.Minute, zap.NewNop())

		cache.On("Invalidate", ctx).Return()
		service.InvalidateSummary(ctx)
		cache.AssertExpectations(t)
	})
}

func TestProfitReports(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	cache := new(MockSummaryCache)
	service := NewService(repo, cache, time.Minute, zap.NewNop())

	filter := PeriodFilter{
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	rows := []PeriodProfitRow{
		{Period: "2026-03", Operations: 2, TotalProfit: decimal.NewFromInt(1500)},
		{Period: "2026-04", Operations: 1, TotalProfit: decimal.NewFromInt(700)},
	}
	repo.On("ProfitByPeriod", ctx, filter).Return(rows, nil)

	got, err := service.GetProfitByPeriod(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "2026-03", got[0].Period)
}
