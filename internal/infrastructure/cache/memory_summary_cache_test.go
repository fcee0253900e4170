package cache

import (
	"context"
	"testing"
	"time"

	"github.com/comex/backend/internal/application/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySummaryCache(t *testing.T) {
	ctx := context.Background()

	summary := &report.Summary{
		TotalOperations:     10,
		CompletedOperations: 6,
		TotalSelling:        decimal.NewFromInt(10000),
		TotalCost:           decimal.NewFromInt(6000),
		TotalProfit:         decimal.NewFromInt(4000),
		AverageMargin:       decimal.NewFromInt(40),
	}

	t.Run("misses when empty", func(t *testing.T) {
		cache := NewInMemorySummaryCache()

		got, ok := cache.Get(ctx)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("serves a stored summary until it expires", func(t *testing.T) {
		cache := NewInMemorySummaryCache()
		cache.Set(ctx, summary, 50*time.Millisecond)

		got, ok := cache.Get(ctx)
		require.True(t, ok)
		assert.Equal(t, int64(6), got.CompletedOperations)
		assert.True(t, got.TotalProfit.Equal(decimal.NewFromInt(4000)))

		time.Sleep(60 * time.Millisecond)

		_, ok = cache.Get(ctx)
		assert.False(t, ok)
	})

	t.Run("returns a copy, not the stored pointer", func(t *testing.T) {
		cache := NewInMemorySummaryCache()
		cache.Set(ctx, summary, time.Minute)

		got, ok := cache.Get(ctx)
		require.True(t, ok)
		got.TotalOperations = 99

		again, ok := cache.Get(ctx)
		require.True(t, ok)
		assert.Equal(t, int64(10), again.TotalOperations)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		cache := NewInMemorySummaryCache()
		cache.Set(ctx, summary, time.Minute)
		cache.Invalidate(ctx)

		_, ok := cache.Get(ctx)
		assert.False(t, ok)
	})
}
