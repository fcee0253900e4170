package clearance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperation(t *testing.T) {
	t.Run("valid operation", func(t *testing.T) {
		op, err := NewOperation(uuid.New(), uuid.New(), "OP-2026-001", "Container de autopeças")
		require.NoError(t, err)
		assert.Equal(t, OperationStatusPending, op.Status)
		assert.True(t, op.TotalSelling.IsZero())
		assert.True(t, op.ProfitMargin.IsZero())
	})

	t.Run("rejects nil client", func(t *testing.T) {
		_, err := NewOperation(uuid.Nil, uuid.New(), "OP-1", "")
		assert.Error(t, err)
	})

	t.Run("rejects nil supplier", func(t *testing.T) {
		_, err := NewOperation(uuid.New(), uuid.Nil, "OP-1", "")
		assert.Error(t, err)
	})

	t.Run("rejects empty reference", func(t *testing.T) {
		_, err := NewOperation(uuid.New(), uuid.New(), "", "")
		assert.Error(t, err)
	})
}

func TestOperationChangeStatus(t *testing.T) {
	op, err := NewOperation(uuid.New(), uuid.New(), "OP-1", "")
	require.NoError(t, err)

	assert.NoError(t, op.ChangeStatus(OperationStatusInProgress))
	assert.NoError(t, op.ChangeStatus(OperationStatusCompleted))
	assert.True(t, op.IsCompleted())

	// corrections move backwards freely
	assert.NoError(t, op.ChangeStatus(OperationStatusPending))
	assert.False(t, op.IsCompleted())

	assert.Error(t, op.ChangeStatus(OperationStatus("shipped")))
}

func TestComputeTotals(t *testing.T) {
	t.Run("positive margin", func(t *testing.T) {
		totals := ComputeTotals(decimal.NewFromInt(1000), decimal.NewFromInt(600))
		assert.True(t, totals.Profit.Equal(decimal.NewFromInt(400)))
		assert.True(t, totals.Margin.Equal(decimal.NewFromInt(40)))
	})

	t.Run("margin rounds to two places", func(t *testing.T) {
		totals := ComputeTotals(decimal.NewFromInt(3), decimal.NewFromInt(1))
		assert.Equal(t, "66.67", totals.Margin.StringFixed(2))
	})

	t.Run("zero selling yields zero margin", func(t *testing.T) {
		totals := ComputeTotals(decimal.Zero, decimal.NewFromInt(100))
		assert.True(t, totals.Margin.IsZero())
		assert.True(t, totals.Profit.Equal(decimal.NewFromInt(-100)))
	})

	t.Run("break even", func(t *testing.T) {
		totals := ComputeTotals(decimal.NewFromInt(100), decimal.NewFromInt(100))
		assert.True(t, totals.Profit.IsZero())
		assert.True(t, totals.Margin.IsZero())
	})
}

func TestOperationApplyTotals(t *testing.T) {
	op, err := NewOperation(uuid.New(), uuid.New(), "OP-1", "")
	require.NoError(t, err)

	op.ApplyTotals(ComputeTotals(decimal.NewFromInt(500), decimal.NewFromInt(200)))
	assert.True(t, op.TotalSelling.Equal(decimal.NewFromInt(500)))
	assert.True(t, op.TotalCost.Equal(decimal.NewFromInt(200)))
	assert.True(t, op.TotalProfit.Equal(decimal.NewFromInt(300)))
	assert.True(t, op.ProfitMargin.Equal(decimal.NewFromInt(60)))

	op.ApplyTotals(ZeroTotals())
	assert.True(t, op.TotalSelling.IsZero())
	assert.True(t, op.ProfitMargin.IsZero())
}
