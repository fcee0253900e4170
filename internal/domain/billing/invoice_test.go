package billing

import (
	"testing"
	"time"

	"github.com/comex/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoice(t *testing.T) *Invoice {
	t.Helper()
	inv, err := NewInvoice(
		uuid.New(),
		uuid.New(),
		"INV-2026-0001",
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("5.1234"),
		decimal.RequireFromString("1000.00"),
		decimal.RequireFromString("38.00"),
	)
	require.NoError(t, err)
	return inv
}

func TestNewInvoice(t *testing.T) {
	t.Run("derives final amount", func(t *testing.T) {
		inv := testInvoice(t)
		assert.Equal(t, InvoiceStatusPending, inv.Status)
		assert.True(t, inv.FinalAmount.Equal(decimal.RequireFromString("1038.00")))
	})

	t.Run("rejects nil operation", func(t *testing.T) {
		_, err := NewInvoice(uuid.Nil, uuid.New(), "INV-1", time.Now(), decimal.Zero, decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects nil client", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), uuid.Nil, "INV-1", time.Now(), decimal.Zero, decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects empty invoice number", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), uuid.New(), "", time.Now(), decimal.Zero, decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), uuid.New(), "INV-1", time.Now(), decimal.Zero, decimal.NewFromInt(-1), decimal.Zero)
		assert.Error(t, err)
	})
}

func TestInvoiceSetAmounts(t *testing.T) {
	inv := testInvoice(t)

	err := inv.SetAmounts(decimal.RequireFromString("2000.00"), decimal.RequireFromString("76.00"))
	assert.NoError(t, err)
	assert.True(t, inv.FinalAmount.Equal(decimal.RequireFromString("2076.00")))

	err = inv.SetAmounts(decimal.NewFromInt(-5), decimal.Zero)
	assert.Error(t, err)
}

func TestInvoiceReplaceItems(t *testing.T) {
	inv := testInvoice(t)

	first, err := NewInvoiceItem("Despacho aduaneiro", valueobject.NewMoneyBRL(decimal.NewFromInt(500)), valueobject.NewMoneyUSD(decimal.NewFromInt(50)))
	require.NoError(t, err)
	second, err := NewInvoiceItem("Armazenagem", valueobject.NewMoneyBRL(decimal.NewFromInt(300)), valueobject.NewMoneyBRL(decimal.NewFromInt(120)))
	require.NoError(t, err)

	inv.ReplaceItems([]*InvoiceItem{first, second})
	assert.Len(t, inv.Items, 2)
	for _, item := range inv.Items {
		assert.Equal(t, inv.GetID(), item.InvoiceID)
	}

	// replacement is wholesale
	third, err := NewInvoiceItem("Frete interno", valueobject.NewMoneyBRL(decimal.NewFromInt(200)), valueobject.ZeroBRL())
	require.NoError(t, err)
	inv.ReplaceItems([]*InvoiceItem{third})
	assert.Len(t, inv.Items, 1)
	assert.Equal(t, "Frete interno", inv.Items[0].Description)
}

func TestInvoiceTotalCostBRL(t *testing.T) {
	inv := testInvoice(t)
	inv.DollarRate = decimal.NewFromInt(5)

	usdItem, err := NewInvoiceItem("Freight", valueobject.NewMoneyBRL(decimal.NewFromInt(1000)), valueobject.NewMoneyUSD(decimal.NewFromInt(20)))
	require.NoError(t, err)
	brlItem, err := NewInvoiceItem("Despacho", valueobject.NewMoneyBRL(decimal.NewFromInt(500)), valueobject.NewMoneyBRL(decimal.NewFromInt(150)))
	require.NoError(t, err)
	inv.ReplaceItems([]*InvoiceItem{usdItem, brlItem})

	// 20 USD * 5 + 150 BRL = 250 BRL
	assert.True(t, inv.TotalCostBRL().Equal(decimal.NewFromInt(250)))
}

func TestInvoiceTotalCostBRLWithoutRate(t *testing.T) {
	inv := testInvoice(t)
	inv.DollarRate = decimal.Zero

	usdItem, err := NewInvoiceItem("Freight", valueobject.NewMoneyBRL(decimal.NewFromInt(1000)), valueobject.NewMoneyUSD(decimal.NewFromInt(20)))
	require.NoError(t, err)
	inv.ReplaceItems([]*InvoiceItem{usdItem})

	// a missing rate converts at 1 instead of zeroing the cost out
	assert.True(t, inv.TotalCostBRL().Equal(decimal.NewFromInt(20)))
}

func TestInvoicePaymentLifecycle(t *testing.T) {
	inv := testInvoice(t)
	paidDate := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)

	err := inv.MarkAsPaid(paidDate, "pix")
	assert.NoError(t, err)
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
	require.NotNil(t, inv.PaidDate)
	assert.Equal(t, paidDate, *inv.PaidDate)
	assert.Equal(t, "pix", inv.PaymentMethod)

	inv.Cancel()
	assert.Equal(t, InvoiceStatusCancelled, inv.Status)

	err = inv.MarkAsPaid(paidDate, "pix")
	assert.Error(t, err)
}

func TestNewReceipt(t *testing.T) {
	paymentDate := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)

	t.Run("valid receipt", func(t *testing.T) {
		receipt, err := NewReceipt(uuid.New(), uuid.New(), uuid.New(), "REC-0001", decimal.NewFromInt(1038), paymentDate)
		assert.NoError(t, err)
		assert.Equal(t, "REC-0001", receipt.ReceiptNumber)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewReceipt(uuid.New(), uuid.New(), uuid.New(), "REC-0001", decimal.Zero, paymentDate)
		assert.Error(t, err)
	})

	t.Run("rejects nil invoice", func(t *testing.T) {
		_, err := NewReceipt(uuid.Nil, uuid.New(), uuid.New(), "REC-0001", decimal.NewFromInt(10), paymentDate)
		assert.Error(t, err)
	})

	t.Run("rejects missing ownership", func(t *testing.T) {
		_, err := NewReceipt(uuid.New(), uuid.Nil, uuid.New(), "REC-0001", decimal.NewFromInt(10), paymentDate)
		assert.Error(t, err)
	})
}
