package billing

import (
	"context"
	"testing"
	"time"

	"github.com/comex/backend/internal/domain/billing"
	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReceiptRepository is a mock implementation of ReceiptRepository
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[*billing.Receipt], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*billing.Receipt]), args.Error(1)
}

func (m *MockReceiptRepository) Save(ctx context.Context, receipt *billing.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReceiptRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReceiptRepository) FindByReceiptNumber(ctx context.Context, receiptNumber string) (*billing.Receipt, error) {
	args := m.Called(ctx, receiptNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*billing.Receipt, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) ExistsByReceiptNumber(ctx context.Context, receiptNumber string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, receiptNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func TestReceiptServiceCreate(t *testing.T) {
	ctx := context.Background()

	newInvoice := func(t *testing.T) *billing.Invoice {
		t.Helper()
		inv, err := billing.NewInvoice(uuid.New(), uuid.New(), "INV-1", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			decimal.NewFromInt(5), decimal.NewFromInt(1000), decimal.NewFromInt(38))
		require.NoError(t, err)
		return inv
	}

	baseRequest := func(invoiceID uuid.UUID) CreateReceiptRequest {
		return CreateReceiptRequest{
			InvoiceID:     invoiceID,
			ReceiptNumber: "REC-2026-0001",
			Amount:        decimal.RequireFromString("1038.00"),
			PaymentDate:   time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("derives ownership from the invoice", func(t *testing.T) {
		receipts := new(MockReceiptRepository)
		invoices := new(MockInvoiceRepository)
		service := NewReceiptService(receipts, invoices)
		invoice := newInvoice(t)

		invoices.On("FindByID", ctx, invoice.GetID()).Return(invoice, nil)
		receipts.On("ExistsByReceiptNumber", ctx, "REC-2026-0001", (*uuid.UUID)(nil)).Return(false, nil)
		receipts.On("Save", ctx, mock.AnythingOfType("*billing.Receipt")).Return(nil)

		resp, err := service.Create(ctx, baseRequest(invoice.GetID()))
		require.NoError(t, err)
		assert.Equal(t, invoice.OperationID, resp.OperationID)
		assert.Equal(t, invoice.ClientID, resp.ClientID)
		receipts.AssertExpectations(t)
	})

	t.Run("rejects duplicate receipt number", func(t *testing.T) {
		receipts := new(MockReceiptRepository)
		invoices := new(MockInvoiceRepository)
		service := NewReceiptService(receipts, invoices)
		invoice := newInvoice(t)

		invoices.On("FindByID", ctx, invoice.GetID()).Return(invoice, nil)
		receipts.On("ExistsByReceiptNumber", ctx, "REC-2026-0001", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := service.Create(ctx, baseRequest(invoice.GetID()))
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		receipts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("fails when the invoice does not exist", func(t *testing.T) {
		receipts := new(MockReceiptRepository)
		invoices := new(MockInvoiceRepository)
		service := NewReceiptService(receipts, invoices)
		missingID := uuid.New()

		invoices.On("FindByID", ctx, missingID).Return(nil, shared.NewDomainError("NOT_FOUND", "Invoice not found"))

		_, err := service.Create(ctx, baseRequest(missingID))
		require.Error(t, err)
		receipts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestReceiptServiceUpdate(t *testing.T) {
	ctx := context.Background()

	newReceipt := func(t *testing.T) *billing.Receipt {
		t.Helper()
		receipt, err := billing.NewReceipt(uuid.New(), uuid.New(), uuid.New(), "REC-1",
			decimal.NewFromInt(500), time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		return receipt
	}

	t.Run("rejects non-positive amount", func(t *testing.T) {
		receipts := new(MockReceiptRepository)
		invoices := new(MockInvoiceRepository)
		service := NewReceiptService(receipts, invoices)
		receipt := newReceipt(t)
		id := receipt.GetID()

		receipts.On("FindByID", ctx, id).Return(receipt, nil)

		zero := decimal.Zero
		_, err := service.Update(ctx, id, UpdateReceiptRequest{Amount: &zero})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
		receipts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("number conflict excludes own record", func(t *testing.T) {
		receipts := new(MockReceiptRepository)
		invoices := new(MockInvoiceRepository)
		service := NewReceiptService(receipts, invoices)
		receipt := newReceipt(t)
		id := receipt.GetID()

		receipts.On("FindByID", ctx, id).Return(receipt, nil)
		receipts.On("ExistsByReceiptNumber", ctx, "REC-2", &id).Return(true, nil)

		newNumber := "REC-2"
		_, err := service.Update(ctx, id, UpdateReceiptRequest{ReceiptNumber: &newNumber})
		require.Error(t, err)
		receipts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
