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

// =============================================================================
// Mocks
// =============================================================================

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[*billing.Invoice], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*billing.Invoice]), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*billing.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByOperationID(ctx context.Context, operationID uuid.UUID) ([]*billing.Invoice, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*billing.Invoice, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsByInvoiceNumber(ctx context.Context, invoiceNumber string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, invoiceNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) ReplaceItems(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateStatusByOperation(ctx context.Context, operationID uuid.UUID, status billing.InvoiceStatus) error {
	args := m.Called(ctx, operationID, status)
	return args.Error(0)
}

// MockTotalsRecalculator is a mock implementation of TotalsRecalculator
type MockTotalsRecalculator struct {
	mock.Mock
}

func (m *MockTotalsRecalculator) Recalculate(ctx context.Context, operationID uuid.UUID) error {
	args := m.Called(ctx, operationID)
	return args.Error(0)
}

// =============================================================================
// Tests
// =============================================================================

func TestInvoiceServiceCreate(t *testing.T) {
	ctx := context.Background()
	operationID := uuid.New()

	baseRequest := func() CreateInvoiceRequest {
		return CreateInvoiceRequest{
			OperationID:   operationID,
			ClientID:      uuid.New(),
			InvoiceNumber: "INV-2026-0001",
			IssueDate:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			DollarRate:    decimal.RequireFromString("5.10"),
			TotalAmount:   decimal.RequireFromString("1000.00"),
			IOFAmount:     decimal.RequireFromString("38.00"),
		}
	}

	t.Run("derives final amount server-side", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		totals := new(MockTotalsRecalculator)
		service := NewInvoiceService(repo, totals)

		repo.On("ExistsByInvoiceNumber", ctx, "INV-2026-0001", (*uuid.UUID)(nil)).Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*billing.Invoice")).Return(nil)
		totals.On("Recalculate", ctx, operationID).Return(nil)

		resp, err := service.Create(ctx, baseRequest())
		require.NoError(t, err)
		assert.True(t, resp.FinalAmount.Equal(decimal.RequireFromString("1038.00")))
		assert.Equal(t, "pending", resp.Status)
		totals.AssertExpectations(t)
	})

	t.Run("rejects duplicate invoice number", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		totals := new(MockTotalsRecalculator)
		service := NewInvoiceService(repo, totals)

		repo.On("ExistsByInvoiceNumber", ctx, "INV-2026-0001", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := service.Create(ctx, baseRequest())
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		totals.AssertNotCalled(t, "Recalculate", mock.Anything, mock.Anything)
	})

	t.Run("item currencies default to BRL", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		totals := new(MockTotalsRecalculator)
		service := NewInvoiceService(repo, totals)

		repo.On("ExistsByInvoiceNumber", ctx, "INV-2026-0001", (*uuid.UUID)(nil)).Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*billing.Invoice")).Return(nil)
		totals.On("Recalculate", ctx, operationID).Return(nil)

		req := baseRequest()
		req.Items = []InvoiceItemRequest{
			{Description: "Despacho", Amount: decimal.NewFromInt(500)},
			{Description: "Freight", Amount: decimal.NewFromInt(300), CostAmount: decimal.NewFromInt(20), CostCurrency: "USD"},
		}

		resp, err := service.Create(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "BRL", resp.Items[0].Currency)
		assert.Equal(t, "BRL", resp.Items[0].CostCurrency)
		assert.Equal(t, "USD", resp.Items[1].CostCurrency)
	})
}

func TestInvoiceServiceUpdate(t *testing.T) {
	ctx := context.Background()

	newInvoice := func(t *testing.T) *billing.Invoice {
		t.Helper()
		inv, err := billing.NewInvoice(uuid.New(), uuid.New(), "INV-1", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			decimal.NewFromInt(5), decimal.NewFromInt(1000), decimal.NewFromInt(38))
		require.NoError(t, err)
		return inv
	}

	t.Run("recomputes final amount on amount change", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		totals := new(MockTotalsRecalculator)
		service := NewInvoiceService(repo, totals)
		invoice := newInvoice(t)
		id := invoice.GetID()

		repo.On("FindByID", ctx, id).Return(invoice, nil)
		repo.On("Save", ctx, invoice).Return(nil)
		totals.On("Recalculate", ctx, invoice.OperationID).Return(nil)

		newTotal := decimal.NewFromInt(2000)
		resp, err := service.Update(ctx, id, UpdateInvoiceRequest{TotalAmount: &newTotal})
		require.NoError(t, err)
		assert.True(t, resp.FinalAmount.Equal(decimal.NewFromInt(2038)))
		totals.AssertExpectations(t)
	})

	t.Run("replaces items wholesale", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		totals := new(MockTotalsRecalculator)
		service := NewInvoiceService(repo, totals)
		invoice := newInvoice(t)
		id := invoice.GetID()

		repo.On("FindByID", ctx, id).Return(invoice, nil)
		repo.On("Save", ctx, invoice).Return(nil)
		repo.On("ReplaceItems", ctx, invoice).Return(nil)
		totals.On("Recalculate", ctx, invoice.OperationID).Return(nil)

		resp, err := service.Update(ctx, id, UpdateInvoiceRequest{
			Items: []InvoiceItemRequest{{Description: "Armazenagem", Amount: decimal.NewFromInt(150)}},
		})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Armazenagem", resp.Items[0].Description)
		repo.AssertExpectations(t)
	})

	t.Run("number conflict excludes own record", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		totals := new(MockTotalsRecalculator)
		service := NewInvoiceService(repo, totals)
		invoice := newInvoice(t)
		id := invoice.GetID()

		repo.On("FindByID", ctx, id).Return(invoice, nil)
		repo.On("ExistsByInvoiceNumber", ctx, "INV-2", &id).Return(true, nil)

		newNumber := "INV-2"
		_, err := service.Update(ctx, id, UpdateInvoiceRequest{InvoiceNumber: &newNumber})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestInvoiceServiceDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvoiceRepository)
	totals := new(MockTotalsRecalculator)
	service := NewInvoiceService(repo, totals)

	invoice, err := billing.NewInvoice(uuid.New(), uuid.New(), "INV-1", time.Now(), decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	id := invoice.GetID()

	repo.On("FindByID", ctx, id).Return(invoice, nil)
	repo.On("Delete", ctx, id).Return(nil)
	totals.On("Recalculate", ctx, invoice.OperationID).Return(nil)

	// totals of the former operation refresh even though the invoice is gone
	require.NoError(t, service.Delete(ctx, id))
	totals.AssertExpectations(t)
}

func TestInvoiceServiceMarkAsPaid(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvoiceRepository)
	totals := new(MockTotalsRecalculator)
	service := NewInvoiceService(repo, totals)

	invoice, err := billing.NewInvoice(uuid.New(), uuid.New(), "INV-1", time.Now(), decimal.Zero, decimal.NewFromInt(100), decimal.Zero)
	require.NoError(t, err)
	id := invoice.GetID()

	repo.On("FindByID", ctx, id).Return(invoice, nil)
	repo.On("Save", ctx, invoice).Return(nil)

	paidDate := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	resp, err := service.MarkAsPaid(ctx, id, MarkInvoicePaidRequest{PaidDate: paidDate, PaymentMethod: "pix"})
	require.NoError(t, err)
	assert.Equal(t, "paid", resp.Status)
	require.NotNil(t, resp.PaidDate)
	assert.Equal(t, paidDate, *resp.PaidDate)
}
