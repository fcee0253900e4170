// Package integration tests the profitability reports against stored
// operation totals, including the summary cache behavior.
package integration

import (
	"context"
	"os"
	"testing"
	"time"

	billingapp "github.com/comex/backend/internal/application/billing"
	clearanceapp "github.com/comex/backend/internal/application/clearance"
	partnerapp "github.com/comex/backend/internal/application/partner"
	reportapp "github.com/comex/backend/internal/application/report"
	"github.com/comex/backend/internal/infrastructure/cache"
	"github.com/comex/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

// ReportTestSetup wires the report pipeline against the shared database
type ReportTestSetup struct {
	DB         *TestDB
	Clients    *partnerapp.ClientService
	Suppliers  *partnerapp.SupplierService
	Operations *clearanceapp.OperationService
	Invoices   *billingapp.InvoiceService
	Reports    *reportapp.Service
}

// NewReportTestSetup cleans the shared database and wires the services.
// The operation service invalidates the summary cache on every change,
// mirroring the production wiring.
func NewReportTestSetup(t *testing.T) *ReportTestSetup {
	t.Helper()

	testDB := NewSharedTestDB(t)
	testDB.CleanTables()

	clientRepo := persistence.NewGormClientRepository(testDB.DB)
	supplierRepo := persistence.NewGormSupplierRepository(testDB.DB)
	operationRepo := persistence.NewGormOperationRepository(testDB.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(testDB.DB)
	reportRepo := persistence.NewGormReportRepository(testDB.DB)

	operationService := clearanceapp.NewOperationService(operationRepo, invoiceRepo, zap.NewNop())
	reportService := reportapp.NewService(reportRepo, cache.NewInMemorySummaryCache(), time.Minute, zap.NewNop())
	operationService.WithSummaryInvalidator(reportService)

	return &ReportTestSetup{
		DB:         testDB,
		Clients:    partnerapp.NewClientService(clientRepo),
		Suppliers:  partnerapp.NewSupplierService(supplierRepo),
		Operations: operationService,
		Invoices:   billingapp.NewInvoiceService(invoiceRepo, operationService),
		Reports:    reportService,
	}
}

func (s *ReportTestSetup) createClient(t *testing.T, consignee, cnpj, referenceNumber string) uuid.UUID {
	t.Helper()

	client, err := s.Clients.Create(context.Background(), partnerapp.CreateClientRequest{
		Shipper:         "Overseas Exports Co",
		Consignee:       consignee,
		CNPJ:            cnpj,
		BL:              "BL-" + referenceNumber,
		BLDate:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		ReferenceNumber: referenceNumber,
		FreightTerm:     "FOB",
	})
	require.NoError(t, err)
	return client.ID
}

func (s *ReportTestSetup) createSupplier(t *testing.T, name string) uuid.UUID {
	t.Helper()

	supplier, err := s.Suppliers.Create(context.Background(), partnerapp.CreateSupplierRequest{
		Name:        name,
		CNPJ:        nextCNPJ(),
		ServiceType: "Despacho aduaneiro",
	})
	require.NoError(t, err)
	return supplier.ID
}

// seedCompletedOperation creates an operation with one invoice and marks
// it completed so its totals land in the report base.
func (s *ReportTestSetup) seedCompletedOperation(t *testing.T, clientID, supplierID uuid.UUID, referenceNumber string, start time.Time, selling, cost string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	operation, err := s.Operations.Create(ctx, clearanceapp.CreateOperationRequest{
		ClientID:        clientID,
		SupplierID:      supplierID,
		ReferenceNumber: referenceNumber,
		StartDate:       &start,
	})
	require.NoError(t, err)

	_, err = s.Invoices.Create(ctx, billingapp.CreateInvoiceRequest{
		OperationID:   operation.ID,
		ClientID:      clientID,
		InvoiceNumber: "INV-" + referenceNumber,
		IssueDate:     start,
		TotalAmount:   decimal.RequireFromString(selling),
		Items: []billingapp.InvoiceItemRequest{
			{
				Description: "Clearance services",
				Amount:      decimal.RequireFromString(selling),
				CostAmount:  decimal.RequireFromString(cost),
			},
		},
	})
	require.NoError(t, err)

	completed := "completed"
	_, err = s.Operations.Update(ctx, operation.ID, clearanceapp.UpdateOperationRequest{
		Status: &completed,
	})
	require.NoError(t, err)

	return operation.ID
}

func TestReports_Summary(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	setup := NewReportTestSetup(t)
	ctx := context.Background()

	clientID := setup.createClient(t, "Importadora Atlantica", "12.345.678/0001-95", "RPT-1001")
	supplierID := setup.createSupplier(t, "Despachos Maritimos Ltda")
	setup.seedCompletedOperation(t, clientID, supplierID, "OP-RPT-1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "1000.00", "400.00")

	// A pending operation counts in the total but not in the figures
	_, err := setup.Operations.Create(ctx, clearanceapp.CreateOperationRequest{
		ClientID:        clientID,
		SupplierID:      supplierID,
		ReferenceNumber: "OP-RPT-2",
	})
	require.NoError(t, err)

	t.Run("only completed operations contribute figures", func(t *testing.T) {
		summary, err := setup.Reports.GetSummary(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(2), summary.TotalOperations)
		assert.Equal(t, int64(1), summary.CompletedOperations)
		assert.True(t, summary.TotalSelling.Equal(decimal.RequireFromString("1000.00")))
		assert.True(t, summary.TotalCost.Equal(decimal.RequireFromString("400.00")))
		assert.True(t, summary.TotalProfit.Equal(decimal.RequireFromString("600.00")))
		assert.True(t, summary.AverageMargin.Equal(decimal.RequireFromString("60.00")),
			"average margin should be profit over selling, got %s", summary.AverageMargin)
	})

	t.Run("summary is served from cache until invalidated", func(t *testing.T) {
		_, err := setup.Reports.GetSummary(ctx)
		require.NoError(t, err)

		// Mutate behind the cache's back; the stale figure survives
		err = setup.DB.DB.Exec("UPDATE operations SET total_profit = 9999 WHERE reference_number = 'OP-RPT-1'").Error
		require.NoError(t, err)

		cached, err := setup.Reports.GetSummary(ctx)
		require.NoError(t, err)
		assert.True(t, cached.TotalProfit.Equal(decimal.RequireFromString("600.00")),
			"summary should come from cache, got %s", cached.TotalProfit)

		setup.Reports.InvalidateSummary(ctx)

		fresh, err := setup.Reports.GetSummary(ctx)
		require.NoError(t, err)
		assert.True(t, fresh.TotalProfit.Equal(decimal.RequireFromString("9999")),
			"invalidation should force a re-read, got %s", fresh.TotalProfit)
	})

	t.Run("operation changes invalidate the cache", func(t *testing.T) {
		before, err := setup.Reports.GetSummary(ctx)
		require.NoError(t, err)

		setup.seedCompletedOperation(t, clientID, supplierID, "OP-RPT-3", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), "500.00", "100.00")

		after, err := setup.Reports.GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, before.CompletedOperations+1, after.CompletedOperations)
		assert.True(t, after.TotalProfit.Equal(before.TotalProfit.Add(decimal.RequireFromString("400.00"))))
	})
}

func TestReports_ProfitBreakdowns(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	setup := NewReportTestSetup(t)
	ctx := context.Background()

	atlantica := setup.createClient(t, "Importadora Atlantica", "12.345.678/0001-95", "RPT-2001")
	pacifica := setup.createClient(t, "Comercial Pacifica", "98.765.432/0001-10", "RPT-2002")
	supplierID := setup.createSupplier(t, "Armazens Gerais Santos")

	// March: two operations for Atlantica; April: one for Pacifica
	setup.seedCompletedOperation(t, atlantica, supplierID, "OP-BRK-1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "1000.00", "400.00")
	setup.seedCompletedOperation(t, atlantica, supplierID, "OP-BRK-2", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), "2000.00", "500.00")
	setup.seedCompletedOperation(t, pacifica, supplierID, "OP-BRK-3", time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), "800.00", "700.00")

	t.Run("by operation orders most profitable first", func(t *testing.T) {
		rows, err := setup.Reports.GetProfitByOperation(ctx, reportapp.PeriodFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, "OP-BRK-2", rows[0].ReferenceNumber)
		assert.Equal(t, "Importadora Atlantica", rows[0].Consignee)
		assert.True(t, rows[0].TotalProfit.Equal(decimal.RequireFromString("1500.00")))
		assert.Equal(t, "OP-BRK-3", rows[2].ReferenceNumber)
	})

	t.Run("by period groups calendar months", func(t *testing.T) {
		rows, err := setup.Reports.GetProfitByPeriod(ctx, reportapp.PeriodFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "2024-03", rows[0].Period)
		assert.Equal(t, int64(2), rows[0].Operations)
		assert.True(t, rows[0].TotalProfit.Equal(decimal.RequireFromString("2100.00")))
		assert.Equal(t, "2024-04", rows[1].Period)
		assert.Equal(t, int64(1), rows[1].Operations)
	})

	t.Run("period filter bounds the rows", func(t *testing.T) {
		rows, err := setup.Reports.GetProfitByPeriod(ctx, reportapp.PeriodFilter{
			From: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2024-04", rows[0].Period)
	})

	t.Run("by client groups and orders by profit", func(t *testing.T) {
		rows, err := setup.Reports.GetProfitByClient(ctx, reportapp.PeriodFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "Importadora Atlantica", rows[0].Consignee)
		assert.Equal(t, int64(2), rows[0].Operations)
		assert.True(t, rows[0].TotalProfit.Equal(decimal.RequireFromString("2100.00")))
		assert.Equal(t, "Comercial Pacifica", rows[1].Consignee)
		assert.True(t, rows[1].TotalProfit.Equal(decimal.RequireFromString("100.00")))
	})
}
