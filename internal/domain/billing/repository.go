package billing

import (
	"context"

	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FeeRepository defines persistence operations for fees
type FeeRepository interface {
	shared.Repository[*Fee]
	FindActive(ctx context.Context, filter shared.Filter) (*shared.Paginated[*Fee], error)
}

// InvoiceRepository defines persistence operations for invoices. Saves
// persist the full aggregate including items.
type InvoiceRepository interface {
	shared.Repository[*Invoice]
	FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)
	FindByOperationID(ctx context.Context, operationID uuid.UUID) ([]*Invoice, error)
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*Invoice, error)
	ExistsByInvoiceNumber(ctx context.Context, invoiceNumber string, excludeID *uuid.UUID) (bool, error)
	// ReplaceItems deletes every existing item of the invoice and inserts
	// the given set in one transaction.
	ReplaceItems(ctx context.Context, invoice *Invoice) error
	// UpdateStatusByOperation sets the status of all invoices belonging to
	// an operation, used when the operation's lifecycle cascades.
	UpdateStatusByOperation(ctx context.Context, operationID uuid.UUID, status InvoiceStatus) error
}

// ReceiptRepository defines persistence operations for receipts
type ReceiptRepository interface {
	shared.Repository[*Receipt]
	FindByReceiptNumber(ctx context.Context, receiptNumber string) (*Receipt, error)
	FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*Receipt, error)
	ExistsByReceiptNumber(ctx context.Context, receiptNumber string, excludeID *uuid.UUID) (bool, error)
}
