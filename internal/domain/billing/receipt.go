package billing

import (
	"time"

	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt acknowledges a payment received against an invoice. Operation
// and client are carried denormalized from the invoice for direct
// lookups and the rendered document.
type Receipt struct {
	shared.BaseAggregateRoot
	InvoiceID     uuid.UUID
	OperationID   uuid.UUID
	ClientID      uuid.UUID
	ReceiptNumber string // unique
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentMethod string
	PDFURL        string
	Notes         string
}

// NewReceipt creates a payment receipt
func NewReceipt(invoiceID, operationID, clientID uuid.UUID, receiptNumber string, amount decimal.Decimal, paymentDate time.Time) (*Receipt, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Receipt requires an invoice")
	}
	if operationID == uuid.Nil || clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNERSHIP", "Receipt requires the invoice's operation and client")
	}
	if receiptNumber == "" {
		return nil, shared.NewDomainError("INVALID_RECEIPT_NUMBER", "Receipt number cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Receipt amount must be positive")
	}
	if paymentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_DATE", "Payment date is required")
	}
	return &Receipt{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceID:         invoiceID,
		OperationID:       operationID,
		ClientID:          clientID,
		ReceiptNumber:     receiptNumber,
		Amount:            amount,
		PaymentDate:       paymentDate,
	}, nil
}

// SetPaymentMethod records how the payment was made
func (r *Receipt) SetPaymentMethod(method string) {
	r.PaymentMethod = method
	r.Touch()
}

// SetNotes sets free-text notes
func (r *Receipt) SetNotes(notes string) {
	r.Notes = notes
	r.Touch()
}

// AttachPDF records the rendered document location
func (r *Receipt) AttachPDF(url string) {
	r.PDFURL = url
	r.Touch()
}
