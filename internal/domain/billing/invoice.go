package billing

import (
	"time"

	"github.com/comex/backend/internal/domain/shared"
	"github.com/comex/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid checks if the invoice status is valid
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// InvoiceItem is a billed line on an invoice. The sale side carries the
// amount charged to the client; the cost side carries what the brokerage
// pays out, possibly in a different currency than the sale.
type InvoiceItem struct {
	shared.BaseEntity
	InvoiceID    uuid.UUID
	FeeID        *uuid.UUID
	SupplierID   *uuid.UUID
	Description  string
	Amount       valueobject.Money
	CostAmount   valueobject.Money
}

// NewInvoiceItem creates an invoice line
func NewInvoiceItem(description string, amount, costAmount valueobject.Money) (*InvoiceItem, error) {
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Item description cannot be empty")
	}
	return &InvoiceItem{
		BaseEntity:  shared.NewBaseEntity(),
		Description: description,
		Amount:      amount,
		CostAmount:  costAmount,
	}, nil
}

// CostInBRL converts the cost side to BRL using the invoice's dollar rate
func (i *InvoiceItem) CostInBRL(dollarRate decimal.Decimal) decimal.Decimal {
	return i.CostAmount.InBRL(dollarRate).Amount()
}

// Invoice is the billing aggregate for a clearance operation. Monetary
// totals are BRL; DollarRate snapshots the USD exchange rate at issue
// time so USD costs convert consistently for the life of the invoice.
type Invoice struct {
	shared.BaseAggregateRoot
	OperationID   uuid.UUID
	ClientID      uuid.UUID
	InvoiceNumber string // unique
	IssueDate     time.Time
	DueDate       *time.Time
	DollarRate    decimal.Decimal
	TotalAmount   decimal.Decimal
	IOFAmount     decimal.Decimal
	FinalAmount   decimal.Decimal
	Status        InvoiceStatus
	PaidDate      *time.Time
	PaymentMethod string
	PDFURL        string
	Notes         string
	Items         []*InvoiceItem
}

// NewInvoice creates a pending invoice. FinalAmount is always derived
// from TotalAmount and IOFAmount, never accepted from callers.
func NewInvoice(operationID, clientID uuid.UUID, invoiceNumber string, issueDate time.Time, dollarRate, totalAmount, iofAmount decimal.Decimal) (*Invoice, error) {
	if operationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OPERATION", "Invoice requires an operation")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Invoice requires a client")
	}
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if issueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_ISSUE_DATE", "Issue date is required")
	}
	if dollarRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DOLLAR_RATE", "Dollar rate cannot be negative")
	}
	if totalAmount.IsNegative() || iofAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice amounts cannot be negative")
	}

	inv := &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OperationID:       operationID,
		ClientID:          clientID,
		InvoiceNumber:     invoiceNumber,
		IssueDate:         issueDate,
		DollarRate:        dollarRate,
		TotalAmount:       totalAmount,
		IOFAmount:         iofAmount,
		Status:            InvoiceStatusPending,
	}
	inv.RecomputeFinalAmount()
	return inv, nil
}

// RecomputeFinalAmount derives the charged total from the base amount
// plus IOF tax
func (inv *Invoice) RecomputeFinalAmount() {
	inv.FinalAmount = inv.TotalAmount.Add(inv.IOFAmount)
}

// SetAmounts replaces the base and IOF amounts and re-derives FinalAmount
func (inv *Invoice) SetAmounts(totalAmount, iofAmount decimal.Decimal) error {
	if totalAmount.IsNegative() || iofAmount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Invoice amounts cannot be negative")
	}
	inv.TotalAmount = totalAmount
	inv.IOFAmount = iofAmount
	inv.RecomputeFinalAmount()
	inv.Touch()
	return nil
}

// ReplaceItems swaps the full line set. Partial item edits are not
// supported; callers submit the complete new set.
func (inv *Invoice) ReplaceItems(items []*InvoiceItem) {
	for _, item := range items {
		item.InvoiceID = inv.GetID()
	}
	inv.Items = items
	inv.Touch()
}

// MarkAsPaid records payment on the invoice
func (inv *Invoice) MarkAsPaid(paidDate time.Time, paymentMethod string) error {
	if inv.Status == InvoiceStatusCancelled {
		return shared.NewDomainError("INVOICE_CANCELLED", "Cannot pay a cancelled invoice")
	}
	inv.Status = InvoiceStatusPaid
	inv.PaidDate = &paidDate
	inv.PaymentMethod = paymentMethod
	inv.Touch()
	inv.IncrementVersion()
	return nil
}

// Cancel voids the invoice
func (inv *Invoice) Cancel() {
	inv.Status = InvoiceStatusCancelled
	inv.Touch()
	inv.IncrementVersion()
}

// TotalCostBRL sums all item costs converted to BRL at the invoice's
// snapshot rate. A missing rate falls back to 1 so USD costs are never
// silently dropped from the total.
func (inv *Invoice) TotalCostBRL() decimal.Decimal {
	rate := inv.DollarRate
	if rate.IsZero() {
		rate = decimal.NewFromInt(1)
	}
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(item.CostInBRL(rate))
	}
	return total
}

// AttachPDF records the rendered document location
func (inv *Invoice) AttachPDF(url string) {
	inv.PDFURL = url
	inv.Touch()
}
