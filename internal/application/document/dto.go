package document

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceDocumentLine is one billed line on a rendered invoice
type InvoiceDocumentLine struct {
	Description  string
	Amount       decimal.Decimal
	Currency     string
	CostAmount   decimal.Decimal
	CostCurrency string
}

// InvoiceDocumentData carries everything the invoice template needs
type InvoiceDocumentData struct {
	InvoiceNumber   string
	IssueDate       time.Time
	DueDate         *time.Time
	Consignee       string
	Shipper         string
	CNPJ            string
	ReferenceNumber string
	Route           string
	DollarRate      decimal.Decimal
	TotalAmount     decimal.Decimal
	IOFAmount       decimal.Decimal
	FinalAmount     decimal.Decimal
	Status          string
	Notes           string
	Lines           []InvoiceDocumentLine
}

// ReceiptDocumentData carries everything the receipt template needs
type ReceiptDocumentData struct {
	ReceiptNumber string
	InvoiceNumber string
	Consignee     string
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentMethod string
	Notes         string
}
