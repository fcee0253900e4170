package billing

import (
	"time"

	"github.com/comex/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Fee DTOs
// =============================================================================

// CreateFeeRequest represents a request to create a new fee
type CreateFeeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateFeeRequest represents a request to update a fee
type UpdateFeeRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// FeeResponse represents a fee in API responses
type FeeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FeeListFilter represents filtering options for fee listing
type FeeListFilter struct {
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
	OrderBy         string `form:"order_by"`
	OrderDir        string `form:"order_dir"`
	Search          string `form:"search"`
	IncludeInactive bool   `form:"include_inactive"`
}

// ToFeeResponse converts a domain fee to a response DTO
func ToFeeResponse(f *billing.Fee) FeeResponse {
	return FeeResponse{
		ID:          f.GetID(),
		Name:        f.Name,
		Description: f.Description,
		IsActive:    f.IsActive,
		Version:     f.GetVersion(),
		CreatedAt:   f.GetCreatedAt(),
		UpdatedAt:   f.GetUpdatedAt(),
	}
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// InvoiceItemRequest represents one billed line in a create or update
// request. Currencies default to BRL when omitted.
type InvoiceItemRequest struct {
	FeeID        *uuid.UUID      `json:"fee_id"`
	SupplierID   *uuid.UUID      `json:"supplier_id"`
	Description  string          `json:"description" binding:"required,min=1,max=500"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Currency     string          `json:"currency" binding:"omitempty,currency"`
	CostAmount   decimal.Decimal `json:"cost_amount"`
	CostCurrency string          `json:"cost_currency" binding:"omitempty,currency"`
}

// CreateInvoiceRequest represents a request to create a new invoice.
// FinalAmount is intentionally absent; the server derives it.
type CreateInvoiceRequest struct {
	OperationID   uuid.UUID            `json:"operation_id" binding:"required"`
	ClientID      uuid.UUID            `json:"client_id" binding:"required"`
	InvoiceNumber string               `json:"invoice_number" binding:"required,min=1,max=50"`
	IssueDate     time.Time            `json:"issue_date" binding:"required"`
	DueDate       *time.Time           `json:"due_date"`
	DollarRate    decimal.Decimal      `json:"dollar_rate" binding:"required"`
	TotalAmount   decimal.Decimal      `json:"total_amount" binding:"required"`
	IOFAmount     decimal.Decimal      `json:"iof_amount"`
	Notes         string               `json:"notes"`
	Items         []InvoiceItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateInvoiceRequest represents a request to update an invoice. A
// non-nil Items slice replaces the full line set; nil leaves items
// untouched.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string               `json:"invoice_number" binding:"omitempty,min=1,max=50"`
	IssueDate     *time.Time            `json:"issue_date"`
	DueDate       *time.Time            `json:"due_date"`
	DollarRate    *decimal.Decimal      `json:"dollar_rate"`
	TotalAmount   *decimal.Decimal      `json:"total_amount"`
	IOFAmount     *decimal.Decimal      `json:"iof_amount"`
	Status        *string               `json:"status" binding:"omitempty,oneof=pending paid cancelled"`
	Notes         *string               `json:"notes"`
	Items         []InvoiceItemRequest `json:"items" binding:"omitempty,dive"`
}

// MarkInvoicePaidRequest records payment details on an invoice
type MarkInvoicePaidRequest struct {
	PaidDate      time.Time `json:"paid_date" binding:"required"`
	PaymentMethod string    `json:"payment_method" binding:"required,min=1,max=50"`
}

// InvoiceItemResponse represents an invoice line in API responses
type InvoiceItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	FeeID        *uuid.UUID      `json:"fee_id"`
	SupplierID   *uuid.UUID      `json:"supplier_id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	CostAmount   decimal.Decimal `json:"cost_amount"`
	CostCurrency string          `json:"cost_currency"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID            uuid.UUID             `json:"id"`
	OperationID   uuid.UUID             `json:"operation_id"`
	ClientID      uuid.UUID             `json:"client_id"`
	InvoiceNumber string                `json:"invoice_number"`
	IssueDate     time.Time             `json:"issue_date"`
	DueDate       *time.Time            `json:"due_date"`
	DollarRate    decimal.Decimal       `json:"dollar_rate"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	IOFAmount     decimal.Decimal       `json:"iof_amount"`
	FinalAmount   decimal.Decimal       `json:"final_amount"`
	Status        string                `json:"status"`
	PaidDate      *time.Time            `json:"paid_date"`
	PaymentMethod string                `json:"payment_method"`
	PDFURL        string                `json:"pdf_url"`
	Notes         string                `json:"notes"`
	Items         []InvoiceItemResponse `json:"items"`
	Version       int                   `json:"version"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// InvoiceListFilter represents filtering options for invoice listing
type InvoiceListFilter struct {
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir"`
	Search      string `form:"search"`
	Status      string `form:"status"`
	OperationID string `form:"operation_id"`
	ClientID    string `form:"client_id"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ID:           item.GetID(),
			FeeID:        item.FeeID,
			SupplierID:   item.SupplierID,
			Description:  item.Description,
			Amount:       item.Amount.Amount(),
			Currency:     string(item.Amount.Currency()),
			CostAmount:   item.CostAmount.Amount(),
			CostCurrency: string(item.CostAmount.Currency()),
		})
	}
	return InvoiceResponse{
		ID:            inv.GetID(),
		OperationID:   inv.OperationID,
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		DollarRate:    inv.DollarRate,
		TotalAmount:   inv.TotalAmount,
		IOFAmount:     inv.IOFAmount,
		FinalAmount:   inv.FinalAmount,
		Status:        string(inv.Status),
		PaidDate:      inv.PaidDate,
		PaymentMethod: inv.PaymentMethod,
		PDFURL:        inv.PDFURL,
		Notes:         inv.Notes,
		Items:         items,
		Version:       inv.GetVersion(),
		CreatedAt:     inv.GetCreatedAt(),
		UpdatedAt:     inv.GetUpdatedAt(),
	}
}

// =============================================================================
// Receipt DTOs
// =============================================================================

// CreateReceiptRequest represents a request to create a payment receipt
type CreateReceiptRequest struct {
	InvoiceID     uuid.UUID       `json:"invoice_id" binding:"required"`
	ReceiptNumber string          `json:"receipt_number" binding:"required,min=1,max=50"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate   time.Time       `json:"payment_date" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"max=50"`
	Notes         string          `json:"notes"`
}

// UpdateReceiptRequest represents a request to update a receipt
type UpdateReceiptRequest struct {
	ReceiptNumber *string          `json:"receipt_number" binding:"omitempty,min=1,max=50"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentDate   *time.Time       `json:"payment_date"`
	PaymentMethod *string          `json:"payment_method" binding:"omitempty,max=50"`
	Notes         *string          `json:"notes"`
}

// ReceiptResponse represents a receipt in API responses
type ReceiptResponse struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceID     uuid.UUID       `json:"invoice_id"`
	OperationID   uuid.UUID       `json:"operation_id"`
	ClientID      uuid.UUID       `json:"client_id"`
	ReceiptNumber string          `json:"receipt_number"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	PDFURL        string          `json:"pdf_url"`
	Notes         string          `json:"notes"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ReceiptListFilter represents filtering options for receipt listing
type ReceiptListFilter struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir"`
	Search    string `form:"search"`
	InvoiceID string `form:"invoice_id"`
}

// ToReceiptResponse converts a domain receipt to a response DTO
func ToReceiptResponse(r *billing.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:            r.GetID(),
		InvoiceID:     r.InvoiceID,
		OperationID:   r.OperationID,
		ClientID:      r.ClientID,
		ReceiptNumber: r.ReceiptNumber,
		Amount:        r.Amount,
		PaymentDate:   r.PaymentDate,
		PaymentMethod: r.PaymentMethod,
		PDFURL:        r.PDFURL,
		Notes:         r.Notes,
		Version:       r.GetVersion(),
		CreatedAt:     r.GetCreatedAt(),
		UpdatedAt:     r.GetUpdatedAt(),
	}
}
