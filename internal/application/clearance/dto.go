package clearance

import (
	"time"

	"github.com/comex/backend/internal/domain/clearance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOperationRequest represents a request to create a new operation
type CreateOperationRequest struct {
	ClientID        uuid.UUID  `json:"client_id" binding:"required"`
	SupplierID      uuid.UUID  `json:"supplier_id" binding:"required"`
	ReferenceNumber string     `json:"reference_number" binding:"required,min=1,max=50"`
	Description     string     `json:"description" binding:"max=500"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Notes           string     `json:"notes"`
}

// UpdateOperationRequest represents a request to update an operation.
// Totals are absent on purpose; they are derived, never submitted.
type UpdateOperationRequest struct {
	ReferenceNumber *string    `json:"reference_number" binding:"omitempty,min=1,max=50"`
	Description     *string    `json:"description" binding:"omitempty,max=500"`
	Status          *string    `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Notes           *string    `json:"notes"`
}

// OperationResponse represents an operation in API responses
type OperationResponse struct {
	ID              uuid.UUID       `json:"id"`
	ClientID        uuid.UUID       `json:"client_id"`
	SupplierID      uuid.UUID       `json:"supplier_id"`
	ReferenceNumber string          `json:"reference_number"`
	Description     string          `json:"description"`
	Status          string          `json:"status"`
	StartDate       *time.Time      `json:"start_date"`
	EndDate         *time.Time      `json:"end_date"`
	TotalSelling    decimal.Decimal `json:"total_selling"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	ProfitMargin    decimal.Decimal `json:"profit_margin"`
	Notes           string          `json:"notes"`
	Version         int             `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OperationListFilter represents filtering options for operation listing
type OperationListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Status   string `form:"status"`
	ClientID string `form:"client_id"`
}

// ToOperationResponse converts a domain operation to a response DTO
func ToOperationResponse(op *clearance.Operation) OperationResponse {
	return OperationResponse{
		ID:              op.GetID(),
		ClientID:        op.ClientID,
		SupplierID:      op.SupplierID,
		ReferenceNumber: op.ReferenceNumber,
		Description:     op.Description,
		Status:          string(op.Status),
		StartDate:       op.StartDate,
		EndDate:         op.EndDate,
		TotalSelling:    op.TotalSelling,
		TotalCost:       op.TotalCost,
		TotalProfit:     op.TotalProfit,
		ProfitMargin:    op.ProfitMargin,
		Notes:           op.Notes,
		Version:         op.GetVersion(),
		CreatedAt:       op.GetCreatedAt(),
		UpdatedAt:       op.GetUpdatedAt(),
	}
}
