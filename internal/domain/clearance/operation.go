package clearance

import (
	"time"

	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationStatus represents the lifecycle stage of a clearance operation
type OperationStatus string

const (
	OperationStatusPending    OperationStatus = "pending"
	OperationStatusInProgress OperationStatus = "in_progress"
	OperationStatusCompleted  OperationStatus = "completed"
	OperationStatusCancelled  OperationStatus = "cancelled"
)

// IsValid checks if the operation status is valid
func (s OperationStatus) IsValid() bool {
	switch s {
	case OperationStatusPending, OperationStatusInProgress, OperationStatusCompleted, OperationStatusCancelled:
		return true
	}
	return false
}

// Totals carries the derived profitability figures of an operation.
// All values are BRL; ProfitMargin is a percentage rounded to two
// decimal places.
type Totals struct {
	Selling decimal.Decimal
	Cost    decimal.Decimal
	Profit  decimal.Decimal
	Margin  decimal.Decimal
}

// ZeroTotals returns totals with every figure at zero
func ZeroTotals() Totals {
	return Totals{
		Selling: decimal.Zero,
		Cost:    decimal.Zero,
		Profit:  decimal.Zero,
		Margin:  decimal.Zero,
	}
}

// ComputeTotals derives profit and margin from selling and cost sums.
// Margin is zero when there is no selling volume to measure against.
func ComputeTotals(selling, cost decimal.Decimal) Totals {
	profit := selling.Sub(cost)
	margin := decimal.Zero
	if selling.IsPositive() {
		margin = profit.Div(selling).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return Totals{
		Selling: selling,
		Cost:    cost,
		Profit:  profit,
		Margin:  margin,
	}
}

// Operation is a customs clearance engagement linking one client to the
// supplier performing the clearance. Totals are never written directly
// by callers; the aggregation recalculation owns them.
type Operation struct {
	shared.BaseAggregateRoot
	ClientID        uuid.UUID
	SupplierID      uuid.UUID
	ReferenceNumber string // unique
	Description     string
	Status          OperationStatus
	StartDate       *time.Time
	EndDate         *time.Time
	TotalSelling    decimal.Decimal
	TotalCost       decimal.Decimal
	TotalProfit     decimal.Decimal
	ProfitMargin    decimal.Decimal
	Notes           string
}

// NewOperation creates a pending operation with zeroed totals
func NewOperation(clientID, supplierID uuid.UUID, referenceNumber, description string) (*Operation, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Operation requires a client")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Operation requires a supplier")
	}
	if referenceNumber == "" {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Reference number cannot be empty")
	}
	return &Operation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          clientID,
		SupplierID:        supplierID,
		ReferenceNumber:   referenceNumber,
		Description:       description,
		Status:            OperationStatusPending,
		TotalSelling:      decimal.Zero,
		TotalCost:         decimal.Zero,
		TotalProfit:       decimal.Zero,
		ProfitMargin:      decimal.Zero,
	}, nil
}

// ChangeStatus moves the operation to a new lifecycle stage. Any stage
// may follow any other; status corrections in either direction are a
// normal part of back-office work.
func (o *Operation) ChangeStatus(status OperationStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown operation status")
	}
	o.Status = status
	o.Touch()
	o.IncrementVersion()
	return nil
}

// IsCompleted reports whether the operation counts toward profitability
func (o *Operation) IsCompleted() bool {
	return o.Status == OperationStatusCompleted
}

// ApplyTotals overwrites the derived profitability figures
func (o *Operation) ApplyTotals(totals Totals) {
	o.TotalSelling = totals.Selling
	o.TotalCost = totals.Cost
	o.TotalProfit = totals.Profit
	o.ProfitMargin = totals.Margin
	o.Touch()
}

// SetSchedule sets the engagement period
func (o *Operation) SetSchedule(start, end *time.Time) {
	o.StartDate = start
	o.EndDate = end
	o.Touch()
}

// SetDescription updates the operation description
func (o *Operation) SetDescription(description string) {
	o.Description = description
	o.Touch()
}

// SetNotes sets free-text notes
func (o *Operation) SetNotes(notes string) {
	o.Notes = notes
	o.Touch()
}
