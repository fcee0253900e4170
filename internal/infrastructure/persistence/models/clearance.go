package models

import (
	"time"

	"github.com/comex/backend/internal/domain/clearance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationModel is the persistence model for the Operation aggregate.
type OperationModel struct {
	AggregateModel
	ClientID        uuid.UUID                 `gorm:"type:uuid;not null;index"`
	SupplierID      uuid.UUID                 `gorm:"type:uuid;not null;index"`
	ReferenceNumber string                    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description     string                    `gorm:"type:varchar(500)"`
	Status          clearance.OperationStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	StartDate       *time.Time                `gorm:"index"`
	EndDate         *time.Time
	TotalSelling    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalCost       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalProfit     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ProfitMargin    decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0"`
	Notes           string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OperationModel) TableName() string {
	return "operations"
}

// ToDomain converts the persistence model to a domain Operation aggregate.
func (m *OperationModel) ToDomain() *clearance.Operation {
	return &clearance.Operation{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ClientID:          m.ClientID,
		SupplierID:        m.SupplierID,
		ReferenceNumber:   m.ReferenceNumber,
		Description:       m.Description,
		Status:            m.Status,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		TotalSelling:      m.TotalSelling,
		TotalCost:         m.TotalCost,
		TotalProfit:       m.TotalProfit,
		ProfitMargin:      m.ProfitMargin,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Operation aggregate.
func (m *OperationModel) FromDomain(op *clearance.Operation) {
	m.FromDomainAggregateRoot(op.BaseAggregateRoot)
	m.ClientID = op.ClientID
	m.SupplierID = op.SupplierID
	m.ReferenceNumber = op.ReferenceNumber
	m.Description = op.Description
	m.Status = op.Status
	m.StartDate = op.StartDate
	m.EndDate = op.EndDate
	m.TotalSelling = op.TotalSelling
	m.TotalCost = op.TotalCost
	m.TotalProfit = op.TotalProfit
	m.ProfitMargin = op.ProfitMargin
	m.Notes = op.Notes
}
