package models

import (
	"time"

	"github.com/comex/backend/internal/domain/billing"
	"github.com/comex/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeModel is the persistence model for the Fee domain entity.
type FeeModel struct {
	AggregateModel
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:varchar(500)"`
	IsActive    bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (FeeModel) TableName() string {
	return "fees"
}

// ToDomain converts the persistence model to a domain Fee entity.
func (m *FeeModel) ToDomain() *billing.Fee {
	return &billing.Fee{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Fee entity.
func (m *FeeModel) FromDomain(f *billing.Fee) {
	m.FromDomainAggregateRoot(f.BaseAggregateRoot)
	m.Name = f.Name
	m.Description = f.Description
	m.IsActive = f.IsActive
}

// InvoiceModel is the persistence model for the Invoice aggregate.
type InvoiceModel struct {
	AggregateModel
	OperationID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	ClientID      uuid.UUID             `gorm:"type:uuid;not null;index"`
	InvoiceNumber string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	IssueDate     time.Time             `gorm:"not null"`
	DueDate       *time.Time
	DollarRate    decimal.Decimal       `gorm:"type:decimal(12,4);not null;default:0"`
	TotalAmount   decimal.Decimal       `gorm:"type:decimal(14,2);not null;default:0"`
	IOFAmount     decimal.Decimal       `gorm:"type:decimal(14,2);not null;default:0"`
	FinalAmount   decimal.Decimal       `gorm:"type:decimal(14,2);not null;default:0"`
	Status        billing.InvoiceStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaidDate      *time.Time
	PaymentMethod string                `gorm:"type:varchar(50)"`
	PDFURL        string                `gorm:"column:pdf_url;type:text"`
	Notes         string                `gorm:"type:text"`
	Items         []InvoiceItemModel    `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice aggregate
// including its items.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OperationID:       m.OperationID,
		ClientID:          m.ClientID,
		InvoiceNumber:     m.InvoiceNumber,
		IssueDate:         m.IssueDate,
		DueDate:           m.DueDate,
		DollarRate:        m.DollarRate,
		TotalAmount:       m.TotalAmount,
		IOFAmount:         m.IOFAmount,
		FinalAmount:       m.FinalAmount,
		Status:            m.Status,
		PaidDate:          m.PaidDate,
		PaymentMethod:     m.PaymentMethod,
		PDFURL:            m.PDFURL,
		Notes:             m.Notes,
	}
	for i := range m.Items {
		inv.Items = append(inv.Items, m.Items[i].ToDomain())
	}
	return inv
}

// FromDomain populates the persistence model from a domain Invoice
// aggregate including its items.
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.OperationID = inv.OperationID
	m.ClientID = inv.ClientID
	m.InvoiceNumber = inv.InvoiceNumber
	m.IssueDate = inv.IssueDate
	m.DueDate = inv.DueDate
	m.DollarRate = inv.DollarRate
	m.TotalAmount = inv.TotalAmount
	m.IOFAmount = inv.IOFAmount
	m.FinalAmount = inv.FinalAmount
	m.Status = inv.Status
	m.PaidDate = inv.PaidDate
	m.PaymentMethod = inv.PaymentMethod
	m.PDFURL = inv.PDFURL
	m.Notes = inv.Notes
	m.Items = m.Items[:0]
	for _, item := range inv.Items {
		var itemModel InvoiceItemModel
		itemModel.FromDomain(item)
		m.Items = append(m.Items, itemModel)
	}
}

// InvoiceItemModel is the persistence model for invoice lines.
type InvoiceItemModel struct {
	BaseModel
	InvoiceID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	FeeID        *uuid.UUID           `gorm:"type:uuid;index"`
	SupplierID   *uuid.UUID           `gorm:"type:uuid;index"`
	Description  string               `gorm:"type:varchar(500);not null"`
	Amount       decimal.Decimal      `gorm:"type:decimal(14,2);not null;default:0"`
	Currency     valueobject.Currency `gorm:"type:varchar(3);not null;default:'BRL'"`
	CostAmount   decimal.Decimal      `gorm:"type:decimal(14,2);not null;default:0"`
	CostCurrency valueobject.Currency `gorm:"type:varchar(3);not null;default:'BRL'"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain InvoiceItem.
func (m *InvoiceItemModel) ToDomain() *billing.InvoiceItem {
	amount, _ := valueobject.NewMoney(m.Amount, m.Currency)
	costAmount, _ := valueobject.NewMoney(m.CostAmount, m.CostCurrency)
	return &billing.InvoiceItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		InvoiceID:   m.InvoiceID,
		FeeID:       m.FeeID,
		SupplierID:  m.SupplierID,
		Description: m.Description,
		Amount:      amount,
		CostAmount:  costAmount,
	}
}

// FromDomain populates the persistence model from a domain InvoiceItem.
func (m *InvoiceItemModel) FromDomain(item *billing.InvoiceItem) {
	m.FromDomainBaseEntity(item.BaseEntity)
	m.InvoiceID = item.InvoiceID
	m.FeeID = item.FeeID
	m.SupplierID = item.SupplierID
	m.Description = item.Description
	m.Amount = item.Amount.Amount()
	m.Currency = item.Amount.Currency()
	m.CostAmount = item.CostAmount.Amount()
	m.CostCurrency = item.CostAmount.Currency()
}

// ReceiptModel is the persistence model for the Receipt domain entity.
type ReceiptModel struct {
	AggregateModel
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	OperationID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReceiptNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Amount        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PaymentDate   time.Time       `gorm:"not null"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	PDFURL        string          `gorm:"column:pdf_url;type:text"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToDomain converts the persistence model to a domain Receipt entity.
func (m *ReceiptModel) ToDomain() *billing.Receipt {
	return &billing.Receipt{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		InvoiceID:         m.InvoiceID,
		OperationID:       m.OperationID,
		ClientID:          m.ClientID,
		ReceiptNumber:     m.ReceiptNumber,
		Amount:            m.Amount,
		PaymentDate:       m.PaymentDate,
		PaymentMethod:     m.PaymentMethod,
		PDFURL:            m.PDFURL,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Receipt entity.
func (m *ReceiptModel) FromDomain(r *billing.Receipt) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.InvoiceID = r.InvoiceID
	m.OperationID = r.OperationID
	m.ClientID = r.ClientID
	m.ReceiptNumber = r.ReceiptNumber
	m.Amount = r.Amount
	m.PaymentDate = r.PaymentDate
	m.PaymentMethod = r.PaymentMethod
	m.PDFURL = r.PDFURL
	m.Notes = r.Notes
}
