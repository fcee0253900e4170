package models

import (
	"time"

	"github.com/comex/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	AggregateModel
	Shipper         string              `gorm:"type:varchar(200);not null"`
	Consignee       string              `gorm:"type:varchar(200);not null"`
	CNPJ            string              `gorm:"type:varchar(14);not null;uniqueIndex"`
	PortOrigin      string              `gorm:"type:varchar(100)"`
	PortDestination string              `gorm:"type:varchar(100)"`
	Weight          *decimal.Decimal    `gorm:"type:decimal(12,3)"`
	Notify          string              `gorm:"type:varchar(200)"`
	BL              string              `gorm:"type:varchar(100);not null"`
	BLDate          time.Time           `gorm:"not null"`
	InvoiceNumber   string              `gorm:"type:varchar(100)"`
	ReferenceNumber string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	BirthDate       *time.Time
	FreightTerm     partner.FreightTerm `gorm:"type:varchar(10);not null"`
	ContactName     string              `gorm:"type:varchar(100)"`
	ContactEmail    string              `gorm:"type:varchar(200)"`
	ContactPhone    string              `gorm:"type:varchar(50)"`
	Address         string              `gorm:"type:text"`
	City            string              `gorm:"type:varchar(100)"`
	State           string              `gorm:"type:varchar(50)"`
	ZipCode         string              `gorm:"type:varchar(20)"`
	Notes           string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Shipper:           m.Shipper,
		Consignee:         m.Consignee,
		CNPJ:              m.CNPJ,
		PortOrigin:        m.PortOrigin,
		PortDestination:   m.PortDestination,
		Weight:            m.Weight,
		Notify:            m.Notify,
		BL:                m.BL,
		BLDate:            m.BLDate,
		InvoiceNumber:     m.InvoiceNumber,
		ReferenceNumber:   m.ReferenceNumber,
		BirthDate:         m.BirthDate,
		FreightTerm:       m.FreightTerm,
		ContactName:       m.ContactName,
		ContactEmail:      m.ContactEmail,
		ContactPhone:      m.ContactPhone,
		Address:           m.Address,
		City:              m.City,
		State:             m.State,
		ZipCode:           m.ZipCode,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Shipper = c.Shipper
	m.Consignee = c.Consignee
	m.CNPJ = c.CNPJ
	m.PortOrigin = c.PortOrigin
	m.PortDestination = c.PortDestination
	m.Weight = c.Weight
	m.Notify = c.Notify
	m.BL = c.BL
	m.BLDate = c.BLDate
	m.InvoiceNumber = c.InvoiceNumber
	m.ReferenceNumber = c.ReferenceNumber
	m.BirthDate = c.BirthDate
	m.FreightTerm = c.FreightTerm
	m.ContactName = c.ContactName
	m.ContactEmail = c.ContactEmail
	m.ContactPhone = c.ContactPhone
	m.Address = c.Address
	m.City = c.City
	m.State = c.State
	m.ZipCode = c.ZipCode
	m.Notes = c.Notes
}

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	AggregateModel
	Name         string `gorm:"type:varchar(200);not null"`
	CNPJ         string `gorm:"type:varchar(14);index"`
	ServiceType  string `gorm:"type:varchar(100);not null"`
	ContactName  string `gorm:"type:varchar(100)"`
	ContactEmail string `gorm:"type:varchar(200)"`
	ContactPhone string `gorm:"type:varchar(50)"`
	Address      string `gorm:"type:text"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(50)"`
	ZipCode      string `gorm:"type:varchar(20)"`
	BankName     string `gorm:"type:varchar(100)"`
	BankAgency   string `gorm:"type:varchar(20)"`
	BankAccount  string `gorm:"type:varchar(30)"`
	PixKey       string `gorm:"type:varchar(100)"`
	Notes        string `gorm:"type:text"`
	IsActive     bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		CNPJ:              m.CNPJ,
		ServiceType:       m.ServiceType,
		ContactName:       m.ContactName,
		ContactEmail:      m.ContactEmail,
		ContactPhone:      m.ContactPhone,
		Address:           m.Address,
		City:              m.City,
		State:             m.State,
		ZipCode:           m.ZipCode,
		BankName:          m.BankName,
		BankAgency:        m.BankAgency,
		BankAccount:       m.BankAccount,
		PixKey:            m.PixKey,
		Notes:             m.Notes,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.CNPJ = s.CNPJ
	m.ServiceType = s.ServiceType
	m.ContactName = s.ContactName
	m.ContactEmail = s.ContactEmail
	m.ContactPhone = s.ContactPhone
	m.Address = s.Address
	m.City = s.City
	m.State = s.State
	m.ZipCode = s.ZipCode
	m.BankName = s.BankName
	m.BankAgency = s.BankAgency
	m.BankAccount = s.BankAccount
	m.PixKey = s.PixKey
	m.Notes = s.Notes
	m.IsActive = s.IsActive
}
