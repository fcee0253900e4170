package partner

import (
	"time"

	"github.com/comex/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Shipper         string           `json:"shipper" binding:"required,min=1,max=200"`
	Consignee       string           `json:"consignee" binding:"required,min=1,max=200"`
	CNPJ            string           `json:"cnpj" binding:"required,cnpj"`
	PortOrigin      string           `json:"port_origin" binding:"max=100"`
	PortDestination string           `json:"port_destination" binding:"max=100"`
	Weight          *decimal.Decimal `json:"weight"`
	Notify          string           `json:"notify" binding:"max=200"`
	BL              string           `json:"bl" binding:"required,min=1,max=100"`
	BLDate          time.Time        `json:"bl_date" binding:"required"`
	InvoiceNumber   string           `json:"invoice_number" binding:"max=100"`
	ReferenceNumber string           `json:"reference_number" binding:"required,min=1,max=50"`
	BirthDate       *time.Time       `json:"birth_date"`
	FreightTerm     string           `json:"freight_term" binding:"required,oneof=FOB EXW"`
	ContactName     string           `json:"contact_name" binding:"max=100"`
	ContactEmail    string           `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone    string           `json:"contact_phone" binding:"max=50"`
	Address         string           `json:"address" binding:"max=500"`
	City            string           `json:"city" binding:"max=100"`
	State           string           `json:"state" binding:"max=50"`
	ZipCode         string           `json:"zip_code" binding:"max=20"`
	Notes           string           `json:"notes"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Shipper         *string          `json:"shipper" binding:"omitempty,min=1,max=200"`
	Consignee       *string          `json:"consignee" binding:"omitempty,min=1,max=200"`
	CNPJ            *string          `json:"cnpj" binding:"omitempty,cnpj"`
	PortOrigin      *string          `json:"port_origin" binding:"omitempty,max=100"`
	PortDestination *string          `json:"port_destination" binding:"omitempty,max=100"`
	Weight          *decimal.Decimal `json:"weight"`
	Notify          *string          `json:"notify" binding:"omitempty,max=200"`
	BL              *string          `json:"bl" binding:"omitempty,min=1,max=100"`
	BLDate          *time.Time       `json:"bl_date"`
	InvoiceNumber   *string          `json:"invoice_number" binding:"omitempty,max=100"`
	ReferenceNumber *string          `json:"reference_number" binding:"omitempty,min=1,max=50"`
	BirthDate       *time.Time       `json:"birth_date"`
	FreightTerm     *string          `json:"freight_term" binding:"omitempty,oneof=FOB EXW"`
	ContactName     *string          `json:"contact_name" binding:"omitempty,max=100"`
	ContactEmail    *string          `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone    *string          `json:"contact_phone" binding:"omitempty,max=50"`
	Address         *string          `json:"address" binding:"omitempty,max=500"`
	City            *string          `json:"city" binding:"omitempty,max=100"`
	State           *string          `json:"state" binding:"omitempty,max=50"`
	ZipCode         *string          `json:"zip_code" binding:"omitempty,max=20"`
	Notes           *string          `json:"notes"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID              uuid.UUID        `json:"id"`
	Shipper         string           `json:"shipper"`
	Consignee       string           `json:"consignee"`
	CNPJ            string           `json:"cnpj"`
	PortOrigin      string           `json:"port_origin"`
	PortDestination string           `json:"port_destination"`
	Route           string           `json:"route"`
	Weight          *decimal.Decimal `json:"weight"`
	Notify          string           `json:"notify"`
	BL              string           `json:"bl"`
	BLDate          time.Time        `json:"bl_date"`
	InvoiceNumber   string           `json:"invoice_number"`
	ReferenceNumber string           `json:"reference_number"`
	BirthDate       *time.Time       `json:"birth_date"`
	FreightTerm     string           `json:"freight_term"`
	ContactName     string           `json:"contact_name"`
	ContactEmail    string           `json:"contact_email"`
	ContactPhone    string           `json:"contact_phone"`
	Address         string           `json:"address"`
	City            string           `json:"city"`
	State           string           `json:"state"`
	ZipCode         string           `json:"zip_code"`
	Notes           string           `json:"notes"`
	Version         int              `json:"version"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ClientListFilter represents filtering options for client listing
type ClientListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	State    string `form:"state"`
	Freight  string `form:"freight_term"`
}

// ToClientResponse converts a domain client to a response DTO
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:              c.GetID(),
		Shipper:         c.Shipper,
		Consignee:       c.Consignee,
		CNPJ:            c.CNPJ,
		PortOrigin:      c.PortOrigin,
		PortDestination: c.PortDestination,
		Route:           c.RouteLabel(),
		Weight:          c.Weight,
		Notify:          c.Notify,
		BL:              c.BL,
		BLDate:          c.BLDate,
		InvoiceNumber:   c.InvoiceNumber,
		ReferenceNumber: c.ReferenceNumber,
		BirthDate:       c.BirthDate,
		FreightTerm:     string(c.FreightTerm),
		ContactName:     c.ContactName,
		ContactEmail:    c.ContactEmail,
		ContactPhone:    c.ContactPhone,
		Address:         c.Address,
		City:            c.City,
		State:           c.State,
		ZipCode:         c.ZipCode,
		Notes:           c.Notes,
		Version:         c.GetVersion(),
		CreatedAt:       c.GetCreatedAt(),
		UpdatedAt:       c.GetUpdatedAt(),
	}
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	CNPJ         string `json:"cnpj" binding:"required,cnpj"`
	ServiceType  string `json:"service_type" binding:"required,min=1,max=100"`
	ContactName  string `json:"contact_name" binding:"max=100"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone string `json:"contact_phone" binding:"max=50"`
	Address      string `json:"address" binding:"max=500"`
	City         string `json:"city" binding:"max=100"`
	State        string `json:"state" binding:"max=50"`
	ZipCode      string `json:"zip_code" binding:"max=20"`
	BankName     string `json:"bank_name" binding:"max=100"`
	BankAgency   string `json:"bank_agency" binding:"max=20"`
	BankAccount  string `json:"bank_account" binding:"max=30"`
	PixKey       string `json:"pix_key" binding:"max=100"`
	Notes        string `json:"notes"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	CNPJ         *string `json:"cnpj" binding:"omitempty,cnpj"`
	ServiceType  *string `json:"service_type" binding:"omitempty,min=1,max=100"`
	ContactName  *string `json:"contact_name" binding:"omitempty,max=100"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=50"`
	Address      *string `json:"address" binding:"omitempty,max=500"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	State        *string `json:"state" binding:"omitempty,max=50"`
	ZipCode      *string `json:"zip_code" binding:"omitempty,max=20"`
	BankName     *string `json:"bank_name" binding:"omitempty,max=100"`
	BankAgency   *string `json:"bank_agency" binding:"omitempty,max=20"`
	BankAccount  *string `json:"bank_account" binding:"omitempty,max=30"`
	PixKey       *string `json:"pix_key" binding:"omitempty,max=100"`
	Notes        *string `json:"notes"`
	IsActive     *bool   `json:"is_active"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CNPJ         string    `json:"cnpj"`
	ServiceType  string    `json:"service_type"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	BankName     string    `json:"bank_name"`
	BankAgency   string    `json:"bank_agency"`
	BankAccount  string    `json:"bank_account"`
	PixKey       string    `json:"pix_key"`
	Notes        string    `json:"notes"`
	IsActive     bool      `json:"is_active"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SupplierListFilter represents filtering options for supplier listing
type SupplierListFilter struct {
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
	OrderBy         string `form:"order_by"`
	OrderDir        string `form:"order_dir"`
	Search          string `form:"search"`
	IncludeInactive bool   `form:"include_inactive"`
}

// ToSupplierResponse converts a domain supplier to a response DTO
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:           s.GetID(),
		Name:         s.Name,
		CNPJ:         s.CNPJ,
		ServiceType:  s.ServiceType,
		ContactName:  s.ContactName,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		ZipCode:      s.ZipCode,
		BankName:     s.BankName,
		BankAgency:   s.BankAgency,
		BankAccount:  s.BankAccount,
		PixKey:       s.PixKey,
		Notes:        s.Notes,
		IsActive:     s.IsActive,
		Version:      s.GetVersion(),
		CreatedAt:    s.GetCreatedAt(),
		UpdatedAt:    s.GetUpdatedAt(),
	}
}
