package partner

import (
	"github.com/comex/backend/internal/domain/shared"
)

// Supplier represents a service or goods provider billed against operations
type Supplier struct {
	shared.BaseAggregateRoot
	Name         string
	CNPJ         string // unique
	ServiceType  string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Address      string
	City         string
	State        string
	ZipCode      string
	BankName     string
	BankAgency   string
	BankAccount  string
	PixKey       string
	Notes        string
	IsActive     bool
}

// NewSupplier creates a new active supplier
func NewSupplier(name, serviceType string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if serviceType == "" {
		return nil, shared.NewDomainError("INVALID_SERVICE_TYPE", "Supplier service type cannot be empty")
	}
	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		ServiceType:       serviceType,
		IsActive:          true,
	}, nil
}

// Rename changes the supplier's display name
func (s *Supplier) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	s.Name = name
	s.Touch()
	s.IncrementVersion()
	return nil
}

// UpdateCNPJ replaces the supplier's tax ID after normalization
func (s *Supplier) UpdateCNPJ(cnpj string) error {
	normalized, err := NormalizeCNPJ(cnpj)
	if err != nil {
		return err
	}
	s.CNPJ = normalized
	s.Touch()
	return nil
}

// UpdateServiceType changes the kind of service the supplier provides
func (s *Supplier) UpdateServiceType(serviceType string) error {
	if serviceType == "" {
		return shared.NewDomainError("INVALID_SERVICE_TYPE", "Supplier service type cannot be empty")
	}
	s.ServiceType = serviceType
	s.Touch()
	return nil
}

// SetContact sets the supplier's contact information
func (s *Supplier) SetContact(name, email, phone string) {
	s.ContactName = name
	s.ContactEmail = email
	s.ContactPhone = phone
	s.Touch()
}

// SetAddress sets the supplier's address
func (s *Supplier) SetAddress(address, city, state, zipCode string) {
	s.Address = address
	s.City = city
	s.State = state
	s.ZipCode = zipCode
	s.Touch()
}

// SetBankDetails sets the payout banking information
func (s *Supplier) SetBankDetails(bankName, agency, account, pixKey string) {
	s.BankName = bankName
	s.BankAgency = agency
	s.BankAccount = account
	s.PixKey = pixKey
	s.Touch()
}

// SetNotes sets free-text notes
func (s *Supplier) SetNotes(notes string) {
	s.Notes = notes
	s.Touch()
}

// Deactivate soft-deletes the supplier, hiding it from default listings
func (s *Supplier) Deactivate() {
	s.IsActive = false
	s.Touch()
	s.IncrementVersion()
}

// Activate restores a deactivated supplier
func (s *Supplier) Activate() {
	s.IsActive = true
	s.Touch()
	s.IncrementVersion()
}
