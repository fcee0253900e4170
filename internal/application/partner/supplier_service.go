package partner

import (
	"context"

	"github.com/comex/backend/internal/domain/partner"
	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
	}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	cnpj, err := partner.NormalizeCNPJ(req.CNPJ)
	if err != nil {
		return nil, err
	}
	exists, err := s.supplierRepo.ExistsByCNPJ(ctx, cnpj, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this CNPJ already exists")
	}

	supplier, err := partner.NewSupplier(req.Name, req.ServiceType)
	if err != nil {
		return nil, err
	}

	if err := supplier.UpdateCNPJ(cnpj); err != nil {
		return nil, err
	}
	if req.ContactName != "" || req.ContactEmail != "" || req.ContactPhone != "" {
		supplier.SetContact(req.ContactName, req.ContactEmail, req.ContactPhone)
	}
	if req.Address != "" || req.City != "" || req.State != "" || req.ZipCode != "" {
		supplier.SetAddress(req.Address, req.City, req.State, req.ZipCode)
	}
	if req.BankName != "" || req.BankAgency != "" || req.BankAccount != "" || req.PixKey != "" {
		supplier.SetBankDetails(req.BankName, req.BankAgency, req.BankAccount, req.PixKey)
	}
	if req.Notes != "" {
		supplier.SetNotes(req.Notes)
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination. Deactivated
// suppliers are hidden unless IncludeInactive is set.
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) ([]SupplierResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search

	var (
		page *shared.Paginated[*partner.Supplier]
		err  error
	)
	if filter.IncludeInactive {
		page, err = s.supplierRepo.FindAll(ctx, domainFilter)
	} else {
		page, err = s.supplierRepo.FindActive(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SupplierResponse, 0, len(page.Items))
	for _, supplier := range page.Items {
		responses = append(responses, ToSupplierResponse(supplier))
	}
	return responses, page.Total, nil
}

// Update applies a partial update to a supplier
func (s *SupplierService) Update(ctx context.Context, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.CNPJ != nil && *req.CNPJ != "" {
		cnpj, err := partner.NormalizeCNPJ(*req.CNPJ)
		if err != nil {
			return nil, err
		}
		exists, err := s.supplierRepo.ExistsByCNPJ(ctx, cnpj, &supplierID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this CNPJ already exists")
		}
		if err := supplier.UpdateCNPJ(cnpj); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		if err := supplier.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ServiceType != nil {
		if err := supplier.UpdateServiceType(*req.ServiceType); err != nil {
			return nil, err
		}
	}
	if req.ContactName != nil || req.ContactEmail != nil || req.ContactPhone != nil {
		name := supplier.ContactName
		email := supplier.ContactEmail
		phone := supplier.ContactPhone
		if req.ContactName != nil {
			name = *req.ContactName
		}
		if req.ContactEmail != nil {
			email = *req.ContactEmail
		}
		if req.ContactPhone != nil {
			phone = *req.ContactPhone
		}
		supplier.SetContact(name, email, phone)
	}
	if req.Address != nil || req.City != nil || req.State != nil || req.ZipCode != nil {
		address := supplier.Address
		city := supplier.City
		state := supplier.State
		zipCode := supplier.ZipCode
		if req.Address != nil {
			address = *req.Address
		}
		if req.City != nil {
			city = *req.City
		}
		if req.State != nil {
			state = *req.State
		}
		if req.ZipCode != nil {
			zipCode = *req.ZipCode
		}
		supplier.SetAddress(address, city, state, zipCode)
	}
	if req.BankName != nil || req.BankAgency != nil || req.BankAccount != nil || req.PixKey != nil {
		bankName := supplier.BankName
		agency := supplier.BankAgency
		account := supplier.BankAccount
		pixKey := supplier.PixKey
		if req.BankName != nil {
			bankName = *req.BankName
		}
		if req.BankAgency != nil {
			agency = *req.BankAgency
		}
		if req.BankAccount != nil {
			account = *req.BankAccount
		}
		if req.PixKey != nil {
			pixKey = *req.PixKey
		}
		supplier.SetBankDetails(bankName, agency, account, pixKey)
	}
	if req.Notes != nil {
		supplier.SetNotes(*req.Notes)
	}
	if req.IsActive != nil {
		if *req.IsActive {
			supplier.Activate()
		} else {
			supplier.Deactivate()
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Deactivate soft-deletes a supplier
func (s *SupplierService) Deactivate(ctx context.Context, supplierID uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return err
	}
	supplier.Deactivate()
	return s.supplierRepo.Save(ctx, supplier)
}
