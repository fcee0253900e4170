package partner

import (
	"context"

	"github.com/comex/backend/internal/domain/partner"
	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	cnpj, err := partner.NormalizeCNPJ(req.CNPJ)
	if err != nil {
		return nil, err
	}

	exists, err := s.clientRepo.ExistsByCNPJ(ctx, cnpj, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this CNPJ already exists")
	}

	exists, err = s.clientRepo.ExistsByReferenceNumber(ctx, req.ReferenceNumber, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this reference number already exists")
	}

	client, err := partner.NewClient(req.Shipper, req.Consignee, cnpj, req.BL, req.BLDate, req.ReferenceNumber, partner.FreightTerm(req.FreightTerm))
	if err != nil {
		return nil, err
	}

	client.SetRoute(req.PortOrigin, req.PortDestination)
	client.SetCargo(req.Weight, req.Notify, req.InvoiceNumber)
	client.BirthDate = req.BirthDate

	if req.ContactName != "" || req.ContactEmail != "" || req.ContactPhone != "" {
		client.SetContact(req.ContactName, req.ContactEmail, req.ContactPhone)
	}
	if req.Address != "" || req.City != "" || req.State != "" || req.ZipCode != "" {
		client.SetAddress(req.Address, req.City, req.State, req.ZipCode)
	}
	if req.Notes != "" {
		client.SetNotes(req.Notes)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientResponse, int64, error) {
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
	if filter.State != "" {
		domainFilter.Filters["state"] = filter.State
	}
	if filter.Freight != "" {
		domainFilter.Filters["freight_term"] = filter.Freight
	}

	page, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ClientResponse, 0, len(page.Items))
	for _, client := range page.Items {
		responses = append(responses, ToClientResponse(client))
	}
	return responses, page.Total, nil
}

// Update applies a partial update to a client
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.CNPJ != nil {
		cnpj, err := partner.NormalizeCNPJ(*req.CNPJ)
		if err != nil {
			return nil, err
		}
		exists, err := s.clientRepo.ExistsByCNPJ(ctx, cnpj, &clientID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this CNPJ already exists")
		}
		if err := client.UpdateCNPJ(cnpj); err != nil {
			return nil, err
		}
	}

	if req.ReferenceNumber != nil {
		exists, err := s.clientRepo.ExistsByReferenceNumber(ctx, *req.ReferenceNumber, &clientID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this reference number already exists")
		}
		client.ReferenceNumber = *req.ReferenceNumber
	}

	if req.Shipper != nil {
		client.Shipper = *req.Shipper
	}
	if req.Consignee != nil {
		client.Consignee = *req.Consignee
	}
	if req.PortOrigin != nil || req.PortDestination != nil {
		origin := client.PortOrigin
		destination := client.PortDestination
		if req.PortOrigin != nil {
			origin = *req.PortOrigin
		}
		if req.PortDestination != nil {
			destination = *req.PortDestination
		}
		client.SetRoute(origin, destination)
	}
	if req.Weight != nil {
		client.Weight = req.Weight
	}
	if req.Notify != nil {
		client.Notify = *req.Notify
	}
	if req.BL != nil {
		client.BL = *req.BL
	}
	if req.BLDate != nil {
		client.BLDate = *req.BLDate
	}
	if req.InvoiceNumber != nil {
		client.InvoiceNumber = *req.InvoiceNumber
	}
	if req.BirthDate != nil {
		client.BirthDate = req.BirthDate
	}
	if req.FreightTerm != nil {
		term := partner.FreightTerm(*req.FreightTerm)
		if !term.IsValid() {
			return nil, shared.NewDomainError("INVALID_FREIGHT_TERM", "Freight term must be FOB or EXW")
		}
		client.FreightTerm = term
	}
	if req.ContactName != nil || req.ContactEmail != nil || req.ContactPhone != nil {
		name := client.ContactName
		email := client.ContactEmail
		phone := client.ContactPhone
		if req.ContactName != nil {
			name = *req.ContactName
		}
		if req.ContactEmail != nil {
			email = *req.ContactEmail
		}
		if req.ContactPhone != nil {
			phone = *req.ContactPhone
		}
		client.SetContact(name, email, phone)
	}
	if req.Address != nil || req.City != nil || req.State != nil || req.ZipCode != nil {
		address := client.Address
		city := client.City
		state := client.State
		zipCode := client.ZipCode
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
		client.SetAddress(address, city, state, zipCode)
	}
	if req.Notes != nil {
		client.SetNotes(*req.Notes)
	}

	client.Touch()
	client.IncrementVersion()

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, clientID)
}
