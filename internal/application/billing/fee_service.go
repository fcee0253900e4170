package billing

import (
	"context"

	"github.com/comex/backend/internal/domain/billing"
	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FeeService handles fee-related business operations
type FeeService struct {
	feeRepo billing.FeeRepository
}

// NewFeeService creates a new FeeService
func NewFeeService(feeRepo billing.FeeRepository) *FeeService {
	return &FeeService{
		feeRepo: feeRepo,
	}
}

// Create creates a new fee
func (s *FeeService) Create(ctx context.Context, req CreateFeeRequest) (*FeeResponse, error) {
	fee, err := billing.NewFee(req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.feeRepo.Save(ctx, fee); err != nil {
		return nil, err
	}

	response := ToFeeResponse(fee)
	return &response, nil
}

// GetByID retrieves a fee by ID
func (s *FeeService) GetByID(ctx context.Context, feeID uuid.UUID) (*FeeResponse, error) {
	fee, err := s.feeRepo.FindByID(ctx, feeID)
	if err != nil {
		return nil, err
	}

	response := ToFeeResponse(fee)
	return &response, nil
}

// List retrieves fees with filtering and pagination. Deactivated fees
// are hidden unless IncludeInactive is set.
func (s *FeeService) List(ctx context.Context, filter FeeListFilter) ([]FeeResponse, int64, error) {
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
		page *shared.Paginated[*billing.Fee]
		err  error
	)
	if filter.IncludeInactive {
		page, err = s.feeRepo.FindAll(ctx, domainFilter)
	} else {
		page, err = s.feeRepo.FindActive(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	responses := make([]FeeResponse, 0, len(page.Items))
	for _, fee := range page.Items {
		responses = append(responses, ToFeeResponse(fee))
	}
	return responses, page.Total, nil
}

// Update applies a partial update to a fee
func (s *FeeService) Update(ctx context.Context, feeID uuid.UUID, req UpdateFeeRequest) (*FeeResponse, error) {
	fee, err := s.feeRepo.FindByID(ctx, feeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := fee.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		fee.SetDescription(*req.Description)
	}
	if req.IsActive != nil {
		if *req.IsActive {
			fee.Activate()
		} else {
			fee.Deactivate()
		}
	}

	if err := s.feeRepo.Save(ctx, fee); err != nil {
		return nil, err
	}

	response := ToFeeResponse(fee)
	return &response, nil
}

// Deactivate soft-deletes a fee
func (s *FeeService) Deactivate(ctx context.Context, feeID uuid.UUID) error {
	fee, err := s.feeRepo.FindByID(ctx, feeID)
	if err != nil {
		return err
	}
	fee.Deactivate()
	return s.feeRepo.Save(ctx, fee)
}
