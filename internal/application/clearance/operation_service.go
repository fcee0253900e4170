package clearance

import (
	"context"
	"errors"

	"github.com/comex/backend/internal/domain/billing"
	"github.com/comex/backend/internal/domain/clearance"
	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SummaryInvalidator drops cached report figures after the underlying
// data changed
type SummaryInvalidator interface {
	InvalidateSummary(ctx context.Context)
}

// OperationService handles clearance operations and owns the derived
// profitability totals. Every billing mutation funnels back through
// Recalculate so the stored figures never drift from the invoices.
type OperationService struct {
	operationRepo clearance.OperationRepository
	invoiceRepo   billing.InvoiceRepository
	invalidator   SummaryInvalidator
	logger        *zap.Logger
}

// NewOperationService creates a new OperationService
func NewOperationService(operationRepo clearance.OperationRepository, invoiceRepo billing.InvoiceRepository, logger *zap.Logger) *OperationService {
	return &OperationService{
		operationRepo: operationRepo,
		invoiceRepo:   invoiceRepo,
		logger:        logger,
	}
}

// WithSummaryInvalidator registers a hook that drops cached report
// figures whenever operations or their totals change
func (s *OperationService) WithSummaryInvalidator(invalidator SummaryInvalidator) *OperationService {
	s.invalidator = invalidator
	return s
}

func (s *OperationService) invalidateSummary(ctx context.Context) {
	if s.invalidator != nil {
		s.invalidator.InvalidateSummary(ctx)
	}
}

// Create creates a new pending operation
func (s *OperationService) Create(ctx context.Context, req CreateOperationRequest) (*OperationResponse, error) {
	exists, err := s.operationRepo.ExistsByReferenceNumber(ctx, req.ReferenceNumber, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Operation with this reference number already exists")
	}

	operation, err := clearance.NewOperation(req.ClientID, req.SupplierID, req.ReferenceNumber, req.Description)
	if err != nil {
		return nil, err
	}
	operation.SetSchedule(req.StartDate, req.EndDate)
	if req.Notes != "" {
		operation.SetNotes(req.Notes)
	}

	if err := s.operationRepo.Save(ctx, operation); err != nil {
		return nil, err
	}
	s.invalidateSummary(ctx)

	response := ToOperationResponse(operation)
	return &response, nil
}

// GetByID retrieves an operation by ID
func (s *OperationService) GetByID(ctx context.Context, operationID uuid.UUID) (*OperationResponse, error) {
	operation, err := s.operationRepo.FindByID(ctx, operationID)
	if err != nil {
		return nil, err
	}

	response := ToOperationResponse(operation)
	return &response, nil
}

// List retrieves operations with filtering and pagination
func (s *OperationService) List(ctx context.Context, filter OperationListFilter) ([]OperationResponse, int64, error) {
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
	if filter.ClientID != "" {
		domainFilter.Filters["client_id"] = filter.ClientID
	}

	var (
		page *shared.Paginated[*clearance.Operation]
		err  error
	)
	if filter.Status != "" {
		status := clearance.OperationStatus(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown operation status")
		}
		page, err = s.operationRepo.FindByStatus(ctx, status, domainFilter)
	} else {
		page, err = s.operationRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OperationResponse, 0, len(page.Items))
	for _, operation := range page.Items {
		responses = append(responses, ToOperationResponse(operation))
	}
	return responses, page.Total, nil
}

// GetByClient retrieves all operations of a client
func (s *OperationService) GetByClient(ctx context.Context, clientID uuid.UUID) ([]OperationResponse, error) {
	operations, err := s.operationRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]OperationResponse, 0, len(operations))
	for _, operation := range operations {
		responses = append(responses, ToOperationResponse(operation))
	}
	return responses, nil
}

// Update applies a partial update to an operation. Status changes
// cascade onto the operation's invoices: completion marks them all
// paid, moving back to pending or in_progress resets them to pending.
// Totals are recalculated afterwards in every case.
func (s *OperationService) Update(ctx context.Context, operationID uuid.UUID, req UpdateOperationRequest) (*OperationResponse, error) {
	operation, err := s.operationRepo.FindByID(ctx, operationID)
	if err != nil {
		return nil, err
	}

	if req.ReferenceNumber != nil && *req.ReferenceNumber != operation.ReferenceNumber {
		exists, err := s.operationRepo.ExistsByReferenceNumber(ctx, *req.ReferenceNumber, &operationID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Operation with this reference number already exists")
		}
		operation.ReferenceNumber = *req.ReferenceNumber
	}

	if req.Description != nil {
		operation.SetDescription(*req.Description)
	}
	if req.StartDate != nil || req.EndDate != nil {
		start := operation.StartDate
		end := operation.EndDate
		if req.StartDate != nil {
			start = req.StartDate
		}
		if req.EndDate != nil {
			end = req.EndDate
		}
		operation.SetSchedule(start, end)
	}
	if req.Notes != nil {
		operation.SetNotes(*req.Notes)
	}

	if req.Status != nil {
		newStatus := clearance.OperationStatus(*req.Status)
		if err := operation.ChangeStatus(newStatus); err != nil {
			return nil, err
		}

		switch newStatus {
		case clearance.OperationStatusCompleted:
			if err := s.invoiceRepo.UpdateStatusByOperation(ctx, operationID, billing.InvoiceStatusPaid); err != nil {
				return nil, err
			}
		case clearance.OperationStatusPending, clearance.OperationStatusInProgress:
			if err := s.invoiceRepo.UpdateStatusByOperation(ctx, operationID, billing.InvoiceStatusPending); err != nil {
				return nil, err
			}
		}
	}

	if err := s.operationRepo.Save(ctx, operation); err != nil {
		return nil, err
	}

	if err := s.Recalculate(ctx, operationID); err != nil {
		return nil, err
	}

	// re-read to return fresh totals
	operation, err = s.operationRepo.FindByID(ctx, operationID)
	if err != nil {
		return nil, err
	}

	response := ToOperationResponse(operation)
	return &response, nil
}

// Delete removes an operation. Operations with invoices must have
// those removed first.
func (s *OperationService) Delete(ctx context.Context, operationID uuid.UUID) error {
	if _, err := s.operationRepo.FindByID(ctx, operationID); err != nil {
		return err
	}
	invoices, err := s.invoiceRepo.FindByOperationID(ctx, operationID)
	if err != nil {
		return err
	}
	if len(invoices) > 0 {
		return shared.NewDomainError("OPERATION_IN_USE", "Operation has invoices and cannot be deleted")
	}
	if err := s.operationRepo.Delete(ctx, operationID); err != nil {
		return err
	}
	s.invalidateSummary(ctx)
	return nil
}

// Recalculate derives the operation's profitability from its invoices
// and persists the four figures in a single update. Only completed
// operations accumulate; every other status zeroes the totals. A
// missing operation is a no-op so callers need not order deletes
// carefully.
func (s *OperationService) Recalculate(ctx context.Context, operationID uuid.UUID) error {
	operation, err := s.operationRepo.FindByID(ctx, operationID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	totals := clearance.ZeroTotals()
	if operation.IsCompleted() {
		invoices, err := s.invoiceRepo.FindByOperationID(ctx, operationID)
		if err != nil {
			return err
		}

		selling := decimal.Zero
		cost := decimal.Zero
		for _, invoice := range invoices {
			selling = selling.Add(invoice.FinalAmount)
			cost = cost.Add(invoice.TotalCostBRL())
		}
		totals = clearance.ComputeTotals(selling, cost)
	}

	if err := s.operationRepo.UpdateTotals(ctx, operationID, totals); err != nil {
		return err
	}
	s.invalidateSummary(ctx)

	s.logger.Debug("operation totals recalculated",
		zap.String("operation_id", operationID.String()),
		zap.String("selling", totals.Selling.String()),
		zap.String("cost", totals.Cost.String()),
		zap.String("margin", totals.Margin.String()))
	return nil
}
