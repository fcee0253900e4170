package billing

import (
	"context"

	"github.com/comex/backend/internal/domain/billing"
	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReceiptService handles payment receipt operations
type ReceiptService struct {
	receiptRepo billing.ReceiptRepository
	invoiceRepo billing.InvoiceRepository
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(receiptRepo billing.ReceiptRepository, invoiceRepo billing.InvoiceRepository) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Create creates a receipt against an existing invoice
func (s *ReceiptService) Create(ctx context.Context, req CreateReceiptRequest) (*ReceiptResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	exists, err := s.receiptRepo.ExistsByReceiptNumber(ctx, req.ReceiptNumber, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Receipt with this number already exists")
	}

	receipt, err := billing.NewReceipt(req.InvoiceID, invoice.OperationID, invoice.ClientID, req.ReceiptNumber, req.Amount, req.PaymentDate)
	if err != nil {
		return nil, err
	}
	if req.PaymentMethod != "" {
		receipt.SetPaymentMethod(req.PaymentMethod)
	}
	if req.Notes != "" {
		receipt.SetNotes(req.Notes)
	}

	if err := s.receiptRepo.Save(ctx, receipt); err != nil {
		return nil, err
	}

	response := ToReceiptResponse(receipt)
	return &response, nil
}

// GetByID retrieves a receipt by ID
func (s *ReceiptService) GetByID(ctx context.Context, receiptID uuid.UUID) (*ReceiptResponse, error) {
	receipt, err := s.receiptRepo.FindByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	response := ToReceiptResponse(receipt)
	return &response, nil
}

// List retrieves receipts with filtering and pagination
func (s *ReceiptService) List(ctx context.Context, filter ReceiptListFilter) ([]ReceiptResponse, int64, error) {
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
	if filter.InvoiceID != "" {
		domainFilter.Filters["invoice_id"] = filter.InvoiceID
	}

	page, err := s.receiptRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ReceiptResponse, 0, len(page.Items))
	for _, receipt := range page.Items {
		responses = append(responses, ToReceiptResponse(receipt))
	}
	return responses, page.Total, nil
}

// GetByInvoice retrieves all receipts of an invoice
func (s *ReceiptService) GetByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]ReceiptResponse, error) {
	receipts, err := s.receiptRepo.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	responses := make([]ReceiptResponse, 0, len(receipts))
	for _, receipt := range receipts {
		responses = append(responses, ToReceiptResponse(receipt))
	}
	return responses, nil
}

// Update applies a partial update to a receipt
func (s *ReceiptService) Update(ctx context.Context, receiptID uuid.UUID, req UpdateReceiptRequest) (*ReceiptResponse, error) {
	receipt, err := s.receiptRepo.FindByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	if req.ReceiptNumber != nil && *req.ReceiptNumber != receipt.ReceiptNumber {
		exists, err := s.receiptRepo.ExistsByReceiptNumber(ctx, *req.ReceiptNumber, &receiptID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Receipt with this number already exists")
		}
		receipt.ReceiptNumber = *req.ReceiptNumber
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Receipt amount must be positive")
		}
		receipt.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		receipt.PaymentDate = *req.PaymentDate
	}
	if req.PaymentMethod != nil {
		receipt.SetPaymentMethod(*req.PaymentMethod)
	}
	if req.Notes != nil {
		receipt.SetNotes(*req.Notes)
	}

	receipt.Touch()
	receipt.IncrementVersion()

	if err := s.receiptRepo.Save(ctx, receipt); err != nil {
		return nil, err
	}

	response := ToReceiptResponse(receipt)
	return &response, nil
}

// Delete removes a receipt
func (s *ReceiptService) Delete(ctx context.Context, receiptID uuid.UUID) error {
	if _, err := s.receiptRepo.FindByID(ctx, receiptID); err != nil {
		return err
	}
	return s.receiptRepo.Delete(ctx, receiptID)
}

// AttachPDF records a rendered document location on the receipt
func (s *ReceiptService) AttachPDF(ctx context.Context, receiptID uuid.UUID, url string) error {
	receipt, err := s.receiptRepo.FindByID(ctx, receiptID)
	if err != nil {
		return err
	}
	receipt.AttachPDF(url)
	return s.receiptRepo.Save(ctx, receipt)
}
