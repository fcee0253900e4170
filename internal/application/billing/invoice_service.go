package billing

import (
	"context"

	"github.com/comex/backend/internal/domain/billing"
	"github.com/comex/backend/internal/domain/shared"
	"github.com/comex/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// TotalsRecalculator refreshes the derived profitability figures of an
// operation after its billing data changed.
type TotalsRecalculator interface {
	Recalculate(ctx context.Context, operationID uuid.UUID) error
}

// InvoiceService composes invoices and keeps operation totals in sync.
// The charged total is always derived here; clients never dictate it.
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	totals      TotalsRecalculator
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, totals TotalsRecalculator) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		totals:      totals,
	}
}

func itemFromRequest(req InvoiceItemRequest) (*billing.InvoiceItem, error) {
	currency := valueobject.Currency(req.Currency)
	if req.Currency == "" {
		currency = valueobject.DefaultCurrency
	}
	costCurrency := valueobject.Currency(req.CostCurrency)
	if req.CostCurrency == "" {
		costCurrency = valueobject.DefaultCurrency
	}

	amount, err := valueobject.NewMoney(req.Amount, currency)
	if err != nil {
		return nil, err
	}
	costAmount, err := valueobject.NewMoney(req.CostAmount, costCurrency)
	if err != nil {
		return nil, err
	}

	item, err := billing.NewInvoiceItem(req.Description, amount, costAmount)
	if err != nil {
		return nil, err
	}
	item.FeeID = req.FeeID
	item.SupplierID = req.SupplierID
	return item, nil
}

// Create creates an invoice with its items and refreshes the owning
// operation's totals
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	exists, err := s.invoiceRepo.ExistsByInvoiceNumber(ctx, req.InvoiceNumber, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this number already exists")
	}

	invoice, err := billing.NewInvoice(req.OperationID, req.ClientID, req.InvoiceNumber, req.IssueDate, req.DollarRate, req.TotalAmount, req.IOFAmount)
	if err != nil {
		return nil, err
	}
	invoice.DueDate = req.DueDate
	invoice.Notes = req.Notes

	items := make([]*billing.InvoiceItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := itemFromRequest(itemReq)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	invoice.ReplaceItems(items)

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	if err := s.totals.Recalculate(ctx, invoice.OperationID); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice with its items
func (s *InvoiceService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices with filtering and pagination
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
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
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.OperationID != "" {
		domainFilter.Filters["operation_id"] = filter.OperationID
	}
	if filter.ClientID != "" {
		domainFilter.Filters["client_id"] = filter.ClientID
	}

	page, err := s.invoiceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]InvoiceResponse, 0, len(page.Items))
	for _, invoice := range page.Items {
		responses = append(responses, ToInvoiceResponse(invoice))
	}
	return responses, page.Total, nil
}

// GetByOperation retrieves all invoices of an operation
func (s *InvoiceService) GetByOperation(ctx context.Context, operationID uuid.UUID) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindByOperationID(ctx, operationID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		responses = append(responses, ToInvoiceResponse(invoice))
	}
	return responses, nil
}

// GetByClient retrieves all invoices billed to a client
func (s *InvoiceService) GetByClient(ctx context.Context, clientID uuid.UUID) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		responses = append(responses, ToInvoiceResponse(invoice))
	}
	return responses, nil
}

// Update applies a partial update to an invoice. When items are given
// the existing set is replaced wholesale. Totals of the owning
// operation are refreshed afterwards.
func (s *InvoiceService) Update(ctx context.Context, invoiceID uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.InvoiceNumber != nil && *req.InvoiceNumber != invoice.InvoiceNumber {
		exists, err := s.invoiceRepo.ExistsByInvoiceNumber(ctx, *req.InvoiceNumber, &invoiceID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this number already exists")
		}
		invoice.InvoiceNumber = *req.InvoiceNumber
	}

	if req.IssueDate != nil {
		invoice.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}
	if req.DollarRate != nil {
		if req.DollarRate.IsNegative() {
			return nil, shared.NewDomainError("INVALID_DOLLAR_RATE", "Dollar rate cannot be negative")
		}
		invoice.DollarRate = *req.DollarRate
	}
	if req.TotalAmount != nil || req.IOFAmount != nil {
		totalAmount := invoice.TotalAmount
		iofAmount := invoice.IOFAmount
		if req.TotalAmount != nil {
			totalAmount = *req.TotalAmount
		}
		if req.IOFAmount != nil {
			iofAmount = *req.IOFAmount
		}
		if err := invoice.SetAmounts(totalAmount, iofAmount); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		status := billing.InvoiceStatus(*req.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown invoice status")
		}
		invoice.Status = status
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}

	invoice.Touch()
	invoice.IncrementVersion()

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	if req.Items != nil {
		items := make([]*billing.InvoiceItem, 0, len(req.Items))
		for _, itemReq := range req.Items {
			item, err := itemFromRequest(itemReq)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		invoice.ReplaceItems(items)
		if err := s.invoiceRepo.ReplaceItems(ctx, invoice); err != nil {
			return nil, err
		}
	}

	if err := s.totals.Recalculate(ctx, invoice.OperationID); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// MarkAsPaid records payment on an invoice
func (s *InvoiceService) MarkAsPaid(ctx context.Context, invoiceID uuid.UUID, req MarkInvoicePaidRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.MarkAsPaid(req.PaidDate, req.PaymentMethod); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes an invoice and refreshes the former operation's totals
func (s *InvoiceService) Delete(ctx context.Context, invoiceID uuid.UUID) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	if err := s.invoiceRepo.Delete(ctx, invoiceID); err != nil {
		return err
	}

	return s.totals.Recalculate(ctx, invoice.OperationID)
}

// AttachPDF records a rendered document location on the invoice
func (s *InvoiceService) AttachPDF(ctx context.Context, invoiceID uuid.UUID, url string) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	invoice.AttachPDF(url)
	return s.invoiceRepo.Save(ctx, invoice)
}
