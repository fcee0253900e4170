package document

import (
	"context"
	"fmt"

	"github.com/comex/backend/internal/domain/billing"
	"github.com/comex/backend/internal/domain/clearance"
	"github.com/comex/backend/internal/domain/partner"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Composer turns document data into printable HTML
type Composer interface {
	ComposeInvoice(data InvoiceDocumentData) (string, error)
	ComposeReceipt(data ReceiptDocumentData) (string, error)
}

// Renderer converts HTML into a PDF document
type Renderer interface {
	RenderHTML(ctx context.Context, html, title string) ([]byte, error)
}

// ObjectStorage stores rendered documents and returns a durable URL
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Service renders invoices and receipts to PDF, stores them, and
// records the resulting URL on the aggregate.
type Service struct {
	invoiceRepo   billing.InvoiceRepository
	receiptRepo   billing.ReceiptRepository
	operationRepo clearance.OperationRepository
	clientRepo    partner.ClientRepository
	composer      Composer
	renderer      Renderer
	storage       ObjectStorage
	logger        *zap.Logger
}

// NewService creates a new document Service
func NewService(
	invoiceRepo billing.InvoiceRepository,
	receiptRepo billing.ReceiptRepository,
	operationRepo clearance.OperationRepository,
	clientRepo partner.ClientRepository,
	composer Composer,
	renderer Renderer,
	storage ObjectStorage,
	logger *zap.Logger,
) *Service {
	return &Service{
		invoiceRepo:   invoiceRepo,
		receiptRepo:   receiptRepo,
		operationRepo: operationRepo,
		clientRepo:    clientRepo,
		composer:      composer,
		renderer:      renderer,
		storage:       storage,
		logger:        logger,
	}
}

// GenerateInvoicePDF renders an invoice to PDF, uploads it and stores
// the URL on the invoice. Returns the document URL.
func (s *Service) GenerateInvoicePDF(ctx context.Context, invoiceID uuid.UUID) (string, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return "", err
	}
	operation, err := s.operationRepo.FindByID(ctx, invoice.OperationID)
	if err != nil {
		return "", err
	}
	client, err := s.clientRepo.FindByID(ctx, invoice.ClientID)
	if err != nil {
		return "", err
	}

	data := InvoiceDocumentData{
		InvoiceNumber:   invoice.InvoiceNumber,
		IssueDate:       invoice.IssueDate,
		DueDate:         invoice.DueDate,
		Consignee:       client.Consignee,
		Shipper:         client.Shipper,
		CNPJ:            client.CNPJ,
		ReferenceNumber: operation.ReferenceNumber,
		Route:           client.RouteLabel(),
		DollarRate:      invoice.DollarRate,
		TotalAmount:     invoice.TotalAmount,
		IOFAmount:       invoice.IOFAmount,
		FinalAmount:     invoice.FinalAmount,
		Status:          string(invoice.Status),
		Notes:           invoice.Notes,
	}
	for _, item := range invoice.Items {
		data.Lines = append(data.Lines, InvoiceDocumentLine{
			Description:  item.Description,
			Amount:       item.Amount.Amount(),
			Currency:     string(item.Amount.Currency()),
			CostAmount:   item.CostAmount.Amount(),
			CostCurrency: string(item.CostAmount.Currency()),
		})
	}

	html, err := s.composer.ComposeInvoice(data)
	if err != nil {
		return "", err
	}

	pdf, err := s.renderer.RenderHTML(ctx, html, "Fatura "+invoice.InvoiceNumber)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("invoices/%s.pdf", invoice.InvoiceNumber)
	url, err := s.storage.Upload(ctx, key, "application/pdf", pdf)
	if err != nil {
		return "", err
	}

	invoice.AttachPDF(url)
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return "", err
	}

	s.logger.Info("invoice PDF generated",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("url", url),
		zap.Int("bytes", len(pdf)))
	return url, nil
}

// GenerateReceiptPDF renders a receipt to PDF, uploads it and stores
// the URL on the receipt. Returns the document URL.
func (s *Service) GenerateReceiptPDF(ctx context.Context, receiptID uuid.UUID) (string, error) {
	receipt, err := s.receiptRepo.FindByID(ctx, receiptID)
	if err != nil {
		return "", err
	}
	invoice, err := s.invoiceRepo.FindByID(ctx, receipt.InvoiceID)
	if err != nil {
		return "", err
	}
	client, err := s.clientRepo.FindByID(ctx, receipt.ClientID)
	if err != nil {
		return "", err
	}

	data := ReceiptDocumentData{
		ReceiptNumber: receipt.ReceiptNumber,
		InvoiceNumber: invoice.InvoiceNumber,
		Consignee:     client.Consignee,
		Amount:        receipt.Amount,
		PaymentDate:   receipt.PaymentDate,
		PaymentMethod: receipt.PaymentMethod,
		Notes:         receipt.Notes,
	}

	html, err := s.composer.ComposeReceipt(data)
	if err != nil {
		return "", err
	}

	pdf, err := s.renderer.RenderHTML(ctx, html, "Recibo "+receipt.ReceiptNumber)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("receipts/%s.pdf", receipt.ReceiptNumber)
	url, err := s.storage.Upload(ctx, key, "application/pdf", pdf)
	if err != nil {
		return "", err
	}

	receipt.AttachPDF(url)
	if err := s.receiptRepo.Save(ctx, receipt); err != nil {
		return "", err
	}

	s.logger.Info("receipt PDF generated",
		zap.String("receipt_number", receipt.ReceiptNumber),
		zap.String("url", url))
	return url, nil
}
