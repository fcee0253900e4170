package handler

import (
	billingapp "github.com/comex/backend/internal/application/billing"
	documentapp "github.com/comex/backend/internal/application/document"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReceiptHandler handles payment receipt API endpoints
type ReceiptHandler struct {
	BaseHandler
	receiptService  *billingapp.ReceiptService
	documentService *documentapp.Service
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(receiptService *billingapp.ReceiptService, documentService *documentapp.Service) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService:  receiptService,
		documentService: documentService,
	}
}

// Create godoc
// @ID           createReceipt
// @Summary      Create a new receipt
// @Description  Record a payment receipt against an invoice
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        request body billing.CreateReceiptRequest true "Receipt creation request"
// @Success      201 {object} APIResponse[billing.ReceiptResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req billingapp.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receipt, err := h.receiptService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, receipt)
}

// GetByID godoc
// @ID           getReceiptById
// @Summary      Get receipt by ID
// @Description  Retrieve a receipt by its ID
// @Tags         receipts
// @Produce      json
// @Param        id path string true "Receipt ID" format(uuid)
// @Success      200 {object} APIResponse[billing.ReceiptResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *gin.Context) {
	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID format")
		return
	}

	receipt, err := h.receiptService.GetByID(c.Request.Context(), receiptID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, receipt)
}

// List godoc
// @ID           listReceipts
// @Summary      List receipts
// @Description  List receipts with pagination, search and filtering
// @Tags         receipts
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        search query string false "Search in receipt number and notes"
// @Param        invoice_id query string false "Filter by invoice" format(uuid)
// @Success      200 {object} APIResponse[[]billing.ReceiptResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	var filter billingapp.ReceiptListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	receipts, total, err := h.receiptService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, receipts, total, filter.Page, filter.PageSize)
}

// GetByInvoice godoc
// @ID           listReceiptsByInvoice
// @Summary      List an invoice's receipts
// @Description  List every receipt recorded against the given invoice, oldest payment first
// @Tags         receipts
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[[]billing.ReceiptResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/invoices/{id}/receipts [get]
func (h *ReceiptHandler) GetByInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	receipts, err := h.receiptService.GetByInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, receipts)
}

// Update godoc
// @ID           updateReceipt
// @Summary      Update a receipt
// @Description  Update a receipt's details
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        id path string true "Receipt ID" format(uuid)
// @Param        request body billing.UpdateReceiptRequest true "Receipt update request"
// @Success      200 {object} APIResponse[billing.ReceiptResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/receipts/{id} [put]
func (h *ReceiptHandler) Update(c *gin.Context) {
	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID format")
		return
	}

	var req billingapp.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receipt, err := h.receiptService.Update(c.Request.Context(), receiptID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, receipt)
}

// GeneratePDF godoc
// @ID           generateReceiptPdf
// @Summary      Generate a receipt PDF
// @Description  Render the receipt to PDF, upload it to object storage and store the URL on the receipt
// @Tags         receipts
// @Produce      json
// @Param        id path string true "Receipt ID" format(uuid)
// @Success      200 {object} APIResponse[DocumentURLData]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/receipts/{id}/pdf [post]
func (h *ReceiptHandler) GeneratePDF(c *gin.Context) {
	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID format")
		return
	}

	url, err := h.documentService.GenerateReceiptPDF(c.Request.Context(), receiptID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, DocumentURLData{URL: url})
}

// Delete godoc
// @ID           deleteReceipt
// @Summary      Delete a receipt
// @Description  Remove a payment receipt
// @Tags         receipts
// @Produce      json
// @Param        id path string true "Receipt ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID format")
		return
	}

	if err := h.receiptService.Delete(c.Request.Context(), receiptID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
