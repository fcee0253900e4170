package handler

import (
	billingapp "github.com/comex/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeeHandler handles fee catalog API endpoints
type FeeHandler struct {
	BaseHandler
	feeService *billingapp.FeeService
}

// NewFeeHandler creates a new FeeHandler
func NewFeeHandler(feeService *billingapp.FeeService) *FeeHandler {
	return &FeeHandler{
		feeService: feeService,
	}
}

// Create godoc
// @ID           createFee
// @Summary      Create a new fee
// @Description  Add a reusable fee type to the billing catalog
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        request body billing.CreateFeeRequest true "Fee creation request"
// @Success      201 {object} APIResponse[billing.FeeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/fees [post]
func (h *FeeHandler) Create(c *gin.Context) {
	var req billingapp.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	fee, err := h.feeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, fee)
}

// GetByID godoc
// @ID           getFeeById
// @Summary      Get fee by ID
// @Description  Retrieve a fee by its ID
// @Tags         fees
// @Produce      json
// @Param        id path string true "Fee ID" format(uuid)
// @Success      200 {object} APIResponse[billing.FeeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/fees/{id} [get]
func (h *FeeHandler) GetByID(c *gin.Context) {
	feeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid fee ID format")
		return
	}

	fee, err := h.feeService.GetByID(c.Request.Context(), feeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, fee)
}

// List godoc
// @ID           listFees
// @Summary      List fees
// @Description  List catalog fees with pagination and search
// @Tags         fees
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        search query string false "Search in name and description"
// @Param        include_inactive query bool false "Include deactivated fees"
// @Success      200 {object} APIResponse[[]billing.FeeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/fees [get]
func (h *FeeHandler) List(c *gin.Context) {
	var filter billingapp.FeeListFilter
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

	fees, total, err := h.feeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, fees, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateFee
// @Summary      Update a fee
// @Description  Update a fee's name, description or active flag
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        id path string true "Fee ID" format(uuid)
// @Param        request body billing.UpdateFeeRequest true "Fee update request"
// @Success      200 {object} APIResponse[billing.FeeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/fees/{id} [put]
func (h *FeeHandler) Update(c *gin.Context) {
	feeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid fee ID format")
		return
	}

	var req billingapp.UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	fee, err := h.feeService.Update(c.Request.Context(), feeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, fee)
}

// Deactivate godoc
// @ID           deactivateFee
// @Summary      Deactivate a fee
// @Description  Soft-delete a fee; existing invoice items keep referencing it
// @Tags         fees
// @Produce      json
// @Param        id path string true "Fee ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/fees/{id} [delete]
func (h *FeeHandler) Deactivate(c *gin.Context) {
	feeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid fee ID format")
		return
	}

	if err := h.feeService.Deactivate(c.Request.Context(), feeID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
