package handler

import (
	clearanceapp "github.com/comex/backend/internal/application/clearance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OperationHandler handles clearance operation API endpoints
type OperationHandler struct {
	BaseHandler
	operationService *clearanceapp.OperationService
}

// NewOperationHandler creates a new OperationHandler
func NewOperationHandler(operationService *clearanceapp.OperationService) *OperationHandler {
	return &OperationHandler{
		operationService: operationService,
	}
}

// Create godoc
// @ID           createOperation
// @Summary      Create a new operation
// @Description  Open a customs clearance operation for a client
// @Tags         operations
// @Accept       json
// @Produce      json
// @Param        request body clearance.CreateOperationRequest true "Operation creation request"
// @Success      201 {object} APIResponse[clearance.OperationResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /clearance/operations [post]
func (h *OperationHandler) Create(c *gin.Context) {
	var req clearanceapp.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	operation, err := h.operationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, operation)
}

// GetByID godoc
// @ID           getOperationById
// @Summary      Get operation by ID
// @Description  Retrieve an operation with its aggregated totals
// @Tags         operations
// @Produce      json
// @Param        id path string true "Operation ID" format(uuid)
// @Success      200 {object} APIResponse[clearance.OperationResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /clearance/operations/{id} [get]
func (h *OperationHandler) GetByID(c *gin.Context) {
	operationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid operation ID format")
		return
	}

	operation, err := h.operationService.GetByID(c.Request.Context(), operationID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, operation)
}

// List godoc
// @ID           listOperations
// @Summary      List operations
// @Description  List operations with pagination, search and status filtering
// @Tags         operations
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        search query string false "Search in reference number and description"
// @Param        status query string false "Filter by status" Enums(pending, in_progress, completed, cancelled)
// @Param        client_id query string false "Filter by client" format(uuid)
// @Success      200 {object} APIResponse[[]clearance.OperationResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /clearance/operations [get]
func (h *OperationHandler) List(c *gin.Context) {
	var filter clearanceapp.OperationListFilter
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

	operations, total, err := h.operationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, operations, total, filter.Page, filter.PageSize)
}

// GetByClient godoc
// @ID           listOperationsByClient
// @Summary      List a client's operations
// @Description  List every operation opened for the given client, newest first
// @Tags         operations
// @Produce      json
// @Param        id path string true "Client ID" format(uuid)
// @Success      200 {object} APIResponse[[]clearance.OperationResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /partner/clients/{id}/operations [get]
func (h *OperationHandler) GetByClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	operations, err := h.operationService.GetByClient(c.Request.Context(), clientID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, operations)
}

// Update godoc
// @ID           updateOperation
// @Summary      Update an operation
// @Description  Update an operation's details or status. Completing an operation marks its non-cancelled invoices paid; moving it back to pending or in progress reopens them
// @Tags         operations
// @Accept       json
// @Produce      json
// @Param        id path string true "Operation ID" format(uuid)
// @Param        request body clearance.UpdateOperationRequest true "Operation update request"
// @Success      200 {object} APIResponse[clearance.OperationResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /clearance/operations/{id} [put]
func (h *OperationHandler) Update(c *gin.Context) {
	operationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid operation ID format")
		return
	}

	var req clearanceapp.UpdateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	operation, err := h.operationService.Update(c.Request.Context(), operationID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, operation)
}

// Recalculate godoc
// @ID           recalculateOperation
// @Summary      Recalculate operation totals
// @Description  Recompute selling, cost, profit and margin from the operation's non-cancelled invoices
// @Tags         operations
// @Produce      json
// @Param        id path string true "Operation ID" format(uuid)
// @Success      200 {object} APIResponse[clearance.OperationResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /clearance/operations/{id}/recalculate [post]
func (h *OperationHandler) Recalculate(c *gin.Context) {
	operationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid operation ID format")
		return
	}

	if err := h.operationService.Recalculate(c.Request.Context(), operationID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	operation, err := h.operationService.GetByID(c.Request.Context(), operationID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, operation)
}

// Delete godoc
// @ID           deleteOperation
// @Summary      Delete an operation
// @Description  Remove an operation; fails while invoices still reference it
// @Tags         operations
// @Produce      json
// @Param        id path string true "Operation ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /clearance/operations/{id} [delete]
func (h *OperationHandler) Delete(c *gin.Context) {
	operationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid operation ID format")
		return
	}

	if err := h.operationService.Delete(c.Request.Context(), operationID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
