package handler

import (
	directoryapp "github.com/crm/backend/internal/application/directory"
	"github.com/gin-gonic/gin"
)

// StatusHandler handles pipeline status directory API endpoints
type StatusHandler struct {
	BaseHandler
	statusService *directoryapp.StatusService
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(statusService *directoryapp.StatusService) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
	}
}

// RegisterRoutes registers the status routes on the given group
func (h *StatusHandler) RegisterRoutes(rg *gin.RouterGroup) {
	routes := rg.Group("/statuses")
	routes.GET("", h.List)
	routes.POST("", h.Create)
	routes.GET("/process/:process", h.ListByProcess)
	routes.GET("/:id", h.GetByID)
	routes.PUT("/:id", h.Update)
	routes.DELETE("/:id", h.Delete)
}

// Create creates a new status
func (h *StatusHandler) Create(c *gin.Context) {
	var req directoryapp.CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status, err := h.statusService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, status)
}

// GetByID returns one status
func (h *StatusHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid status ID format")
		return
	}

	status, err := h.statusService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, status)
}

// List returns a page of statuses across all processes
func (h *StatusHandler) List(c *gin.Context) {
	filter := bindListFilter(c)

	page, err := h.statusService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, pageMeta(page.Meta))
}

// ListByProcess returns the statuses of one pipeline process
func (h *StatusHandler) ListByProcess(c *gin.Context) {
	process := c.Param("process")
	if process == "" {
		h.BadRequest(c, "Process is required")
		return
	}
	filter := bindListFilter(c)

	page, err := h.statusService.ListByProcess(c.Request.Context(), process, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, pageMeta(page.Meta))
}

// Update applies a partial update to a status
func (h *StatusHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid status ID format")
		return
	}

	var req directoryapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status, err := h.statusService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, status)
}

// Delete deletes a status
func (h *StatusHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid status ID format")
		return
	}

	if err := h.statusService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
