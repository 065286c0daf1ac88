package handler

import (
	"strings"

	activityapp "github.com/crm/backend/internal/application/activity"
	"github.com/gin-gonic/gin"
)

// ActivityHistoryHandler handles activity history API endpoints
type ActivityHistoryHandler struct {
	BaseHandler
	historyService *activityapp.HistoryService
}

// NewActivityHistoryHandler creates a new ActivityHistoryHandler
func NewActivityHistoryHandler(historyService *activityapp.HistoryService) *ActivityHistoryHandler {
	return &ActivityHistoryHandler{
		historyService: historyService,
	}
}

// RegisterRoutes registers the activity history routes on the given group
func (h *ActivityHistoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	routes := rg.Group("/activity-history")
	routes.GET("", h.List)
	routes.POST("", h.Append)
	routes.GET("/customer/:customerId", h.ListByCustomer)
	routes.GET("/document/:documentId", h.ListByDocument)
	routes.GET("/:id", h.GetByID)
	routes.PUT("/:id", h.Update)
	routes.DELETE("/:id", h.Delete)
}

// List returns all activity records in insertion order with their
// customer, status and activity type references resolved
func (h *ActivityHistoryHandler) List(c *gin.Context) {
	filter := bindListFilter(c)

	page, err := h.historyService.ListAll(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, pageMeta(page.Meta))
}

// ListByCustomer returns a customer's activity records, newest first
func (h *ActivityHistoryHandler) ListByCustomer(c *gin.Context) {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}
	filter := bindListFilter(c)

	page, err := h.historyService.ListByCustomer(c.Request.Context(), customerID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, pageMeta(page.Meta))
}

// ListByDocument returns a document's activity records, newest first.
// Both the document id and the documentType query parameter identify the
// document; activityTypeNames optionally restricts to a comma-separated
// set of type names.
func (h *ActivityHistoryHandler) ListByDocument(c *gin.Context) {
	documentID, err := parseIDParam(c, "documentId")
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	documentType := c.Query("documentType")
	if documentType == "" {
		h.BadRequest(c, "documentType query parameter is required")
		return
	}

	var typeNames []string
	if raw := c.Query("activityTypeNames"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				typeNames = append(typeNames, name)
			}
		}
	}

	filter := bindListFilter(c)

	page, err := h.historyService.ListByDocument(c.Request.Context(), documentType, documentID, typeNames, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, pageMeta(page.Meta))
}

// GetByID returns one normalized activity record
func (h *ActivityHistoryHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid activity record ID format")
		return
	}

	record, err := h.historyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// Append appends a new activity record
func (h *ActivityHistoryHandler) Append(c *gin.Context) {
	var req activityapp.AppendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.historyService.Append(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, record)
}

// Update applies a partial update to an existing record. A missing id
// yields 404; updates never create records.
func (h *ActivityHistoryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid activity record ID format")
		return
	}

	var req activityapp.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.historyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// Delete deletes an activity record
func (h *ActivityHistoryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid activity record ID format")
		return
	}

	if err := h.historyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
