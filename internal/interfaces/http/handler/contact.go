package handler

import (
	directoryapp "github.com/crm/backend/internal/application/directory"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact directory API endpoints
type ContactHandler struct {
	BaseHandler
	contactService *directoryapp.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *directoryapp.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// RegisterRoutes registers the contact routes on the given group
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	routes := rg.Group("/contacts")
	routes.GET("", h.List)
	routes.POST("", h.Create)
	routes.GET("/customer/:customerId", h.ListByCustomer)
	routes.GET("/:id", h.GetByID)
	routes.PUT("/:id", h.Update)
	routes.DELETE("/:id", h.Delete)
}

// Create creates a new contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req directoryapp.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, contact)
}

// GetByID returns one contact
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	contact, err := h.contactService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contact)
}

// List returns a page of contacts
func (h *ContactHandler) List(c *gin.Context) {
	filter := bindListFilter(c)

	page, err := h.contactService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, pageMeta(page.Meta))
}

// ListByCustomer returns a page of the contacts attached to a customer
func (h *ContactHandler) ListByCustomer(c *gin.Context) {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}
	filter := bindListFilter(c)

	page, err := h.contactService.ListByCustomer(c.Request.Context(), customerID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, pageMeta(page.Meta))
}

// Update applies a partial update to a contact
func (h *ContactHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	var req directoryapp.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contact)
}

// Delete deletes a contact
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
