package handler

import (
	directoryapp "github.com/crm/backend/internal/application/directory"
	"github.com/gin-gonic/gin"
)

// AddressHandler handles address directory API endpoints
type AddressHandler struct {
	BaseHandler
	addressService *directoryapp.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService *directoryapp.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// RegisterRoutes registers the address routes on the given group
func (h *AddressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	routes := rg.Group("/addresses")
	routes.GET("", h.List)
	routes.POST("", h.Create)
	routes.GET("/customer/:customerId", h.ListByCustomer)
	routes.GET("/:id", h.GetByID)
	routes.PUT("/:id", h.Update)
	routes.DELETE("/:id", h.Delete)
}

// Create creates a new address
func (h *AddressHandler) Create(c *gin.Context) {
	var req directoryapp.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	address, err := h.addressService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, address)
}

// GetByID returns one address
func (h *AddressHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid address ID format")
		return
	}

	address, err := h.addressService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, address)
}

// List returns a page of addresses
func (h *AddressHandler) List(c *gin.Context) {
	filter := bindListFilter(c)

	page, err := h.addressService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, pageMeta(page.Meta))
}

// ListByCustomer returns a page of the addresses attached to a customer,
// narrowed to one address type when the addressType query is present
func (h *AddressHandler) ListByCustomer(c *gin.Context) {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}
	filter := bindListFilter(c)

	page, err := h.addressService.ListByCustomer(c.Request.Context(), customerID, c.Query("addressType"), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, pageMeta(page.Meta))
}

// Update applies a partial update to an address
func (h *AddressHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid address ID format")
		return
	}

	var req directoryapp.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	address, err := h.addressService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, address)
}

// Delete deletes an address
func (h *AddressHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid address ID format")
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
