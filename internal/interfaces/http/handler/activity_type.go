package handler

import (
	activityapp "github.com/crm/backend/internal/application/activity"
	"github.com/gin-gonic/gin"
)

// ActivityTypeHandler handles activity type directory API endpoints
type ActivityTypeHandler struct {
	BaseHandler
	typeService *activityapp.TypeService
}

// NewActivityTypeHandler creates a new ActivityTypeHandler
func NewActivityTypeHandler(typeService *activityapp.TypeService) *ActivityTypeHandler {
	return &ActivityTypeHandler{
		typeService: typeService,
	}
}

// RegisterRoutes registers the activity type routes on the given group
func (h *ActivityTypeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	routes := rg.Group("/activity-types")
	routes.GET("", h.List)
	routes.POST("", h.Create)
	routes.GET("/name/:typeName", h.GetByTypeName)
	routes.GET("/:id", h.GetByID)
	routes.PUT("/:id", h.Update)
	routes.DELETE("/:id", h.Delete)
}

// Create creates a new activity type
func (h *ActivityTypeHandler) Create(c *gin.Context) {
	var req activityapp.ActivityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	activityType, err := h.typeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, activityType)
}

// List returns a page of activity types
func (h *ActivityTypeHandler) List(c *gin.Context) {
	filter := bindListFilter(c)

	page, err := h.typeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, pageMeta(page.Meta))
}

// GetByID returns one activity type
func (h *ActivityTypeHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid activity type ID format")
		return
	}

	activityType, err := h.typeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, activityType)
}

// GetByTypeName returns the activity type with the given unique name
func (h *ActivityTypeHandler) GetByTypeName(c *gin.Context) {
	typeName := c.Param("typeName")
	if typeName == "" {
		h.BadRequest(c, "Type name is required")
		return
	}

	activityType, err := h.typeService.GetByTypeName(c.Request.Context(), typeName)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, activityType)
}

// Update updates an activity type
func (h *ActivityTypeHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid activity type ID format")
		return
	}

	var req activityapp.ActivityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	activityType, err := h.typeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, activityType)
}

// Delete deletes an activity type
func (h *ActivityTypeHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid activity type ID format")
		return
	}

	if err := h.typeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
