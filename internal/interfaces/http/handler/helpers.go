package handler

import (
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// bindListFilter binds the common pagination query parameters into a
// domain filter. Binding errors fall back to defaults; the filter is
// clamped again by the services.
func bindListFilter(c *gin.Context) shared.Filter {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		req = dto.DefaultListRequest()
	}
	filter := shared.Filter{
		Page:     req.Page,
		Limit:    req.Limit,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}
	filter.Normalize()
	return filter
}

// pageMeta converts domain pagination metadata to the transport shape
func pageMeta(m shared.PageMeta) dto.Meta {
	return dto.Meta{
		TotalItems:   m.TotalItems,
		ItemCount:    m.ItemCount,
		ItemsPerPage: m.ItemsPerPage,
		TotalPages:   m.TotalPages,
		CurrentPage:  m.CurrentPage,
	}
}
