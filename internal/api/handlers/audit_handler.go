package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formbuilder/internal/application"
	"github.com/linskybing/formbuilder/pkg/utils"
)

type AuditHandler struct {
	service *application.AuditService
}

func NewAuditHandler(service *application.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// GetAuditLogs godoc
// @Summary List audit log entries
// @Tags audit
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Param action query string false "Filter by action (create/update/delete)"
// @Param resource_type query string false "Filter by resource type (form/submission)"
// @Success 200 {object} response.Paginated
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	var action, resourceType *string
	if v := c.Query("action"); v != "" {
		action = &v
	}
	if v := c.Query("resource_type"); v != "" {
		resourceType = &v
	}

	result, err := h.service.ListLogs(page, limit, action, resourceType)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
