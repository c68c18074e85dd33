package handlers

import (
	"github.com/Jeffrey-enterN/entern-ghosted/internal/services"
	"github.com/Jeffrey-enterN/entern-ghosted/pkg/response"
	"github.com/gin-gonic/gin"
)

type SystemLogHandler struct {
	logService    *services.SystemLogService
	retentionDays int
}

func NewSystemLogHandler(logService *services.SystemLogService, retentionDays int) *SystemLogHandler {
	return &SystemLogHandler{
		logService:    logService,
		retentionDays: retentionDays,
	}
}

// List returns paginated system logs
// GET /api/system-logs
func (h *SystemLogHandler) List(c *gin.Context) {
	var req services.SystemLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.logService.List(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, resp)
}

// Cleanup purges logs past the configured retention window
// POST /api/system-logs/cleanup
func (h *SystemLogHandler) Cleanup(c *gin.Context) {
	deleted, err := h.logService.CleanupOldLogs(h.retentionDays)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": deleted, "retention_days": h.retentionDays})
}
