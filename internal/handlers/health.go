package handlers

import (
	"github.com/Jeffrey-enterN/entern-ghosted/internal/models"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth reports service and database status.
// GET /health
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	var reportCount int64
	models.GetDB().Model(&models.Report{}).Count(&reportCount)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "entern-ghosted",
		"components": gin.H{
			"database":      dbStatus,
			"total_reports": reportCount,
		},
	})
}
