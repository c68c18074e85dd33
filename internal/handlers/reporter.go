package handlers

import (
	"github.com/Jeffrey-enterN/entern-ghosted/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReporterHandler struct{}

func NewReporterHandler() *ReporterHandler {
	return &ReporterHandler{}
}

// New mints an opaque reporter id for installations that cannot generate
// one locally. The extension normally generates and stores its own; this
// is the fallback used during first-run bootstrap.
// POST /api/reporters
func (h *ReporterHandler) New(c *gin.Context) {
	response.Created(c, gin.H{"reporter_id": uuid.NewString()})
}
