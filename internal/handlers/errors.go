package handlers

import (
	"errors"

	"github.com/Jeffrey-enterN/entern-ghosted/internal/services"
	"github.com/Jeffrey-enterN/entern-ghosted/pkg/logger"
	"github.com/Jeffrey-enterN/entern-ghosted/pkg/response"
	"github.com/gin-gonic/gin"
)

// handleServiceError translates service sentinel errors into client
// responses. Unknown errors are logged and surfaced as 500, never masked
// with a default payload.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyCompanyName),
		errors.Is(err, services.ErrInvalidStage):
		response.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCompanyNotFound),
		errors.Is(err, services.ErrReportNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		response.ServerError(c, "internal server error")
	}
}
