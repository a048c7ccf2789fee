package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogcraft/internal/domain"
	"blogcraft/internal/logger"
	"blogcraft/internal/middleware"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain errors to HTTP responses. Validation errors are
// 400, not-found errors are 404 with notFoundMsg, everything else is logged
// and answered with 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	if ve, ok := domain.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message})
		return
	}

	if domain.IsNotFound(err) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundMsg})
		return
	}

	logger.WithRequestID(middleware.GetRequestID(c)).Error("Request failed",
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgInternalServer})
}
