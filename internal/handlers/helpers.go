package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/SscSPs/currency_bar/internal/middleware"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// requestLogger returns the request-scoped logger, or the default logger outside the logging middleware.
func requestLogger(c *gin.Context) *slog.Logger {
	if logger := middleware.GetLoggerFromCtx(c.Request.Context()); logger != nil {
		return logger
	}
	return slog.Default()
}

// requestLocale picks the display locale from the locale query parameter,
// then the Accept-Language header, then fallback.
func requestLocale(c *gin.Context, fallback language.Tag) language.Tag {
	if raw := c.Query("locale"); raw != "" {
		if tag, err := language.Parse(raw); err == nil {
			return tag
		}
	}
	if header := c.GetHeader("Accept-Language"); header != "" {
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil && len(tags) > 0 {
			return tags[0]
		}
	}
	return fallback
}

// respondServiceError maps service errors onto HTTP status codes.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error: "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found: "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate: "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
