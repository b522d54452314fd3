package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/SscSPs/currency_bar/internal/dto"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests related to user preferences.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// registerSettingsRoutes registers routes related to settings.
func registerSettingsRoutes(rg *gin.RouterGroup, ss portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: ss}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

// getSettings godoc
// @Summary Get preferences
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} map[string]string "Failed to load settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := requestLogger(c)

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "load settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Change preferences
// @Description A new check interval reschedules the refresh job immediately
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := requestLogger(c)
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "update settings")
		return
	}

	logger.Info("Settings updated successfully", slog.Duration("interval", settings.RefreshInterval))
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
