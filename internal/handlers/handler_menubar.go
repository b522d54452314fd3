package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/SscSPs/currency_bar/internal/dto"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// menubarHandler serves the compact menu bar view.
type menubarHandler struct {
	assetService   portssvc.AssetReaderSvc
	refreshService portssvc.RefreshSvc
	locale         language.Tag
}

// registerMenubarRoutes registers the menu bar route.
func registerMenubarRoutes(rg *gin.RouterGroup, as portssvc.AssetReaderSvc, rs portssvc.RefreshSvc, locale language.Tag) {
	h := &menubarHandler{assetService: as, refreshService: rs, locale: locale}
	rg.GET("/menubar", h.getMenubar)
}

// getMenubar godoc
// @Summary Menu bar view
// @Description Menubar-flagged assets with formatted amounts and trend, plus the connection flag
// @Tags menubar
// @Produce  json
// @Success 200 {object} dto.MenubarResponse
// @Failure 500 {object} map[string]string "Failed to load menu bar"
// @Security BearerAuth
// @Router /menubar [get]
func (h *menubarHandler) getMenubar(c *gin.Context) {
	logger := requestLogger(c)

	assets, err := h.assetService.ListMenubarAssets(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "load menu bar")
		return
	}

	res := dto.ToMenubarResponse(assets, h.refreshService.Connected(), requestLocale(c, h.locale))
	logger.Debug("Menu bar rendered", slog.Int("items", len(res.Items)), slog.Bool("connected", res.Connected))
	c.JSON(http.StatusOK, res)
}
