package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/SscSPs/currency_bar/internal/dto"
	"github.com/SscSPs/currency_bar/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const eventStreamBuffer = 16

// assetHandler handles HTTP requests related to tracked assets.
type assetHandler struct {
	assetService   portssvc.AssetSvcFacade
	refreshService portssvc.RefreshSvc
	events         portssvc.AssetEventSource
	locale         language.Tag
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(as portssvc.AssetSvcFacade, rs portssvc.RefreshSvc, events portssvc.AssetEventSource, locale language.Tag) *assetHandler {
	return &assetHandler{
		assetService:   as,
		refreshService: rs,
		events:         events,
		locale:         locale,
	}
}

// registerAssetRoutes registers routes related to assets.
func registerAssetRoutes(rg *gin.RouterGroup, h *assetHandler) {
	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.POST("/refresh", h.refreshAssets)
		assets.GET("/events", h.streamAssetEvents)
		assets.GET("/:assetID", h.getAsset)
		assets.DELETE("/:assetID", h.deleteAsset)
	}
}

// createAsset godoc
// @Summary Track a new conversion pair
// @Description Persists the asset and requests its first conversion in the background
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create asset"
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := requestLogger(c)
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create asset")
		return
	}

	logger.Info("Asset created successfully", slog.String("asset_id", asset.ID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset, requestLocale(c, h.locale)))
}

// listAssets godoc
// @Summary List tracked assets
// @Description Lists assets ordered by last update, with cursor pagination
// @Tags assets
// @Produce  json
// @Param   limit query int false "Page size (1-100)"
// @Param   nextToken query string false "Continuation token from a previous page"
// @Param   menubarOnly query bool false "Only assets shown in the menu bar"
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := requestLogger(c)
	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListAssets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	// One extra row tells whether another page exists
	filter := domain.AssetFilter{MenubarOnly: params.MenubarOnly, Limit: params.Limit + 1}
	if params.NextToken != "" {
		lastUpdate, id, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			respondServiceError(c, logger, err, "list assets")
			return
		}
		filter.AfterLastUpdate = lastUpdate
		filter.AfterID = id
	}

	assets, err := h.assetService.ListAssets(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "list assets")
		return
	}

	res := dto.ListAssetsResponse{}
	if len(assets) > params.Limit {
		assets = assets[:params.Limit]
		last := assets[len(assets)-1]
		res.NextToken = pagination.EncodeToken(last.LastUpdate, last.ID)
	}
	res.Assets = dto.ToListAssetResponse(assets, requestLocale(c, h.locale))

	logger.Info("Assets listed successfully", slog.Int("count", len(res.Assets)))
	c.JSON(http.StatusOK, res)
}

// getAsset godoc
// @Summary Get an asset
// @Tags assets
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to retrieve asset"
// @Security BearerAuth
// @Router /assets/{assetID} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	assetID := c.Param("assetID")
	logger := requestLogger(c).With(slog.String("asset_id", assetID))

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), assetID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset, requestLocale(c, h.locale)))
}

// deleteAsset godoc
// @Summary Stop tracking an asset
// @Tags assets
// @Param   assetID path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to delete asset"
// @Security BearerAuth
// @Router /assets/{assetID} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	assetID := c.Param("assetID")
	logger := requestLogger(c).With(slog.String("asset_id", assetID))

	if err := h.assetService.DeleteAsset(c.Request.Context(), assetID); err != nil {
		respondServiceError(c, logger, err, "delete asset")
		return
	}
	logger.Info("Asset deleted successfully")
	c.Status(http.StatusNoContent)
}

// refreshAssets godoc
// @Summary Refresh every asset now
// @Description Runs one refresh tick synchronously. A tick is skipped when the rate service is unreachable.
// @Tags assets
// @Produce  json
// @Success 200 {object} dto.RefreshResponse
// @Failure 500 {object} map[string]string "Failed to refresh assets"
// @Security BearerAuth
// @Router /assets/refresh [post]
func (h *assetHandler) refreshAssets(c *gin.Context) {
	logger := requestLogger(c)

	report, err := h.refreshService.RefreshAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "refresh assets")
		return
	}

	logger.Info("Manual refresh finished",
		slog.Bool("skipped", report.Skipped),
		slog.Int("updated", report.Updated),
		slog.Int("failed", report.Failed))
	c.JSON(http.StatusOK, dto.RefreshResponse{Connected: h.refreshService.Connected(), Report: report})
}

// streamAssetEvents godoc
// @Summary Follow asset changes
// @Description Server-sent events: asset.created, asset.updated and asset.deleted
// @Tags assets
// @Produce  text/event-stream
// @Success 200 {object} dto.AssetEventResponse
// @Security BearerAuth
// @Router /assets/events [get]
func (h *assetHandler) streamAssetEvents(c *gin.Context) {
	logger := requestLogger(c)
	locale := requestLocale(c, h.locale)

	events, cancel := h.events.Subscribe(eventStreamBuffer)
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Header("Content-Type", "text/event-stream")
	c.Status(http.StatusOK)
	c.Writer.Flush()
	logger.Info("Asset event stream opened")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Type), dto.ToAssetEventResponse(event, locale))
			return true
		}
	})
	logger.Info("Asset event stream closed")
}
