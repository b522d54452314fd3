package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description Reports liveness, the last reachability probe and the refresh interval.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func getHealth(refresh portssvc.RefreshSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":               "ok",
			"connected":            refresh.Connected(),
			"checkIntervalSeconds": int64(refresh.Interval().Seconds()),
		})
	}
}
