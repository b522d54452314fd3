package handlers

import (
	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/SscSPs/currency_bar/internal/middleware"
	"github.com/SscSPs/currency_bar/internal/platform/config"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", getHealth(services.Refresh))

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")
	if cfg.JWTSecret != "" {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}

	locale := displayLocale(cfg.DisplayLocale)

	registerAssetRoutes(v1, newAssetHandler(services.Asset, services.Refresh, services.Events, locale))
	registerMenubarRoutes(v1, services.Asset, services.Refresh, locale)
	registerSettingsRoutes(v1, services.Settings)
	registerCountryRoutes(v1)
}

// displayLocale parses the configured locale, defaulting to US English.
func displayLocale(raw string) language.Tag {
	tag, err := language.Parse(raw)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
