package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/currency_bar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/SscSPs/currency_bar/internal/platform/config"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// NewServiceContainer wires the services around an already constructed scheduler and event hub.
// The caller owns the scheduler lifecycle (Start/Stop).
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, scheduler *RefreshScheduler, hub *EventHub, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	locale, err := language.Parse(cfg.DisplayLocale)
	if err != nil {
		locale = language.English
	}
	maxInput, err := decimal.NewFromString(cfg.MaxInputAmount)
	if err != nil {
		maxInput = decimal.Zero
	}

	container.Asset = NewAssetService(
		repos.AssetRepo,
		WithRefresher(scheduler),
		WithAssetEvents(hub),
		WithMaxInputAmount(maxInput),
		WithInputLocale(locale),
		WithAssetLogger(logger),
	)
	container.Refresh = scheduler
	container.Settings = NewSettingsService(repos.SettingsRepo, scheduler, logger)
	container.Events = hub

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AssetSvcFacade    = (*assetService)(nil)
	_ portssvc.RefreshSvc        = (*RefreshScheduler)(nil)
	_ portssvc.SettingsSvcFacade = (*settingsService)(nil)
	_ portssvc.AssetEventSource  = (*EventHub)(nil)
)
