package repositories

import (
	"context"

	"github.com/SscSPs/currency_bar/internal/core/domain"
)

// SettingsRepository is a flat key-value store for user preferences.
type SettingsRepository interface {
	// LoadSettings returns stored settings, or defaults when nothing was stored yet.
	LoadSettings(ctx context.Context) (domain.Settings, error)

	// SaveSettings durably writes the settings.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
