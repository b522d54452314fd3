package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/currency_bar/internal/apperrors"
)

// DefaultRefreshInterval is used until the user picks another interval.
const DefaultRefreshInterval = time.Hour

// Settings are the user preferences persisted between runs.
type Settings struct {
	RefreshInterval time.Duration `json:"refreshInterval"`
	LaunchAtLogin   bool          `json:"launchAtLogin"`
}

// DefaultSettings returns the settings used on first launch.
func DefaultSettings() Settings {
	return Settings{RefreshInterval: DefaultRefreshInterval}
}

// Validate checks the settings can drive the scheduler.
func (s Settings) Validate() error {
	if s.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh interval must be positive", apperrors.ErrValidation)
	}
	return nil
}
