package dto

import (
	"time"

	"github.com/SscSPs/currency_bar/internal/core/domain"
)

// UpdateSettingsRequest defines the preferences a client may change.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateSettingsRequest struct {
	CheckIntervalHours *int  `json:"checkIntervalHours" binding:"omitempty,min=1,max=168"` // Whole hours, like the stepper in the menu
	LaunchAtLogin      *bool `json:"launchAtLogin"`
}

// SettingsResponse defines the data returned for the current preferences.
type SettingsResponse struct {
	CheckIntervalSeconds int64 `json:"checkIntervalSeconds"`
	CheckIntervalHours   int   `json:"checkIntervalHours"`
	LaunchAtLogin        bool  `json:"launchAtLogin"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO
func ToSettingsResponse(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		CheckIntervalSeconds: int64(s.RefreshInterval / time.Second),
		CheckIntervalHours:   int(s.RefreshInterval / time.Hour),
		LaunchAtLogin:        s.LaunchAtLogin,
	}
}
