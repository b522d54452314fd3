package services

import (
	"context"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	"github.com/SscSPs/currency_bar/internal/dto"
)

// SettingsSvcFacade reads and changes user preferences.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.Settings, error)
}
