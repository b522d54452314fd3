package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_bar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/SscSPs/currency_bar/internal/dto"
)

type settingsService struct {
	BaseService
	repo      portsrepo.SettingsRepository
	scheduler portssvc.IntervalSetter

	mu sync.Mutex
}

// NewSettingsService creates the settings service. scheduler may be nil, in which case
// interval changes are only persisted.
func NewSettingsService(repo portsrepo.SettingsRepository, scheduler portssvc.IntervalSetter, logger *slog.Logger) portssvc.SettingsSvcFacade {
	return &settingsService{
		BaseService: BaseService{Logger: logger},
		repo:        repo,
		scheduler:   scheduler,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings")
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	updated := current
	if req.CheckIntervalHours != nil {
		updated.RefreshInterval = time.Duration(*req.CheckIntervalHours) * time.Hour
	}
	if req.LaunchAtLogin != nil {
		updated.LaunchAtLogin = *req.LaunchAtLogin
	}
	if err := updated.Validate(); err != nil {
		return domain.Settings{}, err
	}

	if err := s.repo.SaveSettings(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return domain.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	if s.scheduler != nil && updated.RefreshInterval != current.RefreshInterval {
		if err := s.scheduler.SetInterval(updated.RefreshInterval); err != nil {
			return domain.Settings{}, fmt.Errorf("failed to apply refresh interval: %w", err)
		}
	}

	s.LogInfo(ctx, "Settings updated",
		slog.Duration("refresh_interval", updated.RefreshInterval),
		slog.Bool("launch_at_login", updated.LaunchAtLogin))
	return updated, nil
}
