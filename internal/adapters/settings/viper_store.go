package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_bar/internal/core/ports/repositories"
	"github.com/spf13/viper"
)

const (
	keyCheckIntervalSeconds = "check_interval_seconds"
	keyLaunchAtLogin        = "launch_at_login"
)

// Store persists user settings as a flat key-value file. The format follows the file extension.
type Store struct {
	mu       sync.Mutex
	path     string
	defaults domain.Settings
}

// NewStore creates a store backed by path. Missing keys fall back to defaults.
func NewStore(path string, defaults domain.Settings) *Store {
	if defaults.RefreshInterval <= 0 {
		defaults.RefreshInterval = domain.DefaultRefreshInterval
	}
	return &Store{path: path, defaults: defaults}
}

var _ portsrepo.SettingsRepository = (*Store)(nil)

func (s *Store) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetDefault(keyCheckIntervalSeconds, int64(s.defaults.RefreshInterval/time.Second))
	v.SetDefault(keyLaunchAtLogin, s.defaults.LaunchAtLogin)
	return v
}

// LoadSettings reads the settings file. A missing file yields the defaults.
func (s *Store) LoadSettings(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.newViper()
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.defaults, nil
		}
		return domain.Settings{}, fmt.Errorf("failed to read settings %s: %w", s.path, err)
	}

	settings := domain.Settings{
		RefreshInterval: time.Duration(v.GetInt64(keyCheckIntervalSeconds)) * time.Second,
		LaunchAtLogin:   v.GetBool(keyLaunchAtLogin),
	}
	if err := settings.Validate(); err != nil {
		return s.defaults, nil
	}
	return settings, nil
}

// SaveSettings writes the settings file, creating its directory when needed.
func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	v := s.newViper()
	v.Set(keyCheckIntervalSeconds, int64(settings.RefreshInterval/time.Second))
	v.Set(keyLaunchAtLogin, settings.LaunchAtLogin)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", s.path, err)
	}
	return nil
}
