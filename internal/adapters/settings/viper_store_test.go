package settings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/SscSPs/currency_bar/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"), domain.DefaultSettings())

	got, err := store.LoadSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	store := NewStore(path, domain.DefaultSettings())
	want := domain.Settings{RefreshInterval: 3 * time.Hour, LaunchAtLogin: true}

	require.NoError(t, store.SaveSettings(context.Background(), want))
	_, err := os.Stat(path)
	require.NoError(t, err)

	reopened := NewStore(path, domain.DefaultSettings())
	got, err := reopened.LoadSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettings_PartialFileUsesDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"launch_at_login": true}`), 0o600))

	got, err := NewStore(path, domain.DefaultSettings()).LoadSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRefreshInterval, got.RefreshInterval)
	assert.True(t, got.LaunchAtLogin)
}

func TestLoadSettings_NonPositiveIntervalFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"check_interval_seconds": 0, "launch_at_login": true}`), 0o600))

	got, err := NewStore(path, domain.DefaultSettings()).LoadSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestLoadSettings_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := NewStore(path, domain.DefaultSettings()).LoadSettings(context.Background())
	assert.Error(t, err)
}

func TestSaveSettings_RejectsInvalid(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"), domain.DefaultSettings())

	err := store.SaveSettings(context.Background(), domain.Settings{})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
