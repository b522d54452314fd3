package pgsql

import (
	portsrepo "github.com/SscSPs/currency_bar/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres asset store with the given settings store.
func NewRepositoryProvider(dbPool *pgxpool.Pool, settingsRepo portsrepo.SettingsRepository) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetRepo:    newPgxAssetRepository(dbPool),
		SettingsRepo: settingsRepo,
	}
}
