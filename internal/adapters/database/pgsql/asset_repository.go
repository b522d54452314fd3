package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/SscSPs/currency_bar/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_bar/internal/core/ports/repositories"
	"github.com/SscSPs/currency_bar/internal/models"
	"github.com/SscSPs/currency_bar/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const assetColumns = `asset_id, origin_currency_code, target_currency_code, origin_amount, target_amount,
	previous_target_amount, trend, show_in_menubar, last_converted_at, created_at, last_update`

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) *PgxAssetRepository {
	return &PgxAssetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func scanAsset(row pgx.Row) (models.Asset, error) {
	var m models.Asset
	err := row.Scan(
		&m.AssetID,
		&m.OriginCurrencyCode,
		&m.TargetCurrencyCode,
		&m.OriginAmount,
		&m.TargetAmount,
		&m.PreviousTargetAmount,
		&m.Trend,
		&m.ShowInMenubar,
		&m.LastConvertedAt,
		&m.CreatedAt,
		&m.LastUpdate,
	)
	return m, err
}

// SaveAsset inserts a new asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AssetID,
		m.OriginCurrencyCode,
		m.TargetCurrencyCode,
		m.OriginAmount,
		m.TargetAmount,
		m.PreviousTargetAmount,
		m.Trend,
		m.ShowInMenubar,
		m.LastConvertedAt,
		m.CreatedAt,
		m.LastUpdate,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: asset %s already exists", apperrors.ErrDuplicate, m.AssetID)
		}
		return fmt.Errorf("failed to save asset %s: %w", m.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves a single asset.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`
	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: asset %s", apperrors.ErrNotFound, assetID)
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	a := mapping.ToDomainAsset(m)
	return &a, nil
}

// ListAssets returns assets ordered by last update, then ID, honouring the filter's cursor and limit.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error) {
	var (
		sb   strings.Builder
		args []any
		cond []string
	)
	sb.WriteString(`SELECT ` + assetColumns + ` FROM assets`)

	if filter.MenubarOnly {
		cond = append(cond, "show_in_menubar")
	}
	if filter.HasCursor() {
		args = append(args, filter.AfterLastUpdate, filter.AfterID)
		cond = append(cond, fmt.Sprintf("(last_update, asset_id) > ($%d, $%d)", len(args)-1, len(args)))
	}
	if len(cond) > 0 {
		sb.WriteString(" WHERE " + strings.Join(cond, " AND "))
	}
	sb.WriteString(" ORDER BY last_update, asset_id")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	modelAssets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Asset, error) {
		return scanAsset(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan assets: %w", err)
	}
	return mapping.ToDomainAssetSlice(modelAssets), nil
}

// UpdateAsset locks the row, applies mutate and writes the result in one transaction.
func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, assetID string, mutate func(*domain.Asset) error) (*domain.Asset, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1 FOR UPDATE;`
	m, err := scanAsset(tx.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: asset %s", apperrors.ErrNotFound, assetID)
		}
		return nil, fmt.Errorf("failed to lock asset %s: %w", assetID, err)
	}

	current := mapping.ToDomainAsset(m)
	if err := mutate(&current); err != nil {
		return nil, err
	}
	current.ID = assetID
	m = mapping.ToModelAsset(current)

	update := `
		UPDATE assets SET
			target_amount = $2,
			previous_target_amount = $3,
			trend = $4,
			show_in_menubar = $5,
			last_converted_at = $6,
			last_update = $7
		WHERE asset_id = $1;
	`
	if _, err := tx.Exec(ctx, update,
		m.AssetID,
		m.TargetAmount,
		m.PreviousTargetAmount,
		m.Trend,
		m.ShowInMenubar,
		m.LastConvertedAt,
		m.LastUpdate,
	); err != nil {
		return nil, fmt.Errorf("failed to update asset %s: %w", assetID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &current, nil
}

// DeleteAsset removes an asset.
func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: asset %s", apperrors.ErrNotFound, assetID)
	}
	return nil
}
