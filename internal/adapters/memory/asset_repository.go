package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/SscSPs/currency_bar/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_bar/internal/core/ports/repositories"
)

// AssetRepository keeps assets in process memory. It is used when no database is configured.
type AssetRepository struct {
	mu     sync.RWMutex
	assets map[string]domain.Asset
}

// NewAssetRepository creates an empty in-memory asset store.
func NewAssetRepository() *AssetRepository {
	return &AssetRepository{assets: make(map[string]domain.Asset)}
}

var _ portsrepo.AssetRepositoryFacade = (*AssetRepository)(nil)

func (r *AssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assets[asset.ID]; exists {
		return fmt.Errorf("%w: asset %s already exists", apperrors.ErrDuplicate, asset.ID)
	}
	r.assets[asset.ID] = asset
	return nil
}

func (r *AssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	asset, ok := r.assets[assetID]
	if !ok {
		return nil, apperrors.NewNotFoundError("asset " + assetID)
	}
	return &asset, nil
}

func (r *AssetRepository) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]domain.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		if filter.MenubarOnly && !a.ShowInMenubar {
			continue
		}
		if !filter.After(a) {
			continue
		}
		out = append(out, a)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].LastUpdate.Equal(out[j].LastUpdate) {
			return out[i].ID < out[j].ID
		}
		return out[i].LastUpdate.Before(out[j].LastUpdate)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// UpdateAsset applies mutate to a copy of the stored asset while holding the write lock.
func (r *AssetRepository) UpdateAsset(ctx context.Context, assetID string, mutate func(*domain.Asset) error) (*domain.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.assets[assetID]
	if !ok {
		return nil, apperrors.NewNotFoundError("asset " + assetID)
	}
	if err := mutate(&current); err != nil {
		return nil, err
	}
	current.ID = assetID
	r.assets[assetID] = current

	updated := current
	return &updated, nil
}

func (r *AssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[assetID]; !ok {
		return apperrors.NewNotFoundError("asset " + assetID)
	}
	delete(r.assets, assetID)
	return nil
}
