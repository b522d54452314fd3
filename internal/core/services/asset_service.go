package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/SscSPs/currency_bar/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_bar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/SscSPs/currency_bar/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// assetRefresher is the part of the refresh scheduler the asset service needs.
type assetRefresher interface {
	RefreshAssetAsync(assetID string)
	CancelAsset(assetID string)
}

// assetService implements the AssetSvcFacade interface
type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
	refresher assetRefresher
	events    portssvc.AssetEventPublisher
	maxInput  decimal.Decimal
	locale    language.Tag
	now       func() time.Time
}

// AssetServiceOption is a functional option for configuring the asset service
type AssetServiceOption func(*assetService)

// WithRefresher requests the first conversion of new assets and cancels conversions of deleted ones.
func WithRefresher(r assetRefresher) AssetServiceOption {
	return func(s *assetService) {
		s.refresher = r
	}
}

// WithAssetEvents publishes created and deleted events.
func WithAssetEvents(p portssvc.AssetEventPublisher) AssetServiceOption {
	return func(s *assetService) {
		s.events = p
	}
}

// WithMaxInputAmount bounds the origin amount of new assets.
func WithMaxInputAmount(limit decimal.Decimal) AssetServiceOption {
	return func(s *assetService) {
		if limit.IsPositive() {
			s.maxInput = limit
		}
	}
}

// WithInputLocale sets the locale used to interpret currency-code based requests.
func WithInputLocale(tag language.Tag) AssetServiceOption {
	return func(s *assetService) {
		s.locale = tag
	}
}

// WithAssetClock overrides the time source, mainly for tests.
func WithAssetClock(now func() time.Time) AssetServiceOption {
	return func(s *assetService) {
		s.now = now
	}
}

// WithAssetLogger sets the fallback logger.
func WithAssetLogger(logger *slog.Logger) AssetServiceOption {
	return func(s *assetService) {
		s.Logger = logger
	}
}

// NewAssetService creates a new asset service with the provided options
func NewAssetService(repo portsrepo.AssetRepositoryFacade, options ...AssetServiceOption) portssvc.AssetSvcFacade {
	svc := &assetService{
		assetRepo: repo,
		maxInput:  domain.DefaultMaxInputAmount,
		locale:    language.English,
		now:       time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure assetService implements the AssetSvcFacade interface
var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	origin, err := resolveCurrency(req.OriginCountry, req.OriginCurrency, s.locale)
	if err != nil {
		s.LogDebug(ctx, "Rejected origin currency", slog.String("error", err.Error()))
		return nil, fmt.Errorf("origin: %w", err)
	}
	target, err := resolveCurrency(req.TargetCountry, req.TargetCurrency, s.locale)
	if err != nil {
		s.LogDebug(ctx, "Rejected target currency", slog.String("error", err.Error()))
		return nil, fmt.Errorf("target: %w", err)
	}

	amount, err := s.originAmount(req, origin)
	if err != nil {
		s.LogDebug(ctx, "Rejected origin amount", slog.String("error", err.Error()))
		return nil, err
	}

	asset, err := domain.NewAsset(uuid.NewString(), origin, target, amount, req.ShowInMenubar, s.now().UTC())
	if err != nil {
		s.LogDebug(ctx, "Asset preconditions not met",
			slog.String("origin", origin.Code),
			slog.String("target", target.Code),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.assetRepo.SaveAsset(ctx, *asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset", slog.String("asset_id", asset.ID))
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.LogInfo(ctx, "Asset created",
		slog.String("asset_id", asset.ID),
		slog.String("origin", asset.OriginCurrencyCode),
		slog.String("target", asset.TargetCurrencyCode))

	if s.events != nil {
		snapshot := *asset
		s.events.Publish(domain.AssetEvent{Type: domain.AssetCreated, AssetID: asset.ID, Asset: &snapshot, At: asset.CreatedAt})
	}
	if s.refresher != nil {
		s.refresher.RefreshAssetAsync(asset.ID)
	}
	return asset, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset %s: %w", assetID, err)
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets")
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		return []domain.Asset{}, nil
	}
	return assets, nil
}

func (s *assetService) ListMenubarAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.ListAssets(ctx, domain.AssetFilter{MenubarOnly: true})
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID string) error {
	if s.refresher != nil {
		s.refresher.CancelAsset(assetID)
	}
	if err := s.assetRepo.DeleteAsset(ctx, assetID); err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	s.LogInfo(ctx, "Asset deleted", slog.String("asset_id", assetID))
	if s.events != nil {
		s.events.Publish(domain.AssetEvent{Type: domain.AssetDeleted, AssetID: assetID, At: s.now().UTC()})
	}
	return nil
}

// originAmount takes keypad input when present, otherwise the decimal amount.
func (s *assetService) originAmount(req dto.CreateAssetRequest, origin domain.Currency) (decimal.Decimal, error) {
	if req.OriginAmountInput != "" {
		locale := origin.Locale
		if locale == language.Und {
			locale = s.locale
		}
		return domain.ParseKeypadAmount(req.OriginAmountInput, origin, locale, s.maxInput)
	}
	if req.OriginAmount == nil {
		return decimal.Zero, apperrors.NewValidationError("origin amount is required")
	}
	if req.OriginAmount.GreaterThan(s.maxInput) {
		return decimal.Zero, apperrors.NewValidationError("amount exceeds maximum of " + s.maxInput.StringFixed(domain.MoneyScale))
	}
	return *req.OriginAmount, nil
}

// resolveCurrency prefers a country key and falls back to an ISO currency code.
func resolveCurrency(countryKey, currencyCode string, fallback language.Tag) (domain.Currency, error) {
	if countryKey != "" {
		country, ok := domain.FindCountry(countryKey)
		if !ok {
			return domain.Currency{}, apperrors.NewValidationError("unknown country '" + countryKey + "'")
		}
		return country.CurrencyUnit()
	}
	cur, err := domain.NewCurrency(currencyCode)
	if err != nil {
		return domain.Currency{}, err
	}
	return cur.WithLocale(fallback), nil
}
