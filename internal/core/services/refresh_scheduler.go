package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/SscSPs/currency_bar/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_bar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// DefaultRefreshConcurrency bounds the number of conversions in flight during one tick.
const DefaultRefreshConcurrency = 4

// errSuperseded marks a conversion whose result was replaced by a newer request for the same asset.
var errSuperseded = errors.New("conversion superseded by a newer request")

// inflightConversion tracks the single live conversion request of an asset.
type inflightConversion struct {
	seq    uint64
	cancel context.CancelFunc
}

// RefreshScheduler periodically converts every tracked asset and records the new
// target amount and trend. Each asset has at most one live conversion; a newer
// request cancels the older one and the older response is discarded.
type RefreshScheduler struct {
	BaseService
	repo           portsrepo.AssetRepositoryFacade
	converter      portssvc.RateConverter
	reachability   portssvc.ReachabilityChecker
	events         portssvc.AssetEventPublisher
	concurrency    int
	convertTimeout time.Duration
	refreshOnStart bool
	now            func() time.Time

	mu       sync.Mutex
	interval time.Duration
	cron     *cron.Cron
	job      cron.Job
	entryID  cron.EntryID
	running  bool
	baseCtx  context.Context
	cancel   context.CancelFunc
	inflight map[string]inflightConversion
	seq      uint64

	wg        sync.WaitGroup
	connected atomic.Bool
}

// SchedulerOption is a functional option for configuring the refresh scheduler
type SchedulerOption func(*RefreshScheduler)

// WithConcurrency bounds the number of parallel conversions per tick.
func WithConcurrency(n int) SchedulerOption {
	return func(s *RefreshScheduler) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithConvertTimeout limits how long a single conversion may take.
func WithConvertTimeout(d time.Duration) SchedulerOption {
	return func(s *RefreshScheduler) {
		s.convertTimeout = d
	}
}

// WithRefreshOnStart runs one tick immediately when the scheduler starts.
func WithRefreshOnStart(enabled bool) SchedulerOption {
	return func(s *RefreshScheduler) {
		s.refreshOnStart = enabled
	}
}

// WithSchedulerClock overrides the time source, mainly for tests.
func WithSchedulerClock(now func() time.Time) SchedulerOption {
	return func(s *RefreshScheduler) {
		s.now = now
	}
}

// NewRefreshScheduler creates a stopped scheduler. A non-positive interval selects
// domain.DefaultRefreshInterval. events and logger may be nil.
func NewRefreshScheduler(
	repo portsrepo.AssetRepositoryFacade,
	converter portssvc.RateConverter,
	reachability portssvc.ReachabilityChecker,
	interval time.Duration,
	events portssvc.AssetEventPublisher,
	logger *slog.Logger,
	options ...SchedulerOption,
) *RefreshScheduler {
	if interval <= 0 {
		interval = domain.DefaultRefreshInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	baseCtx, cancel := context.WithCancel(context.Background())
	s := &RefreshScheduler{
		BaseService:    BaseService{Logger: logger.With(slog.String("component", "refresh_scheduler"))},
		repo:           repo,
		converter:      converter,
		reachability:   reachability,
		events:         events,
		concurrency:    DefaultRefreshConcurrency,
		refreshOnStart: true,
		now:            time.Now,
		interval:       interval,
		baseCtx:        baseCtx,
		cancel:         cancel,
		inflight:       make(map[string]inflightConversion),
	}
	s.connected.Store(true)

	for _, option := range options {
		option(s)
	}

	// The chain is applied once so that rescheduling keeps the same skip-if-running guard.
	cl := cronLogger{logger: s.Logger}
	s.job = cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)).Then(cron.FuncJob(s.tick))
	return s
}

var _ portssvc.RefreshSvc = (*RefreshScheduler)(nil)

// Start schedules the periodic refresh. ctx bounds the lifetime of every conversion
// started by the scheduler. Calling Start on a running scheduler is a no-op.
func (s *RefreshScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	s.baseCtx, s.cancel = context.WithCancel(ctx)
	s.cron = cron.New(cron.WithLogger(cronLogger{logger: s.Logger}))
	s.entryID = s.cron.Schedule(cron.Every(s.interval), s.job)
	s.cron.Start()
	s.running = true

	s.LogInfo(s.baseCtx, "Refresh scheduler started", slog.Duration("interval", s.interval))

	if s.refreshOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.job.Run()
		}()
	}
	return nil
}

// Stop halts scheduling, cancels in-flight conversions and waits for running work to finish.
func (s *RefreshScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cronCtx := s.cron.Stop()
	s.cancel()
	for id, req := range s.inflight {
		req.cancel()
		delete(s.inflight, id)
	}
	s.running = false
	s.mu.Unlock()

	<-cronCtx.Done()
	s.wg.Wait()
	s.LogInfo(context.Background(), "Refresh scheduler stopped")
}

// SetInterval changes the refresh interval and reschedules a running job.
// Sub-second intervals are rounded up to one second by the cron schedule.
func (s *RefreshScheduler) SetInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: refresh interval must be positive", apperrors.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if d == s.interval {
		return nil
	}
	s.interval = d
	if s.running {
		s.cron.Remove(s.entryID)
		s.entryID = s.cron.Schedule(cron.Every(d), s.job)
	}
	s.LogInfo(s.baseCtx, "Refresh interval changed", slog.Duration("interval", d))
	return nil
}

// Interval returns the current refresh interval.
func (s *RefreshScheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Connected reports whether the most recent reachability probe succeeded.
func (s *RefreshScheduler) Connected() bool {
	return s.connected.Load()
}

func (s *RefreshScheduler) tick() {
	ctx := s.backgroundCtx()
	report, err := s.RefreshAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Scheduled refresh failed")
		return
	}
	s.LogDebug(ctx, "Scheduled refresh finished",
		slog.Bool("skipped", report.Skipped),
		slog.Int("attempted", report.Attempted),
		slog.Int("updated", report.Updated),
		slog.Int("failed", report.Failed))
}

// RefreshAll runs one tick: probe reachability, then convert every asset concurrently.
// When the network is unreachable nothing is converted and the report is marked skipped.
func (s *RefreshScheduler) RefreshAll(ctx context.Context) (domain.RefreshReport, error) {
	var report domain.RefreshReport

	if !s.reachability.IsReachable(ctx) {
		s.connected.Store(false)
		s.LogWarn(ctx, "Network unreachable, skipping refresh tick")
		report.Skipped = true
		return report, nil
	}
	s.connected.Store(true)

	assets, err := s.repo.ListAssets(ctx, domain.AssetFilter{})
	if err != nil {
		return report, fmt.Errorf("failed to list assets for refresh: %w", err)
	}
	report.Attempted = len(assets)

	var updated, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, asset := range assets {
		g.Go(func() error {
			ok, err := s.refreshAsset(ctx, asset)
			switch {
			case err != nil:
				failed.Add(1)
			case ok:
				updated.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Updated = int(updated.Load())
	report.Failed = int(failed.Load())
	return report, nil
}

// RefreshAssetAsync converts one asset in the background, superseding any
// conversion of the same asset already in flight.
func (s *RefreshScheduler) RefreshAssetAsync(assetID string) {
	ctx := s.backgroundCtx()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		asset, err := s.repo.FindAssetByID(ctx, assetID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogDebug(ctx, "Asset vanished before conversion", slog.String("asset_id", assetID))
				return
			}
			s.LogError(ctx, err, "Failed to load asset for conversion", slog.String("asset_id", assetID))
			return
		}
		_, _ = s.refreshAsset(ctx, *asset)
	}()
}

// CancelAsset drops any conversion in flight for the asset; its response will be discarded.
func (s *RefreshScheduler) CancelAsset(assetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req, ok := s.inflight[assetID]; ok {
		req.cancel()
		delete(s.inflight, assetID)
	}
}

// refreshAsset converts a single asset and applies the result atomically.
// It reports whether the asset was updated. Superseded and deleted-in-flight
// conversions return (false, nil).
func (s *RefreshScheduler) refreshAsset(parent context.Context, asset domain.Asset) (bool, error) {
	logger := s.GetLogger(parent).With(slog.String("asset_id", asset.ID))

	convCtx, seq, done := s.begin(parent, asset.ID)
	defer done()

	converted, err := s.converter.Convert(convCtx, asset.OriginCurrencyCode, asset.TargetCurrencyCode, asset.OriginAmount)
	if err != nil {
		if !s.isCurrent(asset.ID, seq) {
			logger.Debug("Conversion cancelled", slog.String("error", err.Error()))
			return false, nil
		}
		logger.Warn("Conversion failed, keeping previous amount",
			slog.String("from", asset.OriginCurrencyCode),
			slog.String("to", asset.TargetCurrencyCode),
			slog.String("error", err.Error()))
		return false, err
	}

	at := s.now()
	updated, err := s.repo.UpdateAsset(parent, asset.ID, func(a *domain.Asset) error {
		if !s.isCurrent(asset.ID, seq) {
			return errSuperseded
		}
		a.ApplyConversion(converted, at)
		return nil
	})
	switch {
	case errors.Is(err, errSuperseded):
		logger.Debug("Discarding superseded conversion")
		return false, nil
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Debug("Asset deleted while conversion was in flight")
		return false, nil
	case err != nil:
		logger.Error("Failed to persist converted amount", slog.String("error", err.Error()))
		return false, err
	}

	if s.events != nil {
		snapshot := *updated
		s.events.Publish(domain.AssetEvent{Type: domain.AssetUpdated, AssetID: asset.ID, Asset: &snapshot, At: at})
	}
	logger.Debug("Asset refreshed",
		slog.String("target_amount", updated.TargetAmount.String()),
		slog.String("trend", string(updated.Trend)))
	return true, nil
}

// begin registers a new in-flight conversion for assetID, cancelling any older one.
// The returned func releases the registration if it is still the current one.
func (s *RefreshScheduler) begin(parent context.Context, assetID string) (context.Context, uint64, func()) {
	var ctx context.Context
	var cancel context.CancelFunc
	if s.convertTimeout > 0 {
		ctx, cancel = context.WithTimeout(parent, s.convertTimeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}

	s.mu.Lock()
	if prev, ok := s.inflight[assetID]; ok {
		prev.cancel()
	}
	s.seq++
	seq := s.seq
	s.inflight[assetID] = inflightConversion{seq: seq, cancel: cancel}
	s.mu.Unlock()

	return ctx, seq, func() {
		cancel()
		s.mu.Lock()
		if cur, ok := s.inflight[assetID]; ok && cur.seq == seq {
			delete(s.inflight, assetID)
		}
		s.mu.Unlock()
	}
}

func (s *RefreshScheduler) isCurrent(assetID string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.inflight[assetID]
	return ok && cur.seq == seq
}

func (s *RefreshScheduler) backgroundCtx() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseCtx
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	args := make([]any, 0, len(keysAndValues)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keysAndValues...)
	l.logger.Error(msg, args...)
}
