package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/domain/pricing"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultRecomputeParallelism = 8

// IPricingUseCase exposes admin pricing settings and cost recomputation.
//
// A settings change invalidates every stored breakdown; UpdateSettings saves
// the new settings and immediately reprices all materials and processes.
type IPricingUseCase interface {
	GetSettings(ctx context.Context) (entities.AdminPricingSettings, error)
	UpdateSettings(ctx context.Context, s entities.AdminPricingSettings, actor entities.Actor) (entities.AdminPricingSettings, BatchResult, error)
	BulkRecompute(ctx context.Context) (BatchResult, error)
	RecomputeSnapshot(ctx context.Context, snap pricing.Snapshot, s entities.AdminPricingSettings) BatchResult
	QuoteMaterial(ctx context.Context, materialID string, quantity decimal.Decimal) (entities.PricingComponents, error)
	Status(ctx context.Context) (PricingStatus, error)
}

// BatchResult aggregates a recompute run. Failed records keep their previous
// pricing; every other record carries the new formula.
type BatchResult struct {
	Total    int                     `json:"total"`
	Updated  int                     `json:"updated"`
	Failed   int                     `json:"failed"`
	Failures []pricing.RecordFailure `json:"failures,omitempty"`
}

// Err reports ErrPartialBatchFailure when at least one record failed.
func (r BatchResult) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d records failed", ErrPartialBatchFailure, r.Failed, r.Total)
}

// PricingStatus counts stored breakdowns older than the current settings.
// Malformed records cannot be priced until their cost inputs are fixed.
type PricingStatus struct {
	Total     int `json:"total"`
	Stale     int `json:"stale"`
	Malformed int `json:"malformed"`
}

type PricingUseCase struct {
	costables   interfaces.ICostableRepository
	settings    interfaces.IPricingSettingsRepository
	engine      *pricing.Engine
	log         *zap.Logger
	now         func() time.Time
	parallelism int
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(costables interfaces.ICostableRepository, settings interfaces.IPricingSettingsRepository, engine *pricing.Engine, log *zap.Logger) *PricingUseCase {
	if engine == nil {
		engine = pricing.NewEngine(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PricingUseCase{
		costables:   costables,
		settings:    settings,
		engine:      engine,
		log:         log,
		now:         time.Now,
		parallelism: defaultRecomputeParallelism,
	}
}

// SetParallelism bounds the number of concurrent record writes.
func (u *PricingUseCase) SetParallelism(n int) {
	if n > 0 {
		u.parallelism = n
	}
}

func (u *PricingUseCase) GetSettings(ctx context.Context) (entities.AdminPricingSettings, error) {
	s, ok, err := u.settings.Get(ctx)
	if err != nil {
		return entities.AdminPricingSettings{}, storageErr("get pricing settings", err)
	}
	if !ok {
		return entities.AdminPricingSettings{}, ErrSettingsNotFound
	}
	return s, nil
}

func (u *PricingUseCase) UpdateSettings(ctx context.Context, s entities.AdminPricingSettings, actor entities.Actor) (entities.AdminPricingSettings, BatchResult, error) {
	if !actor.IsAdmin() {
		return entities.AdminPricingSettings{}, BatchResult{}, ErrForbidden
	}
	normalized := make(map[string]decimal.Decimal, len(s.LaborRates))
	for skill, rate := range s.LaborRates {
		normalized[strings.TrimSpace(skill)] = rate
	}
	s.LaborRates = normalized
	if err := pricing.ValidateSettings(s); err != nil {
		return entities.AdminPricingSettings{}, BatchResult{}, err
	}

	s.UpdatedAt = u.now().UTC()
	s.UpdatedBy = actor.ID
	if err := u.settings.Put(ctx, s); err != nil {
		return entities.AdminPricingSettings{}, BatchResult{}, storageErr("put pricing settings", err)
	}
	u.log.Info("pricing settings updated",
		zap.String("actor", actor.ID),
		zap.String("material_markup", s.MaterialMarkup.String()),
		zap.String("business_multiplier", s.BusinessMultiplier.String()),
		zap.Int("labor_rates", len(s.LaborRates)),
	)

	snap, err := u.snapshot(ctx)
	if err != nil {
		u.log.Warn("pricing settings saved but recompute could not read records", zap.String("actor", actor.ID), zap.Error(err))
		return s, BatchResult{}, fmt.Errorf("%w: %w", ErrSettingsSavedNotRepriced, err)
	}
	return s, u.RecomputeSnapshot(ctx, snap, s), nil
}

func (u *PricingUseCase) BulkRecompute(ctx context.Context) (BatchResult, error) {
	s, err := u.GetSettings(ctx)
	if err != nil {
		return BatchResult{}, err
	}
	snap, err := u.snapshot(ctx)
	if err != nil {
		return BatchResult{}, err
	}
	return u.RecomputeSnapshot(ctx, snap, s), nil
}

// RecomputeSnapshot prices snap and replaces each record's pricing. Records
// are independent single-document writes; one failure never stops the rest.
func (u *PricingUseCase) RecomputeSnapshot(ctx context.Context, snap pricing.Snapshot, s entities.AdminPricingSettings) BatchResult {
	plan := u.engine.Recompute(snap, s)

	agg := &batchAggregator{total: snap.Len()}
	for _, f := range plan.Failures {
		agg.fail(f.Kind, f.ID, f.Err)
	}

	var g errgroup.Group
	g.SetLimit(u.parallelism)
	for _, rec := range plan.Records {
		g.Go(func() error {
			ok, err := u.costables.ReplacePricing(ctx, rec.Kind, rec.ID, rec.Pricing)
			switch {
			case err != nil:
				agg.fail(rec.Kind, rec.ID, storageErr("replace pricing", err))
			case !ok:
				agg.fail(rec.Kind, rec.ID, fmt.Errorf("%s %s no longer exists", rec.Kind, rec.ID))
			default:
				agg.ok()
			}
			return nil
		})
	}
	_ = g.Wait()

	res := agg.result()
	fields := []zap.Field{
		zap.Int("total", res.Total),
		zap.Int("updated", res.Updated),
		zap.Int("failed", res.Failed),
	}
	if res.Failed > 0 {
		u.log.Warn("pricing recompute finished with failures", fields...)
		for _, f := range res.Failures {
			u.log.Warn("pricing recompute record failed", zap.String("kind", string(f.Kind)), zap.String("id", f.ID), zap.Error(f.Err))
		}
	} else {
		u.log.Info("pricing recompute finished", fields...)
	}
	return res
}

func (u *PricingUseCase) QuoteMaterial(ctx context.Context, materialID string, quantity decimal.Decimal) (entities.PricingComponents, error) {
	materialID = strings.TrimSpace(materialID)
	if materialID == "" {
		return entities.PricingComponents{}, invalidInput("material id is required")
	}
	s, err := u.GetSettings(ctx)
	if err != nil {
		return entities.PricingComponents{}, err
	}
	m, err := u.costables.GetMaterial(ctx, materialID)
	if errors.Is(err, entities.ErrMalformedRecord) {
		return entities.PricingComponents{}, fmt.Errorf("%w: material %s: %w", ErrInvalidState, materialID, err)
	}
	if err != nil {
		return entities.PricingComponents{}, storageErr("get material", err)
	}
	if m.ID == "" {
		return entities.PricingComponents{}, ErrMaterialNotFound
	}
	p, err := u.engine.PriceMaterial(m, quantity, s)
	if err != nil {
		return entities.PricingComponents{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return p, nil
}

func (u *PricingUseCase) Status(ctx context.Context) (PricingStatus, error) {
	s, err := u.GetSettings(ctx)
	if err != nil {
		return PricingStatus{}, err
	}
	snap, err := u.snapshot(ctx)
	if err != nil {
		return PricingStatus{}, err
	}
	st := PricingStatus{Total: snap.Len(), Malformed: len(snap.Malformed)}
	for _, m := range snap.Materials {
		if pricing.IsStale(m.Pricing, s) {
			st.Stale++
		}
	}
	for _, p := range snap.Processes {
		if pricing.IsStale(p.Pricing, s) {
			st.Stale++
		}
	}
	return st, nil
}

func (u *PricingUseCase) snapshot(ctx context.Context) (pricing.Snapshot, error) {
	materials, badMaterials, err := u.costables.ListMaterials(ctx)
	if err != nil {
		return pricing.Snapshot{}, storageErr("list materials", err)
	}
	processes, badProcesses, err := u.costables.ListProcesses(ctx)
	if err != nil {
		return pricing.Snapshot{}, storageErr("list processes", err)
	}
	snap := pricing.Snapshot{Materials: materials, Processes: processes}
	for _, m := range append(badMaterials, badProcesses...) {
		snap.Malformed = append(snap.Malformed, pricing.RecordFailure{Kind: m.Kind, ID: m.ID, Err: m.Err})
	}
	return snap, nil
}

type batchAggregator struct {
	mu       sync.Mutex
	total    int
	updated  int
	failures []pricing.RecordFailure
}

func (a *batchAggregator) ok() {
	a.mu.Lock()
	a.updated++
	a.mu.Unlock()
}

func (a *batchAggregator) fail(kind entities.CostableKind, id string, err error) {
	a.mu.Lock()
	a.failures = append(a.failures, pricing.RecordFailure{Kind: kind, ID: id, Err: err})
	a.mu.Unlock()
}

func (a *batchAggregator) result() BatchResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	failures := slices.Clone(a.failures)
	slices.SortFunc(failures, func(x, y pricing.RecordFailure) int {
		if c := strings.Compare(string(x.Kind), string(y.Kind)); c != 0 {
			return c
		}
		return strings.Compare(x.ID, y.ID)
	})
	return BatchResult{
		Total:    a.total,
		Updated:  a.updated,
		Failed:   len(failures),
		Failures: failures,
	}
}
