package usecase

import (
	"context"
	"fmt"
	"strings"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IProductMigrationUseCase converts products stored under the single-field
// status model into the decoupled (status, isApproved) pair.
type IProductMigrationUseCase interface {
	Status(ctx context.Context) (MigrationStatus, error)
	Run(ctx context.Context) (MigrationReport, error)
}

type MigrationStatus struct {
	Total          int `json:"total"`
	Migrated       int `json:"migrated"`
	NeedsMigration int `json:"needs_migration"`
}

type MigrationFailure struct {
	ID           string `json:"id"`
	LegacyStatus string `json:"legacy_status"`
	Reason       string `json:"reason"`
}

// MigrationReport summarizes one run. Records that already carry an approval
// flag are counted as AlreadyMigrated and left untouched, so running twice is
// safe.
type MigrationReport struct {
	Total           int                `json:"total"`
	Migrated        int                `json:"migrated"`
	AlreadyMigrated int                `json:"already_migrated"`
	Failed          int                `json:"failed"`
	Failures        []MigrationFailure `json:"failures,omitempty"`
}

func (r MigrationReport) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d products failed to migrate", ErrPartialBatchFailure, r.Failed, r.Total)
}

var legacyApproval = map[string]struct {
	status   entities.ProductStatus
	approved bool
}{
	"draft":            {entities.ProductStatusDraft, false},
	"pending":          {entities.ProductStatusPendingApproval, false},
	"pending-approval": {entities.ProductStatusPendingApproval, false},
	"pending_approval": {entities.ProductStatusPendingApproval, false},
	"submitted":        {entities.ProductStatusPendingApproval, false},
	"approved":         {entities.ProductStatusPublished, true},
	"published":        {entities.ProductStatusPublished, true},
	"active":           {entities.ProductStatusPublished, true},
	"live":             {entities.ProductStatusPublished, true},
	"rejected":         {entities.ProductStatusDraft, false},
	"declined":         {entities.ProductStatusDraft, false},
	"archived":         {entities.ProductStatusArchived, false},
	"inactive":         {entities.ProductStatusArchived, false},
	"unpublished":      {entities.ProductStatusArchived, false},
}

// LegacyApprovalState maps a single-field legacy status onto the decoupled
// pair. Unknown values are reported instead of guessed.
func LegacyApprovalState(legacy string) (entities.ApprovalState, error) {
	m, ok := legacyApproval[strings.ToLower(strings.TrimSpace(legacy))]
	if !ok {
		return entities.ApprovalState{}, fmt.Errorf("%w: unmapped legacy status %q", ErrInvalidState, legacy)
	}
	return entities.NewApprovalState(m.status, m.approved)
}

type ProductMigrationUseCase struct {
	repo interfaces.IProductRepository
	log  *zap.Logger
}

var _ IProductMigrationUseCase = (*ProductMigrationUseCase)(nil)

func NewProductMigrationUseCase(repo interfaces.IProductRepository, log *zap.Logger) *ProductMigrationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductMigrationUseCase{repo: repo, log: log}
}

func (u *ProductMigrationUseCase) Status(ctx context.Context) (MigrationStatus, error) {
	records, err := u.repo.ScanApprovalRecords(ctx)
	if err != nil {
		return MigrationStatus{}, storageErr("scan products", err)
	}
	st := MigrationStatus{Total: len(records)}
	for _, r := range records {
		if r.NeedsMigration() {
			st.NeedsMigration++
		} else {
			st.Migrated++
		}
	}
	return st, nil
}

func (u *ProductMigrationUseCase) Run(ctx context.Context) (MigrationReport, error) {
	records, err := u.repo.ScanApprovalRecords(ctx)
	if err != nil {
		return MigrationReport{}, storageErr("scan products", err)
	}

	rep := MigrationReport{Total: len(records)}
	for _, r := range records {
		if !r.NeedsMigration() {
			rep.AlreadyMigrated++
			continue
		}
		next, err := LegacyApprovalState(r.Status)
		if err != nil {
			rep.fail(r, err)
			continue
		}
		migrated, err := u.repo.MigrateApproval(ctx, r.ID, r.Status, next)
		if err != nil {
			rep.fail(r, storageErr("migrate product", err))
			continue
		}
		if !migrated {
			rep.AlreadyMigrated++
			continue
		}
		rep.Migrated++
		u.log.Debug("product migrated", zap.String("product_id", r.ID), zap.String("legacy_status", r.Status), zap.String("state", next.String()))
	}

	fields := []zap.Field{
		zap.Int("total", rep.Total),
		zap.Int("migrated", rep.Migrated),
		zap.Int("already_migrated", rep.AlreadyMigrated),
		zap.Int("failed", rep.Failed),
	}
	if rep.Failed > 0 {
		u.log.Warn("product migration finished with failures", fields...)
	} else {
		u.log.Info("product migration finished", fields...)
	}
	return rep, nil
}

func (r *MigrationReport) fail(rec entities.LegacyProductRecord, err error) {
	r.Failed++
	r.Failures = append(r.Failures, MigrationFailure{ID: rec.ID, LegacyStatus: rec.Status, Reason: err.Error()})
}
