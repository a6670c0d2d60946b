package usecase

import (
	"context"
	"errors"
	"testing"

	"atelier_ops/internal/domain/entities"
	mock_interfaces "atelier_ops/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLegacyApprovalState(t *testing.T) {
	cases := map[string]struct {
		status   entities.ProductStatus
		approved bool
	}{
		"draft":            {entities.ProductStatusDraft, false},
		"Pending":          {entities.ProductStatusPendingApproval, false},
		"pending_approval": {entities.ProductStatusPendingApproval, false},
		" APPROVED ":       {entities.ProductStatusPublished, true},
		"live":             {entities.ProductStatusPublished, true},
		"rejected":         {entities.ProductStatusDraft, false},
		"inactive":         {entities.ProductStatusArchived, false},
	}
	for legacy, want := range cases {
		got, err := LegacyApprovalState(legacy)
		require.NoError(t, err, legacy)
		assert.Equal(t, want.status, got.Status(), legacy)
		assert.Equal(t, want.approved, got.IsApproved(), legacy)
	}

	_, err := LegacyApprovalState("sparkly")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestProductMigrationUseCase_Run(t *testing.T) {
	repo := newMemProductRepo()
	repo.addLegacy("p-1", "approved")
	repo.addLegacy("p-2", "pending")
	repo.addLegacy("p-3", "mystery")
	_, err := repo.Create(context.Background(), entities.Product{ID: "p-4", ArtisanID: artisanActor.ID, Approval: entities.DraftApprovalState()})
	require.NoError(t, err)
	uc := NewProductMigrationUseCase(repo, nil)
	ctx := context.Background()

	st, err := uc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, MigrationStatus{Total: 4, Migrated: 1, NeedsMigration: 3}, st)

	first, err := uc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, first.Total)
	assert.Equal(t, 2, first.Migrated)
	assert.Equal(t, 1, first.AlreadyMigrated)
	assert.Equal(t, 1, first.Failed)
	require.Len(t, first.Failures, 1)
	assert.Equal(t, "p-3", first.Failures[0].ID)
	assert.ErrorIs(t, first.Err(), ErrPartialBatchFailure)

	p1, _ := repo.GetByID(ctx, "p-1")
	assert.True(t, p1.Approval.Visible())

	second, err := uc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Migrated)
	assert.Equal(t, 3, second.AlreadyMigrated)

	for _, p := range repo.products {
		if p.Approval.IsApproved() {
			assert.NotEqual(t, entities.ProductStatusDraft, p.Approval.Status(), p.ID)
		}
	}
}

func TestProductMigrationUseCase_CleanRunLeavesNothingPending(t *testing.T) {
	repo := newMemProductRepo()
	repo.addLegacy("p-1", "approved")
	repo.addLegacy("p-2", "draft")
	repo.addLegacy("p-3", "archived")
	repo.addLegacy("p-4", "Pending")
	uc := NewProductMigrationUseCase(repo, nil)
	ctx := context.Background()

	rep, err := uc.Run(ctx)
	require.NoError(t, err)
	require.NoError(t, rep.Err())
	assert.Equal(t, 4, rep.Total)
	assert.Equal(t, 4, rep.Migrated)
	assert.Zero(t, rep.Failed)
	assert.Empty(t, rep.Failures)

	st, err := uc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, MigrationStatus{Total: 4, Migrated: 4, NeedsMigration: 0}, st)
}

func TestProductMigrationUseCase_RunRepositoryBehaviour(t *testing.T) {
	t.Run("scan failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		repo.EXPECT().ScanApprovalRecords(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := NewProductMigrationUseCase(repo, nil).Run(context.Background())
		assert.ErrorIs(t, err, ErrStorageFailure)
	})

	t.Run("concurrent migrator wins the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		repo.EXPECT().ScanApprovalRecords(gomock.Any()).Return([]entities.LegacyProductRecord{{ID: "p-1", Status: "draft"}}, nil)
		repo.EXPECT().MigrateApproval(gomock.Any(), "p-1", "draft", gomock.Any()).Return(false, nil)

		rep, err := NewProductMigrationUseCase(repo, nil).Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, rep.AlreadyMigrated)
		assert.NoError(t, rep.Err())
	})

	t.Run("write failure is recorded per record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		repo.EXPECT().ScanApprovalRecords(gomock.Any()).Return([]entities.LegacyProductRecord{
			{ID: "p-1", Status: "draft"},
			{ID: "p-2", Status: "live"},
		}, nil)
		repo.EXPECT().MigrateApproval(gomock.Any(), "p-1", "draft", gomock.Any()).Return(false, errors.New("throttled"))
		repo.EXPECT().MigrateApproval(gomock.Any(), "p-2", "live", gomock.Any()).Return(true, nil)

		rep, err := NewProductMigrationUseCase(repo, nil).Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, rep.Migrated)
		assert.Equal(t, 1, rep.Failed)
	})
}
