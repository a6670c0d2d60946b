package interfaces

import (
	"context"

	"atelier_ops/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// The product service must be able to:
//   - move the (status, is_approved) pair conditionally on its current value
//   - scan the raw approval attributes of every product for the migrator
//   - rewrite a legacy record only while is_approved is still absent
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	UpdateApproval(ctx context.Context, id string, expected, next entities.ApprovalState, stamp entities.ApprovalStamp) (entities.Product, error)
	ScanApprovalRecords(ctx context.Context) ([]entities.LegacyProductRecord, error)
	MigrateApproval(ctx context.Context, id string, legacyStatus string, next entities.ApprovalState) (bool, error)
}
