package interfaces

import (
	"context"

	"atelier_ops/internal/domain/entities"
)

// ICostableRepository persists the embedded pricing of materials and processes.
//
// The List methods decode each record on its own; records that cannot be
// decoded come back as MalformedCostable instead of failing the listing.
// ReplacePricing overwrites the whole pricing attribute of one record; it
// reports false when the record no longer exists.
type ICostableRepository interface {
	ListMaterials(ctx context.Context) ([]entities.Material, []entities.MalformedCostable, error)
	ListProcesses(ctx context.Context) ([]entities.Process, []entities.MalformedCostable, error)
	GetMaterial(ctx context.Context, id string) (entities.Material, error)
	ReplacePricing(ctx context.Context, kind entities.CostableKind, id string, p entities.PricingComponents) (bool, error)
}

// IPricingSettingsRepository stores the single admin pricing settings document.
type IPricingSettingsRepository interface {
	Get(ctx context.Context) (entities.AdminPricingSettings, bool, error)
	Put(ctx context.Context, s entities.AdminPricingSettings) error
}
