package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// PricingComponents is the cost breakdown embedded in the record it prices.
//
// It is always replaced as a whole; CalculatedAt marks cache validity against
// AdminPricingSettings.UpdatedAt.
type PricingComponents struct {
	BaseCost           decimal.Decimal `json:"base_cost"`
	MarkedUpCost       decimal.Decimal `json:"marked_up_cost"`
	LaborCost          decimal.Decimal `json:"labor_cost"`
	MaterialsCost      decimal.Decimal `json:"materials_cost"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	LaborRate          decimal.Decimal `json:"labor_rate"`
	MaterialMarkup     decimal.Decimal `json:"material_markup"`
	BusinessMultiplier decimal.Decimal `json:"business_multiplier"`
	Formula            string          `json:"formula"`
	CalculatedAt       time.Time       `json:"calculated_at"`
}

// IsZero reports whether the components were never calculated.
func (p PricingComponents) IsZero() bool {
	return p.Formula == "" && p.CalculatedAt.IsZero()
}

// AdminPricingSettings is the admin-owned pricing configuration. Engines
// receive it by value and never mutate it.
type AdminPricingSettings struct {
	LaborRates         map[string]decimal.Decimal `json:"labor_rates"`
	MaterialMarkup     decimal.Decimal            `json:"material_markup"`
	BusinessMultiplier decimal.Decimal            `json:"business_multiplier"`
	UpdatedAt          time.Time                  `json:"updated_at"`
	UpdatedBy          string                     `json:"updated_by,omitempty"`
}

// Material is a raw material (metal, stone, findings) priced per unit.
type Material struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Unit     string            `json:"unit"`
	UnitCost decimal.Decimal   `json:"unit_cost"`
	Pricing  PricingComponents `json:"pricing"`
}

// Process is a bench process (casting, setting, engraving) priced by labor.
type Process struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	LaborHours        decimal.Decimal   `json:"labor_hours"`
	SkillLevel        string            `json:"skill_level"`
	BaseMaterialsCost decimal.Decimal   `json:"base_materials_cost"`
	Pricing           PricingComponents `json:"pricing"`
}

// CostableKind distinguishes the collections a recompute touches.
type CostableKind string

const (
	CostableMaterial CostableKind = "material"
	CostableProcess  CostableKind = "process"
)

// ErrMalformedRecord marks a stored material or process whose cost inputs
// cannot be decoded.
var ErrMalformedRecord = errors.New("malformed costable record")

// MalformedCostable is a stored record skipped while listing. It is reported
// per record and never repriced.
type MalformedCostable struct {
	Kind CostableKind
	ID   string
	Err  error
}
