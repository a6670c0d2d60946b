// Package pricing computes cost breakdowns for materials and bench processes.
//
// Everything here is pure: settings are passed in by value and time comes from
// the injected clock, so identical inputs always give identical components
// apart from CalculatedAt.
package pricing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier_ops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Formula identifiers are stored with every PricingComponents value. Bump
// them whenever the arithmetic below changes.
const (
	FormulaMaterialV1 = "material-v1"
	FormulaProcessV1  = "process-v1"
)

var (
	ErrUnknownSkillLevel = errors.New("unknown skill level")
	ErrMissingRate       = errors.New("missing pricing rate")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidCostInput  = errors.New("invalid cost input")
)

type Clock func() time.Time

type Engine struct {
	now Clock
}

func NewEngine(now Clock) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// PriceMaterial prices quantity units of m:
//
//	baseCost     = unitCost × quantity
//	markedUpCost = baseCost × materialMarkup
func (e *Engine) PriceMaterial(m entities.Material, quantity decimal.Decimal, s entities.AdminPricingSettings) (entities.PricingComponents, error) {
	return priceMaterial(m, quantity, s, e.now().UTC())
}

// PriceProcess prices one run of p:
//
//	laborCost     = laborHours × laborRates[skillLevel]
//	materialsCost = baseMaterialsCost × materialMarkup
//	totalCost     = (laborCost + materialsCost) × businessMultiplier
func (e *Engine) PriceProcess(p entities.Process, s entities.AdminPricingSettings) (entities.PricingComponents, error) {
	return priceProcess(p, s, e.now().UTC())
}

func priceMaterial(m entities.Material, quantity decimal.Decimal, s entities.AdminPricingSettings, at time.Time) (entities.PricingComponents, error) {
	if quantity.IsNegative() {
		return entities.PricingComponents{}, fmt.Errorf("%w: %s", ErrInvalidQuantity, quantity)
	}
	if m.UnitCost.IsNegative() {
		return entities.PricingComponents{}, fmt.Errorf("%w: material %s unit cost %s", ErrInvalidCostInput, m.ID, m.UnitCost)
	}
	if !s.MaterialMarkup.IsPositive() {
		return entities.PricingComponents{}, fmt.Errorf("%w: material markup", ErrMissingRate)
	}

	base := m.UnitCost.Mul(quantity)
	markedUp := base.Mul(s.MaterialMarkup)
	return entities.PricingComponents{
		BaseCost:           base,
		MarkedUpCost:       markedUp,
		LaborCost:          decimal.Zero,
		MaterialsCost:      markedUp,
		TotalCost:          markedUp,
		LaborRate:          decimal.Zero,
		MaterialMarkup:     s.MaterialMarkup,
		BusinessMultiplier: s.BusinessMultiplier,
		Formula:            FormulaMaterialV1,
		CalculatedAt:       at,
	}, nil
}

func priceProcess(p entities.Process, s entities.AdminPricingSettings, at time.Time) (entities.PricingComponents, error) {
	if p.LaborHours.IsNegative() || p.BaseMaterialsCost.IsNegative() {
		return entities.PricingComponents{}, fmt.Errorf("%w: process %s", ErrInvalidCostInput, p.ID)
	}
	if !s.MaterialMarkup.IsPositive() {
		return entities.PricingComponents{}, fmt.Errorf("%w: material markup", ErrMissingRate)
	}
	if !s.BusinessMultiplier.IsPositive() {
		return entities.PricingComponents{}, fmt.Errorf("%w: business multiplier", ErrMissingRate)
	}

	skill := strings.TrimSpace(p.SkillLevel)
	rate, ok := s.LaborRates[skill]
	if !ok {
		return entities.PricingComponents{}, fmt.Errorf("%w: %q", ErrUnknownSkillLevel, skill)
	}
	if !rate.IsPositive() {
		return entities.PricingComponents{}, fmt.Errorf("%w: labor rate for %q", ErrMissingRate, skill)
	}

	labor := p.LaborHours.Mul(rate)
	materials := p.BaseMaterialsCost.Mul(s.MaterialMarkup)
	total := labor.Add(materials).Mul(s.BusinessMultiplier)
	return entities.PricingComponents{
		BaseCost:           p.BaseMaterialsCost,
		MarkedUpCost:       materials,
		LaborCost:          labor,
		MaterialsCost:      materials,
		TotalCost:          total,
		LaborRate:          rate,
		MaterialMarkup:     s.MaterialMarkup,
		BusinessMultiplier: s.BusinessMultiplier,
		Formula:            FormulaProcessV1,
		CalculatedAt:       at,
	}, nil
}

// ValidateSettings checks the settings an admin is about to save.
func ValidateSettings(s entities.AdminPricingSettings) error {
	if !s.MaterialMarkup.IsPositive() {
		return fmt.Errorf("%w: material markup", ErrMissingRate)
	}
	if !s.BusinessMultiplier.IsPositive() {
		return fmt.Errorf("%w: business multiplier", ErrMissingRate)
	}
	for skill, rate := range s.LaborRates {
		if strings.TrimSpace(skill) == "" {
			return fmt.Errorf("%w: empty skill level", ErrUnknownSkillLevel)
		}
		if !rate.IsPositive() {
			return fmt.Errorf("%w: labor rate for %q", ErrMissingRate, skill)
		}
	}
	return nil
}

// Equivalent compares two breakdowns ignoring CalculatedAt. A false result on
// a recomputation with unchanged settings means the stored value drifted.
func Equivalent(a, b entities.PricingComponents) bool {
	return a.Formula == b.Formula &&
		a.BaseCost.Equal(b.BaseCost) &&
		a.MarkedUpCost.Equal(b.MarkedUpCost) &&
		a.LaborCost.Equal(b.LaborCost) &&
		a.MaterialsCost.Equal(b.MaterialsCost) &&
		a.TotalCost.Equal(b.TotalCost) &&
		a.LaborRate.Equal(b.LaborRate) &&
		a.MaterialMarkup.Equal(b.MaterialMarkup) &&
		a.BusinessMultiplier.Equal(b.BusinessMultiplier)
}

// IsStale reports whether p was computed before the current settings.
func IsStale(p entities.PricingComponents, s entities.AdminPricingSettings) bool {
	if p.IsZero() {
		return true
	}
	return p.CalculatedAt.Before(s.UpdatedAt)
}
