package request

import (
	"errors"
	"strings"

	"atelier_ops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrMissingPricingField = errors.New("material_markup and business_multiplier are required")

// UpdatePricingSettingsRequest accepts decimals as JSON numbers or strings.
type UpdatePricingSettingsRequest struct {
	LaborRates         map[string]decimal.Decimal `json:"labor_rates" binding:"required"`
	MaterialMarkup     *decimal.Decimal           `json:"material_markup"`
	BusinessMultiplier *decimal.Decimal           `json:"business_multiplier"`
}

func (r UpdatePricingSettingsRequest) ToSettings() (entities.AdminPricingSettings, error) {
	if r.MaterialMarkup == nil || r.BusinessMultiplier == nil {
		return entities.AdminPricingSettings{}, ErrMissingPricingField
	}
	rates := make(map[string]decimal.Decimal, len(r.LaborRates))
	for skill, rate := range r.LaborRates {
		rates[strings.TrimSpace(skill)] = rate
	}
	return entities.AdminPricingSettings{
		LaborRates:         rates,
		MaterialMarkup:     *r.MaterialMarkup,
		BusinessMultiplier: *r.BusinessMultiplier,
	}, nil
}
