package response

import (
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase"
)

// Decimal amounts are rendered as strings to keep full precision.
type PricingComponentsResponse struct {
	BaseCost           string    `json:"base_cost"`
	MarkedUpCost       string    `json:"marked_up_cost"`
	LaborCost          string    `json:"labor_cost"`
	MaterialsCost      string    `json:"materials_cost"`
	TotalCost          string    `json:"total_cost"`
	LaborRate          string    `json:"labor_rate"`
	MaterialMarkup     string    `json:"material_markup"`
	BusinessMultiplier string    `json:"business_multiplier"`
	Formula            string    `json:"formula"`
	CalculatedAt       time.Time `json:"calculated_at"`
}

type PricingSettingsResponse struct {
	LaborRates         map[string]string `json:"labor_rates"`
	MaterialMarkup     string            `json:"material_markup"`
	BusinessMultiplier string            `json:"business_multiplier"`
	UpdatedAt          time.Time         `json:"updated_at"`
	UpdatedBy          string            `json:"updated_by,omitempty"`
}

type RecordFailureResponse struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type BatchResultResponse struct {
	Total    int                     `json:"total"`
	Updated  int                     `json:"updated"`
	Failed   int                     `json:"failed"`
	Failures []RecordFailureResponse `json:"failures,omitempty"`
}

type UpdatePricingSettingsResponse struct {
	Settings  PricingSettingsResponse `json:"settings"`
	Recompute BatchResultResponse     `json:"recompute"`
}

type MaterialQuoteResponse struct {
	MaterialID string                    `json:"material_id"`
	Quantity   string                    `json:"quantity"`
	Pricing    PricingComponentsResponse `json:"pricing"`
}

func FromPricingComponents(p entities.PricingComponents) PricingComponentsResponse {
	return PricingComponentsResponse{
		BaseCost:           p.BaseCost.String(),
		MarkedUpCost:       p.MarkedUpCost.String(),
		LaborCost:          p.LaborCost.String(),
		MaterialsCost:      p.MaterialsCost.String(),
		TotalCost:          p.TotalCost.String(),
		LaborRate:          p.LaborRate.String(),
		MaterialMarkup:     p.MaterialMarkup.String(),
		BusinessMultiplier: p.BusinessMultiplier.String(),
		Formula:            p.Formula,
		CalculatedAt:       p.CalculatedAt,
	}
}

func FromPricingSettings(s entities.AdminPricingSettings) PricingSettingsResponse {
	rates := make(map[string]string, len(s.LaborRates))
	for skill, rate := range s.LaborRates {
		rates[skill] = rate.String()
	}
	return PricingSettingsResponse{
		LaborRates:         rates,
		MaterialMarkup:     s.MaterialMarkup.String(),
		BusinessMultiplier: s.BusinessMultiplier.String(),
		UpdatedAt:          s.UpdatedAt,
		UpdatedBy:          s.UpdatedBy,
	}
}

func FromBatchResult(r usecase.BatchResult) BatchResultResponse {
	out := BatchResultResponse{Total: r.Total, Updated: r.Updated, Failed: r.Failed}
	for _, f := range r.Failures {
		reason := ""
		if f.Err != nil {
			reason = f.Err.Error()
		}
		out.Failures = append(out.Failures, RecordFailureResponse{Kind: string(f.Kind), ID: f.ID, Reason: reason})
	}
	return out
}
