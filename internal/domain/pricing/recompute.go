package pricing

import (
	"atelier_ops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Snapshot is the set of costable records read for one recompute run.
// Malformed holds records that could not be decoded; they count towards the
// run and are reported as failures without being priced.
type Snapshot struct {
	Materials []entities.Material
	Processes []entities.Process
	Malformed []RecordFailure
}

func (s Snapshot) Len() int {
	return len(s.Materials) + len(s.Processes) + len(s.Malformed)
}

// PricedRecord is a freshly computed breakdown for one stored record.
type PricedRecord struct {
	Kind    entities.CostableKind
	ID      string
	Pricing entities.PricingComponents
}

// RecordFailure is a record that could not be priced or written.
type RecordFailure struct {
	Kind entities.CostableKind `json:"kind"`
	ID   string                `json:"id"`
	Err  error                 `json:"-"`
}

// RecomputePlan is the outcome of pricing a snapshot. Failures never stop the
// remaining records from being priced.
type RecomputePlan struct {
	Records  []PricedRecord
	Failures []RecordFailure
}

// Recompute prices every record of snap with one shared CalculatedAt.
// Materials are priced per single unit.
func (e *Engine) Recompute(snap Snapshot, s entities.AdminPricingSettings) RecomputePlan {
	at := e.now().UTC()
	plan := RecomputePlan{Records: make([]PricedRecord, 0, snap.Len())}
	plan.Failures = append(plan.Failures, snap.Malformed...)

	for _, m := range snap.Materials {
		p, err := priceMaterial(m, decimal.NewFromInt(1), s, at)
		if err != nil {
			plan.Failures = append(plan.Failures, RecordFailure{Kind: entities.CostableMaterial, ID: m.ID, Err: err})
			continue
		}
		plan.Records = append(plan.Records, PricedRecord{Kind: entities.CostableMaterial, ID: m.ID, Pricing: p})
	}
	for _, proc := range snap.Processes {
		p, err := priceProcess(proc, s, at)
		if err != nil {
			plan.Failures = append(plan.Failures, RecordFailure{Kind: entities.CostableProcess, ID: proc.ID, Err: err})
			continue
		}
		plan.Records = append(plan.Records, PricedRecord{Kind: entities.CostableProcess, ID: proc.ID, Pricing: p})
	}
	return plan
}
