package pricing

import (
	"testing"
	"time"

	"atelier_ops/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testSettings() entities.AdminPricingSettings {
	return entities.AdminPricingSettings{
		LaborRates: map[string]decimal.Decimal{
			"apprentice": d("25"),
			"journeyman": d("45"),
			"master":     d("80"),
		},
		MaterialMarkup:     d("1.3"),
		BusinessMultiplier: d("1.5"),
		UpdatedAt:          time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func fixedClock(t time.Time) Clock { return func() time.Time { return t } }

func TestPriceMaterial(t *testing.T) {
	e := NewEngine(fixedClock(time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)))
	m := entities.Material{ID: "mat-1", UnitCost: d("10")}

	p, err := e.PriceMaterial(m, d("3"), testSettings())
	require.NoError(t, err)
	assert.True(t, p.BaseCost.Equal(d("30")), "base %s", p.BaseCost)
	assert.True(t, p.MarkedUpCost.Equal(d("39")), "marked up %s", p.MarkedUpCost)
	assert.True(t, p.TotalCost.Equal(d("39")))
	assert.Equal(t, FormulaMaterialV1, p.Formula)
	assert.False(t, p.CalculatedAt.IsZero())
}

func TestPriceMaterial_ZeroQuantityIsZeroCost(t *testing.T) {
	e := NewEngine(nil)
	p, err := e.PriceMaterial(entities.Material{ID: "mat-1", UnitCost: d("10")}, decimal.Zero, testSettings())
	require.NoError(t, err)
	assert.True(t, p.BaseCost.IsZero())
	assert.True(t, p.MarkedUpCost.IsZero())
}

func TestPriceMaterial_Rejections(t *testing.T) {
	e := NewEngine(nil)
	s := testSettings()

	_, err := e.PriceMaterial(entities.Material{UnitCost: d("10")}, d("-1"), s)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = e.PriceMaterial(entities.Material{UnitCost: d("-10")}, d("1"), s)
	require.ErrorIs(t, err, ErrInvalidCostInput)

	s.MaterialMarkup = decimal.Zero
	_, err = e.PriceMaterial(entities.Material{UnitCost: d("10")}, d("1"), s)
	require.ErrorIs(t, err, ErrMissingRate)
}

func TestPriceMaterial_Deterministic(t *testing.T) {
	calls := 0
	e := NewEngine(func() time.Time {
		calls++
		return time.Date(2026, 1, 11, 0, 0, calls, 0, time.UTC)
	})
	m := entities.Material{ID: "mat-1", UnitCost: d("12.75")}

	a, err := e.PriceMaterial(m, d("4"), testSettings())
	require.NoError(t, err)
	b, err := e.PriceMaterial(m, d("4"), testSettings())
	require.NoError(t, err)

	assert.True(t, Equivalent(a, b))
	assert.NotEqual(t, a.CalculatedAt, b.CalculatedAt)
}

func TestPriceProcess(t *testing.T) {
	e := NewEngine(nil)
	p := entities.Process{ID: "proc-1", LaborHours: d("2"), SkillLevel: "journeyman", BaseMaterialsCost: d("20")}

	c, err := e.PriceProcess(p, testSettings())
	require.NoError(t, err)
	assert.True(t, c.LaborCost.Equal(d("90")), "labor %s", c.LaborCost)
	assert.True(t, c.MaterialsCost.Equal(d("26")), "materials %s", c.MaterialsCost)
	assert.True(t, c.TotalCost.Equal(d("174")), "total %s", c.TotalCost)
	assert.True(t, c.LaborRate.Equal(d("45")))
	assert.Equal(t, FormulaProcessV1, c.Formula)
}

func TestPriceProcess_UnknownSkillLevel(t *testing.T) {
	e := NewEngine(nil)
	_, err := e.PriceProcess(entities.Process{ID: "proc-1", LaborHours: d("1"), SkillLevel: "wizard"}, testSettings())
	require.ErrorIs(t, err, ErrUnknownSkillLevel)
}

func TestPriceProcess_MissingRates(t *testing.T) {
	e := NewEngine(nil)
	s := testSettings()
	s.LaborRates["trainee"] = decimal.Zero
	_, err := e.PriceProcess(entities.Process{ID: "proc-1", LaborHours: d("1"), SkillLevel: "trainee"}, s)
	require.ErrorIs(t, err, ErrMissingRate)

	s = testSettings()
	s.BusinessMultiplier = decimal.Zero
	_, err = e.PriceProcess(entities.Process{ID: "proc-1", LaborHours: d("1"), SkillLevel: "master"}, s)
	require.ErrorIs(t, err, ErrMissingRate)
}

func TestValidateSettings(t *testing.T) {
	require.NoError(t, ValidateSettings(testSettings()))

	s := testSettings()
	s.LaborRates[""] = d("10")
	require.ErrorIs(t, ValidateSettings(s), ErrUnknownSkillLevel)

	s = testSettings()
	s.BusinessMultiplier = d("-1")
	require.ErrorIs(t, ValidateSettings(s), ErrMissingRate)
}

func TestIsStale(t *testing.T) {
	s := testSettings()
	assert.True(t, IsStale(entities.PricingComponents{}, s))
	assert.True(t, IsStale(entities.PricingComponents{Formula: FormulaMaterialV1, CalculatedAt: s.UpdatedAt.Add(-time.Minute)}, s))
	assert.False(t, IsStale(entities.PricingComponents{Formula: FormulaMaterialV1, CalculatedAt: s.UpdatedAt.Add(time.Minute)}, s))
}

func TestRecompute_CollectsFailuresWithoutStopping(t *testing.T) {
	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	e := NewEngine(fixedClock(at))
	snap := Snapshot{
		Materials: []entities.Material{
			{ID: "gold", UnitCost: d("60")},
			{ID: "broken", UnitCost: d("-1")},
		},
		Processes: []entities.Process{
			{ID: "setting", LaborHours: d("1"), SkillLevel: "master"},
			{ID: "mystery", LaborHours: d("1"), SkillLevel: "unknown"},
			{ID: "polish", LaborHours: d("0.5"), SkillLevel: "apprentice", BaseMaterialsCost: d("2")},
		},
	}

	plan := e.Recompute(snap, testSettings())
	require.Len(t, plan.Records, 3)
	require.Len(t, plan.Failures, 2)
	for _, r := range plan.Records {
		assert.Equal(t, at, r.Pricing.CalculatedAt)
	}
	assert.Equal(t, "broken", plan.Failures[0].ID)
	assert.ErrorIs(t, plan.Failures[1].Err, ErrUnknownSkillLevel)
	assert.True(t, plan.Records[0].Pricing.MarkedUpCost.Equal(d("78")))
}

func TestRecompute_MalformedRecordsAreCarriedAsFailures(t *testing.T) {
	e := NewEngine(fixedClock(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
	snap := Snapshot{
		Materials: []entities.Material{{ID: "gold", UnitCost: d("60")}},
		Malformed: []RecordFailure{{Kind: entities.CostableMaterial, ID: "garbled", Err: entities.ErrMalformedRecord}},
	}

	plan := e.Recompute(snap, testSettings())
	assert.Equal(t, 2, snap.Len())
	require.Len(t, plan.Records, 1)
	require.Len(t, plan.Failures, 1)
	assert.Equal(t, "garbled", plan.Failures[0].ID)
	assert.ErrorIs(t, plan.Failures[0].Err, entities.ErrMalformedRecord)
}
