package repository

import (
	"context"
	"errors"
	"testing"

	"atelier_ops/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingSettingsDynamoRepository_PutThenGet(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewPricingSettingsDynamoRepository(ddb, "")

	_, ok, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	in := entities.AdminPricingSettings{
		LaborRates:         map[string]decimal.Decimal{"master": decimal.RequireFromString("90.5")},
		MaterialMarkup:     decimal.RequireFromString("1.3"),
		BusinessMultiplier: decimal.RequireFromString("2"),
		UpdatedAt:          repoNow,
		UpdatedBy:          "admin-1",
	}
	require.NoError(t, repo.Put(context.Background(), in))
	assert.Equal(t, pricingSettingsID, str(ddb.putIn[0].Item["id"]))

	got, ok, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.LaborRates["master"].Equal(in.LaborRates["master"]))
	assert.True(t, got.MaterialMarkup.Equal(in.MaterialMarkup))
	assert.True(t, got.UpdatedAt.Equal(repoNow))
	assert.Equal(t, "admin-1", got.UpdatedBy)
}

func TestPricingSettingsDynamoRepository_GetError(t *testing.T) {
	repo := NewPricingSettingsDynamoRepository(&fakeDynamo{getErr: errors.New("boom")}, "")
	_, _, err := repo.Get(context.Background())
	assert.EqualError(t, err, "boom")
}
