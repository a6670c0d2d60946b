package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"atelier_ops/internal/adapter/http/handlers/mocks"
	"atelier_ops/internal/adapter/http/middleware"
	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/domain/pricing"
	"atelier_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPricingRouter(uc usecase.IPricingUseCase) *gin.Engine {
	h := NewPricingHandler(uc)
	r := gin.New()
	r.Use(middleware.Actor())
	r.GET("/v1/pricing/settings", h.GetSettings)
	r.PUT("/v1/pricing/settings", h.UpdateSettings)
	r.POST("/v1/pricing/recompute", h.Recompute)
	r.GET("/v1/pricing/materials/:id/quote", h.QuoteMaterial)
	r.GET("/v1/pricing/status", h.Status)
	return r
}

func TestPricingHandler_UpdateSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"labor_rates":{"master":"85.50"},"material_markup":"1.4","business_multiplier":2}`

	t.Run("missing multiplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingUseCase(ctrl)

		w := doRequest(newPricingRouter(uc), http.MethodPut, "/v1/pricing/settings", `{"labor_rates":{"master":"85"}}`, admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("all records updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().UpdateSettings(gomock.Any(), gomock.Any(), *admin).
			DoAndReturn(func(_ context.Context, s entities.AdminPricingSettings, _ entities.Actor) (entities.AdminPricingSettings, usecase.BatchResult, error) {
				assert.True(t, s.LaborRates["master"].Equal(decimal.RequireFromString("85.50")))
				assert.True(t, s.BusinessMultiplier.Equal(decimal.NewFromInt(2)))
				return s, usecase.BatchResult{Total: 3, Updated: 3}, nil
			})

		w := doRequest(newPricingRouter(uc), http.MethodPut, "/v1/pricing/settings", body, admin)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("partial failure answers 207 with the failing records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().UpdateSettings(gomock.Any(), gomock.Any(), *admin).
			Return(entities.AdminPricingSettings{}, usecase.BatchResult{
				Total: 2, Updated: 1, Failed: 1,
				Failures: []pricing.RecordFailure{{Kind: entities.CostableProcess, ID: "proc-9", Err: fmt.Errorf("%w: %q", pricing.ErrUnknownSkillLevel, "wizard")}},
			}, nil)

		w := doRequest(newPricingRouter(uc), http.MethodPut, "/v1/pricing/settings", body, admin)
		require.Equal(t, http.StatusMultiStatus, w.Code)

		var resp struct {
			Recompute struct {
				Failed   int `json:"failed"`
				Failures []struct {
					ID     string `json:"id"`
					Reason string `json:"reason"`
				} `json:"failures"`
			} `json:"recompute"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Recompute.Failed)
		require.Len(t, resp.Recompute.Failures, 1)
		assert.Equal(t, "proc-9", resp.Recompute.Failures[0].ID)
		assert.Contains(t, resp.Recompute.Failures[0].Reason, "wizard")
	})

	t.Run("non admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().UpdateSettings(gomock.Any(), gomock.Any(), *staff).
			Return(entities.AdminPricingSettings{}, usecase.BatchResult{}, usecase.ErrForbidden)

		w := doRequest(newPricingRouter(uc), http.MethodPut, "/v1/pricing/settings", body, staff)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPricingHandler_Recompute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("staff cannot trigger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingUseCase(ctrl)

		w := doRequest(newPricingRouter(uc), http.MethodPost, "/v1/pricing/recompute", "", staff)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing rate fails the whole run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().BulkRecompute(gomock.Any()).Return(usecase.BatchResult{}, usecase.ErrSettingsNotFound)

		w := doRequest(newPricingRouter(uc), http.MethodPost, "/v1/pricing/recompute", "", admin)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().BulkRecompute(gomock.Any()).Return(usecase.BatchResult{Total: 4, Updated: 4}, nil)

		w := doRequest(newPricingRouter(uc), http.MethodPost, "/v1/pricing/recompute", "", admin)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPricingHandler_QuoteMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingUseCase(ctrl)

		w := doRequest(newPricingRouter(uc), http.MethodGet, "/v1/pricing/materials/m-1/quote?quantity=-2", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("defaults to one unit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().QuoteMaterial(gomock.Any(), "m-1", decimal.NewFromInt(1)).
			Return(entities.PricingComponents{TotalCost: decimal.RequireFromString("28")}, nil)

		w := doRequest(newPricingRouter(uc), http.MethodGet, "/v1/pricing/materials/m-1/quote", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_cost":"28"`)
	})

	t.Run("unknown material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().QuoteMaterial(gomock.Any(), "m-x", gomock.Any()).Return(entities.PricingComponents{}, usecase.ErrMaterialNotFound)

		w := doRequest(newPricingRouter(uc), http.MethodGet, "/v1/pricing/materials/m-x/quote?quantity=3", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
