package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "atelier_ops/internal/adapter/http/dto/request"
	response "atelier_ops/internal/adapter/http/dto/response"
	"atelier_ops/internal/usecase"
	"atelier_ops/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PricingHandler exposes the admin pricing settings and the bulk recompute.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// GetSettings godoc
// @Summary      Current admin pricing settings
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  response.PricingSettingsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /pricing/settings [get]
func (h *PricingHandler) GetSettings(c *gin.Context) {
	s, err := h.usecase.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPricingSettings(s))
}

// UpdateSettings godoc
// @Summary      Replace the pricing settings and recompute every stored breakdown
// @Description  Responds 207 when some records could not be recomputed; they keep their previous pricing.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body  request.UpdatePricingSettingsRequest  true  "Settings"
// @Success      200  {object}  response.UpdatePricingSettingsResponse
// @Success      207  {object}  response.UpdatePricingSettingsResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /pricing/settings [put]
func (h *PricingHandler) UpdateSettings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdatePricingSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	settings, err := payload.ToSettings()
	if err != nil {
		respondError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return
	}

	saved, res, err := h.usecase.UpdateSettings(c.Request.Context(), settings, actor)
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(batchStatus(res.Err()), response.UpdatePricingSettingsResponse{
		Settings:  response.FromPricingSettings(saved),
		Recompute: response.FromBatchResult(res),
	})
}

// Recompute godoc
// @Summary      Recompute every material and process with the current settings
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  response.BatchResultResponse
// @Success      207  {object}  response.BatchResultResponse
// @Router       /pricing/recompute [post]
func (h *PricingHandler) Recompute(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !actor.IsAdmin() {
		respondError(c, mapUseCaseError(usecase.ErrForbidden))
		return
	}
	res, err := h.usecase.BulkRecompute(c.Request.Context())
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(batchStatus(res.Err()), response.FromBatchResult(res))
}

// QuoteMaterial godoc
// @Summary      Price a quantity of one material with the current settings
// @Tags         pricing
// @Produce      json
// @Param        id        path   string  true   "Material id"
// @Param        quantity  query  string  false  "Quantity, defaults to 1"
// @Success      200  {object}  response.MaterialQuoteResponse
// @Router       /pricing/materials/{id}/quote [get]
func (h *PricingHandler) QuoteMaterial(c *gin.Context) {
	quantity := decimal.NewFromInt(1)
	if raw := strings.TrimSpace(c.Query("quantity")); raw != "" {
		q, err := decimal.NewFromString(raw)
		if err != nil || !q.IsPositive() {
			respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "quantity must be a positive decimal", http.StatusBadRequest))
			return
		}
		quantity = q
	}

	id := c.Param("id")
	p, err := h.usecase.QuoteMaterial(c.Request.Context(), id, quantity)
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.MaterialQuoteResponse{
		MaterialID: id,
		Quantity:   quantity.String(),
		Pricing:    response.FromPricingComponents(p),
	})
}

// Status godoc
// @Summary      Count breakdowns computed before the latest settings change
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  usecase.PricingStatus
// @Router       /pricing/status [get]
func (h *PricingHandler) Status(c *gin.Context) {
	st, err := h.usecase.Status(c.Request.Context())
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, st)
}

// batchStatus is 207 when a batch finished with per-record failures.
func batchStatus(err error) int {
	if errors.Is(err, usecase.ErrPartialBatchFailure) {
		return http.StatusMultiStatus
	}
	return http.StatusOK
}
