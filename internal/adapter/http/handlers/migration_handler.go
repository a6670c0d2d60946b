package handlers

import (
	"net/http"

	"atelier_ops/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MigrationHandler struct {
	usecase usecase.IProductMigrationUseCase
}

func NewMigrationHandler(uc usecase.IProductMigrationUseCase) *MigrationHandler {
	return &MigrationHandler{usecase: uc}
}

// ProductStatus godoc
// @Summary      How many products still carry a legacy status
// @Tags         migrations
// @Produce      json
// @Success      200  {object}  usecase.MigrationStatus
// @Router       /migrations/products [get]
func (h *MigrationHandler) ProductStatus(c *gin.Context) {
	st, err := h.usecase.Status(c.Request.Context())
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, st)
}

// RunProducts godoc
// @Summary      Migrate legacy product statuses to the status and approval pair
// @Description  Safe to run repeatedly. Responds 207 when some records could not be migrated.
// @Tags         migrations
// @Produce      json
// @Success      200  {object}  usecase.MigrationReport
// @Success      207  {object}  usecase.MigrationReport
// @Router       /migrations/products/run [post]
func (h *MigrationHandler) RunProducts(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !actor.IsAdmin() {
		respondError(c, mapUseCaseError(usecase.ErrForbidden))
		return
	}
	rep, err := h.usecase.Run(c.Request.Context())
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(batchStatus(rep.Err()), rep)
}
