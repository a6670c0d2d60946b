package handlers

import (
	"context"
	"net/http"

	request "atelier_ops/internal/adapter/http/dto/request"
	response "atelier_ops/internal/adapter/http/dto/response"
	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProductHandler exposes the product approval gate.
type ProductHandler struct {
	usecase usecase.IProductApprovalUseCase
}

func NewProductHandler(uc usecase.IProductApprovalUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// CreateProduct godoc
// @Summary      Create a draft product owned by the calling artisan
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateProductRequest  true  "Product"
// @Success      201  {object}  response.ProductResponse
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	p, err := h.usecase.Create(c.Request.Context(), payload.Name, actor)
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(p))
}

// GetProduct godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "Product id"
// @Success      200  {object}  response.ProductResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// Submit godoc
// @Summary      Submit a draft for review
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "Product id"
// @Success      200  {object}  response.ProductResponse
// @Router       /products/{id}/submit [post]
func (h *ProductHandler) Submit(c *gin.Context) {
	h.apply(c, h.usecase.Submit)
}

// Approve godoc
// @Summary      Approve and publish a pending product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true   "Product id"
// @Param        body  body  request.ApproveProductRequest  false  "Notes"
// @Success      200  {object}  response.ProductResponse
// @Router       /products/{id}/approve [post]
func (h *ProductHandler) Approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ApproveProductRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}
	p, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), actor, payload.Notes)
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// Decline godoc
// @Summary      Decline a product back to draft
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "Product id"
// @Param        body  body  request.DeclineProductRequest  true  "Reason"
// @Success      200  {object}  response.ProductResponse
// @Router       /products/{id}/decline [post]
func (h *ProductHandler) Decline(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.DeclineProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	p, err := h.usecase.Decline(c.Request.Context(), c.Param("id"), actor, payload.Reason)
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// Unpublish godoc
// @Summary      Archive a published product
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "Product id"
// @Success      200  {object}  response.ProductResponse
// @Router       /products/{id}/unpublish [post]
func (h *ProductHandler) Unpublish(c *gin.Context) {
	h.apply(c, h.usecase.Unpublish)
}

// Republish godoc
// @Summary      Publish an archived, approved product again
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "Product id"
// @Success      200  {object}  response.ProductResponse
// @Router       /products/{id}/republish [post]
func (h *ProductHandler) Republish(c *gin.Context) {
	h.apply(c, h.usecase.Republish)
}

func (h *ProductHandler) apply(
	c *gin.Context,
	op func(ctx context.Context, id string, actor entities.Actor) (entities.Product, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	p, err := op(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}
