package handlers

import (
	"errors"
	"net/http"

	"atelier_ops/internal/usecase"
	"atelier_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "X-Actor-ID header is required", http.StatusUnauthorized)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapUseCaseError maps use case error kinds onto the HTTP envelope. Client
// errors carry the use case message; anything unrecognized is a 500 with a
// generic message.
func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainError("TICKET_NOT_FOUND", "Ticket not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainError("PRODUCT_NOT_FOUND", "Product not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainError("MATERIAL_NOT_FOUND", "Material not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrSettingsNotFound):
		return pkg.NewDomainError("PRICING_SETTINGS_NOT_FOUND", "Pricing settings have not been configured", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainError("NOT_OWNER", "Caller does not own this product", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "Actor role not allowed for this operation", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrUnknownSkillLevel):
		return pkg.NewDomainError("UNKNOWN_SKILL_LEVEL", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingRate):
		return pkg.NewDomainError("MISSING_RATE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStorageFailure):
		return pkg.NewDomainError("STORAGE_FAILURE", "Storage is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
