package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "atelier_ops/internal/adapter/http/dto/request"
	response "atelier_ops/internal/adapter/http/dto/response"
	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase"
	"atelier_ops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoicePaymentHandler charges ticket invoices through the payment provider.
type InvoicePaymentHandler struct {
	usecase usecase.IInvoicePaymentUseCase
	log     *zap.Logger
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase, log *zap.Logger) *InvoicePaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoicePaymentHandler{usecase: uc, log: log}
}

// PayInvoice godoc
// @Summary      Pay the deposit or final invoice of a ticket
// @Description  provider_payload is forwarded to Mercado Pago after the amount and references are filled in.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Ticket id"
// @Param        kind  path  string                     true  "deposit or final"
// @Param        body  body  request.PayInvoiceRequest  true  "Payment"
// @Success      201  {object}  response.PayInvoiceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tickets/{id}/payments/{kind} [post]
func (h *InvoicePaymentHandler) PayInvoice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID := c.Param("id")
	kind := entities.InvoiceKind(strings.ToLower(c.Param("kind")))
	log := h.log.With(zap.String("ticket_id", ticketID), zap.String("kind", string(kind)))

	var payload request.PayInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Info("pay invoice payload rejected", zap.Error(err))
		respondError(c, errInvalidPayload)
		return
	}
	amount, err := payload.ResolveAmount()
	if err != nil {
		respondError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return
	}

	res, err := h.usecase.Pay(c.Request.Context(), usecase.PayInvoiceInput{
		TicketID:        ticketID,
		Kind:            kind,
		Amount:          amount,
		ProviderPayload: payload.ResolvePayload(),
	}, actor)
	if err != nil {
		log.Warn("pay invoice failed", zap.Error(err))
		respondError(c, mapInvoicePaymentError(err))
		return
	}
	log.Info("pay invoice success", zap.String("payment_id", res.Payment.ID), zap.String("ticket_status", string(res.Ticket.Status)))

	c.JSON(http.StatusCreated, response.PayInvoiceResponse{
		Payment: response.FromInvoicePayment(res.Payment),
		Ticket:  response.FromTicket(res.Ticket),
	})
}

// ListPayments godoc
// @Summary      List invoice payments recorded for a ticket
// @Tags         payments
// @Produce      json
// @Param        id   path  string  true  "Ticket id"
// @Success      200  {array}   response.InvoicePaymentResponse
// @Router       /tickets/{id}/payments [get]
func (h *InvoicePaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByTicketID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapInvoicePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainError("PAYMENT_NOT_APPROVED", err.Error(), err, http.StatusPaymentRequired)
	default:
		return mapUseCaseError(err)
	}
}
