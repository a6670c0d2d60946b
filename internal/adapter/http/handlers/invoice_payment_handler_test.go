package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"atelier_ops/internal/adapter/http/handlers/mocks"
	"atelier_ops/internal/adapter/http/middleware"
	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newPaymentRouter(uc usecase.IInvoicePaymentUseCase) *gin.Engine {
	h := NewInvoicePaymentHandler(uc, zap.NewNop())
	r := gin.New()
	r.Use(middleware.Actor())
	r.POST("/v1/tickets/:id/payments/:kind", h.PayInvoice)
	r.GET("/v1/tickets/:id/payments", h.ListPayments)
	return r
}

func TestInvoicePaymentHandler_PayInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)

		w := doRequest(newPaymentRouter(uc), http.MethodPost, "/v1/tickets/t-1/payments/deposit", "{", staff)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("amount required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)

		w := doRequest(newPaymentRouter(uc), http.MethodPost, "/v1/tickets/t-1/payments/deposit", `{"provider_payload":{}}`, staff)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ticket not awaiting this invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		uc.EXPECT().Pay(gomock.Any(), gomock.Any(), *staff).
			Return(usecase.InvoicePaymentResult{}, fmt.Errorf("%w: deposit invoice can only be paid in DEPOSIT_INVOICE_SENT", usecase.ErrInvalidState))

		w := doRequest(newPaymentRouter(uc), http.MethodPost, "/v1/tickets/t-1/payments/deposit", `{"amount":"500"}`, staff)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("provider rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		uc.EXPECT().Pay(gomock.Any(), gomock.Any(), *staff).Return(usecase.InvoicePaymentResult{}, usecase.ErrPaymentNotApproved)

		w := doRequest(newPaymentRouter(uc), http.MethodPost, "/v1/tickets/t-1/payments/final", `{"amount":"500"}`, staff)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		uc.EXPECT().Pay(gomock.Any(), gomock.Any(), *staff).Return(usecase.InvoicePaymentResult{}, usecase.ErrPaymentGatewayUnauthorized)

		w := doRequest(newPaymentRouter(uc), http.MethodPost, "/v1/tickets/t-1/payments/final", `{"amount":"500"}`, staff)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		uc.EXPECT().Pay(gomock.Any(), gomock.Any(), *staff).
			DoAndReturn(func(_ context.Context, in usecase.PayInvoiceInput, _ entities.Actor) (usecase.InvoicePaymentResult, error) {
				if in.TicketID != "t-1" || in.Kind != entities.InvoiceKindDeposit {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.Amount.Equal(decimal.RequireFromString("500.25")) {
					t.Fatalf("unexpected amount: %s", in.Amount)
				}
				if string(in.ProviderPayload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload: %s", in.ProviderPayload)
				}
				return usecase.InvoicePaymentResult{
					Payment: entities.InvoicePayment{ID: "pay-1", TicketID: "t-1", Kind: entities.InvoiceKindDeposit, Date: time.Now().UTC(), Status: entities.PaymentStatusApproved},
					Ticket:  entities.Ticket{ID: "t-1", Status: entities.TicketStatusDepositReceived},
				}, nil
			})

		w := doRequest(newPaymentRouter(uc), http.MethodPost, "/v1/tickets/t-1/payments/DEPOSIT",
			`{"amount":"500.25","mp_payload":{"payment_method_id":"pix"}}`, staff)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestInvoicePaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
	uc.EXPECT().ListByTicketID(gomock.Any(), "t-1").Return([]entities.InvoicePayment{{ID: "pay-1"}, {ID: "pay-2"}}, nil)

	w := doRequest(newPaymentRouter(uc), http.MethodGet, "/v1/tickets/t-1/payments", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
