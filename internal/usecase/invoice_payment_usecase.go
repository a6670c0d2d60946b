package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrPaymentNotApproved             = errors.New("payment not approved by provider")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentsActorID is recorded as changedBy on transitions driven by a
// settled invoice.
const PaymentsActorID = "system:payments"

// IInvoicePaymentUseCase charges a ticket's deposit or final invoice.
//
// On an approved charge the payment is stored, the ticket's payment marker is
// stamped and the ticket advances to the matching *_RECEIVED status.
type IInvoicePaymentUseCase interface {
	Pay(ctx context.Context, in PayInvoiceInput, actor entities.Actor) (InvoicePaymentResult, error)
	ListByTicketID(ctx context.Context, ticketID string) ([]entities.InvoicePayment, error)
}

type PayInvoiceInput struct {
	TicketID        string
	Kind            entities.InvoiceKind
	Amount          decimal.Decimal
	ProviderPayload json.RawMessage
}

type InvoicePaymentResult struct {
	Payment entities.InvoicePayment
	Ticket  entities.Ticket
}

// SandboxPayer fills in a test payer when the provider runs with a TEST- token.
type SandboxPayer struct {
	AccessToken string
	Email       string
	UserID      string
}

func (s SandboxPayer) enabled() bool {
	return strings.HasPrefix(strings.TrimSpace(s.AccessToken), "TEST-")
}

type InvoicePaymentUseCase struct {
	repo     interfaces.IInvoicePaymentRepository
	tickets  interfaces.ITicketRepository
	workflow ITicketWorkflowUseCase
	gateway  interfaces.IPaymentGateway
	sandbox  SandboxPayer
	log      *zap.Logger
	now      func() time.Time
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoicePaymentRepository, tickets interfaces.ITicketRepository, workflow ITicketWorkflowUseCase, gateway interfaces.IPaymentGateway, sandbox SandboxPayer, log *zap.Logger) *InvoicePaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoicePaymentUseCase{
		repo:     repo,
		tickets:  tickets,
		workflow: workflow,
		gateway:  gateway,
		sandbox:  sandbox,
		log:      log,
		now:      time.Now,
	}
}

var invoiceStages = map[entities.InvoiceKind]struct {
	sent     entities.TicketStatus
	received entities.TicketStatus
}{
	entities.InvoiceKindDeposit: {entities.TicketStatusDepositInvoiceSent, entities.TicketStatusDepositReceived},
	entities.InvoiceKindFinal:   {entities.TicketStatusFinalInvoiceSent, entities.TicketStatusFinalPaymentReceived},
}

func (u *InvoicePaymentUseCase) Pay(ctx context.Context, in PayInvoiceInput, actor entities.Actor) (InvoicePaymentResult, error) {
	in.TicketID = strings.TrimSpace(in.TicketID)
	log := u.log.With(zap.String("ticket_id", in.TicketID), zap.String("kind", string(in.Kind)))
	log.Debug("invoice payment start", zap.Int("payload_len", len(in.ProviderPayload)))

	if in.TicketID == "" {
		return InvoicePaymentResult{}, invalidInput("ticket id is required")
	}
	stage, ok := invoiceStages[in.Kind]
	if !ok {
		return InvoicePaymentResult{}, invalidInput("unknown invoice kind %q", in.Kind)
	}
	if !in.Amount.IsPositive() {
		return InvoicePaymentResult{}, invalidInput("amount must be positive")
	}
	if !actor.CanOperateTickets() {
		return InvoicePaymentResult{}, ErrForbidden
	}
	if u.gateway == nil {
		return InvoicePaymentResult{}, errors.New("payment gateway not configured")
	}

	payload := in.ProviderPayload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Info("invoice payment payload rejected", zap.Error(err))
		return InvoicePaymentResult{}, ErrInvalidProviderPayload
	}

	t, err := u.tickets.GetByID(ctx, in.TicketID)
	if err != nil {
		return InvoicePaymentResult{}, storageErr("get ticket", err)
	}
	if t.ID == "" {
		return InvoicePaymentResult{}, ErrTicketNotFound
	}
	if t.Status != stage.sent {
		return InvoicePaymentResult{}, fmt.Errorf("%w: %s invoice can only be paid in %s, ticket is %s", ErrInvalidState, in.Kind, stage.sent, t.Status)
	}

	if u.sandbox.enabled() {
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = t.ID + ":" + string(in.Kind)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("%s invoice for %s", in.Kind, t.Title)
	}
	reqMap["transaction_amount"] = in.Amount.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return InvoicePaymentResult{}, fmt.Errorf("%w: %w", ErrInvalidProviderPayload, err)
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Warn("payment gateway failed", zap.Error(err))
		return InvoicePaymentResult{}, mapGatewayErr(err)
	}
	log.Info("payment gateway responded", zap.String("provider_payment_id", providerID), zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Debug("provider response unmarshal failed", zap.Error(err))
	}

	now := u.now().UTC()
	p := entities.InvoicePayment{
		ID:                 providerID,
		TicketID:           t.ID,
		Kind:               in.Kind,
		Amount:             in.Amount,
		Date:               now,
		Status:             paymentStatusOf(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return InvoicePaymentResult{}, storageErr("create invoice payment", err)
	}
	if created.Status != entities.PaymentStatusApproved {
		return InvoicePaymentResult{Payment: created, Ticket: t}, fmt.Errorf("%w: provider status %q", ErrPaymentNotApproved, providerStatus)
	}

	marked, err := u.tickets.MarkPaid(ctx, t.ID, interfaces.PaymentMarker{
		Kind:      in.Kind,
		Amount:    in.Amount,
		PaidAt:    now,
		PaymentID: created.ID,
	})
	if err != nil {
		return InvoicePaymentResult{Payment: created, Ticket: t}, storageErr("mark ticket paid", err)
	}
	if marked.ID == "" {
		return InvoicePaymentResult{Payment: created, Ticket: t}, ErrTicketNotFound
	}

	system := entities.Actor{ID: PaymentsActorID, Role: entities.RoleStaff}
	res, err := u.workflow.Transition(ctx, t.ID, stage.received, system, "", "payment "+created.ID)
	if err != nil {
		log.Warn("paid ticket could not advance", zap.String("to", string(stage.received)), zap.Error(err))
		return InvoicePaymentResult{Payment: created, Ticket: marked}, err
	}
	log.Info("invoice payment settled", zap.String("payment_id", created.ID), zap.String("status", string(res.Ticket.Status)))
	return InvoicePaymentResult{Payment: created, Ticket: res.Ticket}, nil
}

func (u *InvoicePaymentUseCase) ListByTicketID(ctx context.Context, ticketID string) ([]entities.InvoicePayment, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return nil, invalidInput("ticket id is required")
	}
	out, err := u.repo.ListByTicketID(ctx, ticketID)
	if err != nil {
		return nil, storageErr("list invoice payments", err)
	}
	return out, nil
}

func paymentStatusOf(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *InvoicePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.sandbox.Email); email != "" {
		payer["email"] = email
	} else {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured test user id for its email; the
// provider sandbox rejects payer ids of test users.
func (u *InvoicePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.sandbox.UserID)
	email := strings.TrimSpace(u.sandbox.Email)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.log.Debug("mapped sandbox payer user id to email")
}

func mapGatewayErr(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return fmt.Errorf("payment gateway: %w", err)
	}
}
