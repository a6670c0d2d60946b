package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// InvoiceKind is which of the two ticket invoices a payment settles.
type InvoiceKind string

const (
	InvoiceKindDeposit InvoiceKind = "deposit"
	InvoiceKindFinal   InvoiceKind = "final"
)

func (k InvoiceKind) IsValid() bool {
	return k == InvoiceKindDeposit || k == InvoiceKindFinal
}

// InvoicePayment is a provider payment recorded against a ticket invoice.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (ticket_id-index): ticket_id
//
// ProviderPayloadRaw keeps the provider response body for reconciliation.
type InvoicePayment struct {
	ID       string          `json:"id"`
	TicketID string          `json:"ticket_id"`
	Kind     InvoiceKind     `json:"kind"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Status   PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
