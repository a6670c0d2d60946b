package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TicketStatus is the internal, fine-grained lifecycle state of a custom or
// repair ticket.
//
// Domain notes:
//   - Values are persisted verbatim in the tickets table.
//   - The legal successor set for each value lives in internal/domain/workflow.
//   - Any new value must also be mapped by workflow.ClientStatusOf.
type TicketStatus string

const (
	// Intake
	TicketStatusPending               TicketStatus = "PENDING"
	TicketStatusConsultationScheduled TicketStatus = "CONSULTATION_SCHEDULED"
	TicketStatusConsultationCompleted TicketStatus = "CONSULTATION_COMPLETED"

	// Design
	TicketStatusDesignInProgress TicketStatus = "DESIGN_IN_PROGRESS"
	TicketStatusCADInProgress    TicketStatus = "CAD_IN_PROGRESS"
	TicketStatusDesignReview     TicketStatus = "DESIGN_REVIEW"
	TicketStatusDesignRevision   TicketStatus = "DESIGN_REVISION"
	TicketStatusDesignApproved   TicketStatus = "DESIGN_APPROVED"

	// Quoting
	TicketStatusQuotePreparing TicketStatus = "QUOTE_PREPARING"
	TicketStatusQuoteSent      TicketStatus = "QUOTE_SENT"
	TicketStatusQuoteRevision  TicketStatus = "QUOTE_REVISION"
	TicketStatusQuoteApproved  TicketStatus = "QUOTE_APPROVED"

	// Payment
	TicketStatusDepositInvoiceSent TicketStatus = "DEPOSIT_INVOICE_SENT"
	TicketStatusDepositReceived    TicketStatus = "DEPOSIT_RECEIVED"

	// Production
	TicketStatusPartsOrdered       TicketStatus = "PARTS_ORDERED"
	TicketStatusPartsReceived      TicketStatus = "PARTS_RECEIVED"
	TicketStatusInProduction       TicketStatus = "IN_PRODUCTION"
	TicketStatusCasting            TicketStatus = "CASTING"
	TicketStatusStoneSetting       TicketStatus = "STONE_SETTING"
	TicketStatusPolishing          TicketStatus = "POLISHING"
	TicketStatusQualityCheck       TicketStatus = "QUALITY_CHECK"
	TicketStatusProductionComplete TicketStatus = "PRODUCTION_COMPLETE"

	// Completion
	TicketStatusFinalInvoiceSent     TicketStatus = "FINAL_INVOICE_SENT"
	TicketStatusFinalPaymentReceived TicketStatus = "FINAL_PAYMENT_RECEIVED"
	TicketStatusReadyForPickup       TicketStatus = "READY_FOR_PICKUP"
	TicketStatusShipped              TicketStatus = "SHIPPED"
	TicketStatusCompleted            TicketStatus = "COMPLETED"

	// Side and exception states
	TicketStatusOnHold           TicketStatus = "ON_HOLD"
	TicketStatusWaitingForClient TicketStatus = "WAITING_FOR_CLIENT"
	TicketStatusCancelled        TicketStatus = "CANCELLED"
	TicketStatusDeadLead         TicketStatus = "DEAD_LEAD"
)

var allTicketStatuses = []TicketStatus{
	TicketStatusPending,
	TicketStatusConsultationScheduled,
	TicketStatusConsultationCompleted,
	TicketStatusDesignInProgress,
	TicketStatusCADInProgress,
	TicketStatusDesignReview,
	TicketStatusDesignRevision,
	TicketStatusDesignApproved,
	TicketStatusQuotePreparing,
	TicketStatusQuoteSent,
	TicketStatusQuoteRevision,
	TicketStatusQuoteApproved,
	TicketStatusDepositInvoiceSent,
	TicketStatusDepositReceived,
	TicketStatusPartsOrdered,
	TicketStatusPartsReceived,
	TicketStatusInProduction,
	TicketStatusCasting,
	TicketStatusStoneSetting,
	TicketStatusPolishing,
	TicketStatusQualityCheck,
	TicketStatusProductionComplete,
	TicketStatusFinalInvoiceSent,
	TicketStatusFinalPaymentReceived,
	TicketStatusReadyForPickup,
	TicketStatusShipped,
	TicketStatusCompleted,
	TicketStatusOnHold,
	TicketStatusWaitingForClient,
	TicketStatusCancelled,
	TicketStatusDeadLead,
}

// AllTicketStatuses returns every internal status in pipeline order.
func AllTicketStatuses() []TicketStatus {
	out := make([]TicketStatus, len(allTicketStatuses))
	copy(out, allTicketStatuses)
	return out
}

func (s TicketStatus) IsValid() bool {
	for _, v := range allTicketStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s is absorbing (only an admin reopen leaves it).
func (s TicketStatus) IsTerminal() bool {
	switch s {
	case TicketStatusCompleted, TicketStatusCancelled, TicketStatusDeadLead:
		return true
	}
	return false
}

// IsPaused reports whether s is a resumable side state.
func (s TicketStatus) IsPaused() bool {
	return s == TicketStatusOnHold || s == TicketStatusWaitingForClient
}

type TicketKind string

const (
	TicketKindCustom TicketKind = "custom"
	TicketKindRepair TicketKind = "repair"
)

// HistoryAction tags how a history entry was produced.
type HistoryAction string

const (
	HistoryActionCreate     HistoryAction = "create"
	HistoryActionTransition HistoryAction = "transition"
	HistoryActionReopen     HistoryAction = "reopen"
)

// StatusHistoryEntry is one immutable element of Ticket.StatusHistory.
type StatusHistoryEntry struct {
	Status    TicketStatus  `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	ChangedBy string        `json:"changed_by"`
	Reason    string        `json:"reason,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	Action    HistoryAction `json:"action"`
}

// Financials carries the invoice payment markers of a ticket. They are written
// by the payment flow, never by a status transition.
type Financials struct {
	DepositAmount    decimal.Decimal `json:"deposit_amount"`
	DepositPaidAt    *time.Time      `json:"deposit_paid_at,omitempty"`
	DepositPaymentID string          `json:"deposit_payment_id,omitempty"`
	FinalAmount      decimal.Decimal `json:"final_amount"`
	FinalPaidAt      *time.Time      `json:"final_paid_at,omitempty"`
	FinalPaymentID   string          `json:"final_payment_id,omitempty"`
}

func (f Financials) DepositReceived() bool { return f.DepositPaidAt != nil }
func (f Financials) FinalReceived() bool   { return f.FinalPaidAt != nil }

// Ticket is a unit of custom or repair work persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - status_history is a list attribute that only ever grows through
//     list_append in the same UpdateItem that changes status.
type Ticket struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customer_id"`
	Title         string               `json:"title"`
	Kind          TicketKind           `json:"kind"`
	Status        TicketStatus         `json:"status"`
	PausedFrom    TicketStatus         `json:"paused_from,omitempty"`
	StatusHistory []StatusHistoryEntry `json:"status_history"`
	Financials    Financials           `json:"financials"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// LastHistoryEntry returns the most recent history entry, if any.
func (t Ticket) LastHistoryEntry() (StatusHistoryEntry, bool) {
	if len(t.StatusHistory) == 0 {
		return StatusHistoryEntry{}, false
	}
	return t.StatusHistory[len(t.StatusHistory)-1], true
}
