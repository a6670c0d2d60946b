package interfaces

import (
	"context"
	"time"

	"atelier_ops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// StatusWrite is one atomic status change: status, paused_from and the
// appended history entry are written in a single conditional update.
type StatusWrite struct {
	Expected   entities.TicketStatus
	To         entities.TicketStatus
	PausedFrom entities.TicketStatus
	Entry      entities.StatusHistoryEntry
}

// PaymentMarker stamps one of the ticket's invoice payment markers.
type PaymentMarker struct {
	Kind      entities.InvoiceKind
	Amount    decimal.Decimal
	PaidAt    time.Time
	PaymentID string
}

// ITicketRepository abstracts DynamoDB persistence for Ticket.
//
// Conditional writes follow the store convention: a zero-value Ticket with a
// nil error means the condition did not hold (missing record or the status
// moved on since it was read).
type ITicketRepository interface {
	Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	ApplyStatus(ctx context.Context, id string, w StatusWrite) (entities.Ticket, error)
	MarkPaid(ctx context.Context, id string, m PaymentMarker) (entities.Ticket, error)
}
