package interfaces

import (
	"context"
	"time"

	"atelier_ops/internal/domain/entities"
)

// TransitionEvent is handed to the notification collaborator after a status
// change has been persisted.
type TransitionEvent struct {
	TicketID   string                 `json:"ticket_id"`
	FromStatus entities.TicketStatus  `json:"from_status"`
	ToStatus   entities.TicketStatus  `json:"to_status"`
	Actor      string                 `json:"actor"`
	Action     entities.HistoryAction `json:"action"`
	Timestamp  time.Time              `json:"timestamp"`
}

// ITransitionNotifier must return promptly and never report failure to the
// caller; delivery and retry belong to the implementation.
type ITransitionNotifier interface {
	NotifyTransition(ctx context.Context, evt TransitionEvent)
}
