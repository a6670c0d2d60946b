package workflow

import "atelier_ops/internal/domain/entities"

// ClientStatus is the coarse status shown to the customer.
type ClientStatus string

const (
	ClientStatusPendingReview        ClientStatus = "pending-review"
	ClientStatusAwaitingYourResponse ClientStatus = "awaiting-your-response"
	ClientStatusInProgress           ClientStatus = "in-progress"
	ClientStatusReadyForPickup       ClientStatus = "ready-for-pickup"
	ClientStatusCompleted            ClientStatus = "completed"
	ClientStatusOnHold               ClientStatus = "on-hold"
	ClientStatusCancelledNoResponse  ClientStatus = "cancelled-no-response"
)

var clientStatuses = map[status]ClientStatus{
	entities.TicketStatusPending:               ClientStatusPendingReview,
	entities.TicketStatusConsultationScheduled: ClientStatusPendingReview,
	entities.TicketStatusConsultationCompleted: ClientStatusPendingReview,
	entities.TicketStatusDesignInProgress:      ClientStatusPendingReview,
	entities.TicketStatusCADInProgress:         ClientStatusPendingReview,
	entities.TicketStatusDesignRevision:        ClientStatusPendingReview,
	entities.TicketStatusQuotePreparing:        ClientStatusPendingReview,
	entities.TicketStatusQuoteRevision:         ClientStatusPendingReview,

	entities.TicketStatusDesignReview:       ClientStatusAwaitingYourResponse,
	entities.TicketStatusQuoteSent:          ClientStatusAwaitingYourResponse,
	entities.TicketStatusDepositInvoiceSent: ClientStatusAwaitingYourResponse,
	entities.TicketStatusFinalInvoiceSent:   ClientStatusAwaitingYourResponse,
	entities.TicketStatusWaitingForClient:   ClientStatusAwaitingYourResponse,

	entities.TicketStatusDesignApproved:       ClientStatusInProgress,
	entities.TicketStatusQuoteApproved:        ClientStatusInProgress,
	entities.TicketStatusDepositReceived:      ClientStatusInProgress,
	entities.TicketStatusPartsOrdered:         ClientStatusInProgress,
	entities.TicketStatusPartsReceived:        ClientStatusInProgress,
	entities.TicketStatusInProduction:         ClientStatusInProgress,
	entities.TicketStatusCasting:              ClientStatusInProgress,
	entities.TicketStatusStoneSetting:         ClientStatusInProgress,
	entities.TicketStatusPolishing:            ClientStatusInProgress,
	entities.TicketStatusQualityCheck:         ClientStatusInProgress,
	entities.TicketStatusProductionComplete:   ClientStatusInProgress,
	entities.TicketStatusFinalPaymentReceived: ClientStatusInProgress,
	entities.TicketStatusShipped:              ClientStatusInProgress,

	entities.TicketStatusReadyForPickup: ClientStatusReadyForPickup,
	entities.TicketStatusCompleted:      ClientStatusCompleted,
	entities.TicketStatusOnHold:         ClientStatusOnHold,
	entities.TicketStatusCancelled:      ClientStatusCancelledNoResponse,
	entities.TicketStatusDeadLead:       ClientStatusCancelledNoResponse,
}

// ClientStatusOf projects an internal status onto the customer-facing set.
// Unknown values report false.
func ClientStatusOf(s status) (ClientStatus, bool) {
	cs, ok := clientStatuses[s]
	return cs, ok
}
