// Package workflow holds the ticket status state machine.
//
// The successor table below is the single source of truth for which status
// moves are legal. Review it together with ClientStatusOf whenever the
// entities.TicketStatus enum grows.
package workflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier_ops/internal/domain/entities"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPaymentRequired   = errors.New("payment precondition not met")
	ErrNotTerminal       = errors.New("ticket is not in a terminal status")
	ErrInvalidReopen     = errors.New("invalid reopen target")
)

// TransitionError names the rejected move. It matches ErrInvalidTransition
// with errors.Is.
type TransitionError struct {
	From entities.TicketStatus
	To   entities.TicketStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type status = entities.TicketStatus

// pipeline is the forward adjacency of the natural order
// intake -> design -> quoting -> payment -> production -> completion.
// Side states are added by Successors.
var pipeline = map[status][]status{
	entities.TicketStatusPending:               {entities.TicketStatusConsultationScheduled, entities.TicketStatusDesignInProgress, entities.TicketStatusQuotePreparing},
	entities.TicketStatusConsultationScheduled: {entities.TicketStatusConsultationCompleted},
	entities.TicketStatusConsultationCompleted: {entities.TicketStatusDesignInProgress, entities.TicketStatusQuotePreparing},

	entities.TicketStatusDesignInProgress: {entities.TicketStatusCADInProgress, entities.TicketStatusDesignReview},
	entities.TicketStatusCADInProgress:    {entities.TicketStatusDesignReview},
	entities.TicketStatusDesignReview:     {entities.TicketStatusDesignRevision, entities.TicketStatusDesignApproved},
	entities.TicketStatusDesignRevision:   {entities.TicketStatusDesignInProgress, entities.TicketStatusCADInProgress, entities.TicketStatusDesignReview},
	entities.TicketStatusDesignApproved:   {entities.TicketStatusQuotePreparing},

	entities.TicketStatusQuotePreparing: {entities.TicketStatusQuoteSent},
	entities.TicketStatusQuoteSent:      {entities.TicketStatusQuoteRevision, entities.TicketStatusQuoteApproved},
	entities.TicketStatusQuoteRevision:  {entities.TicketStatusQuoteSent},
	entities.TicketStatusQuoteApproved:  {entities.TicketStatusDepositInvoiceSent},

	entities.TicketStatusDepositInvoiceSent: {entities.TicketStatusDepositReceived},
	entities.TicketStatusDepositReceived:    {entities.TicketStatusPartsOrdered, entities.TicketStatusInProduction},

	entities.TicketStatusPartsOrdered:       {entities.TicketStatusPartsReceived},
	entities.TicketStatusPartsReceived:      {entities.TicketStatusInProduction},
	entities.TicketStatusInProduction:       {entities.TicketStatusCasting, entities.TicketStatusStoneSetting, entities.TicketStatusPolishing, entities.TicketStatusQualityCheck},
	entities.TicketStatusCasting:            {entities.TicketStatusStoneSetting, entities.TicketStatusPolishing},
	entities.TicketStatusStoneSetting:       {entities.TicketStatusPolishing},
	entities.TicketStatusPolishing:          {entities.TicketStatusQualityCheck},
	entities.TicketStatusQualityCheck:       {entities.TicketStatusProductionComplete, entities.TicketStatusInProduction},
	entities.TicketStatusProductionComplete: {entities.TicketStatusFinalInvoiceSent},

	entities.TicketStatusFinalInvoiceSent:     {entities.TicketStatusFinalPaymentReceived},
	entities.TicketStatusFinalPaymentReceived: {entities.TicketStatusReadyForPickup, entities.TicketStatusShipped},
	entities.TicketStatusReadyForPickup:       {entities.TicketStatusCompleted},
	entities.TicketStatusShipped:              {entities.TicketStatusCompleted},
}

// prePayment are the statuses from which a lead can still be dropped.
var prePayment = map[status]bool{
	entities.TicketStatusPending:               true,
	entities.TicketStatusConsultationScheduled: true,
	entities.TicketStatusConsultationCompleted: true,
	entities.TicketStatusDesignInProgress:      true,
	entities.TicketStatusCADInProgress:         true,
	entities.TicketStatusDesignReview:          true,
	entities.TicketStatusDesignRevision:        true,
	entities.TicketStatusDesignApproved:        true,
	entities.TicketStatusQuotePreparing:        true,
	entities.TicketStatusQuoteSent:             true,
	entities.TicketStatusQuoteRevision:         true,
	entities.TicketStatusQuoteApproved:         true,
	entities.TicketStatusDepositInvoiceSent:    true,
}

// guards gate entry into a status on the ticket's financial markers.
var guards = map[status]func(entities.Financials) error{
	entities.TicketStatusDepositReceived:      requireDeposit,
	entities.TicketStatusPartsOrdered:         requireDeposit,
	entities.TicketStatusInProduction:         requireDeposit,
	entities.TicketStatusFinalPaymentReceived: requireFinal,
	entities.TicketStatusReadyForPickup:       requireFinal,
	entities.TicketStatusShipped:              requireFinal,
}

func requireDeposit(f entities.Financials) error {
	if !f.DepositReceived() {
		return fmt.Errorf("%w: deposit not received", ErrPaymentRequired)
	}
	return nil
}

func requireFinal(f entities.Financials) error {
	if !f.FinalReceived() {
		return fmt.Errorf("%w: final payment not received", ErrPaymentRequired)
	}
	return nil
}

// IsPrePayment reports whether s precedes the deposit being received.
func IsPrePayment(s status) bool { return prePayment[s] }

// PipelineSuccessors returns the forward successors of s, without side states.
func PipelineSuccessors(s status) []status {
	next := pipeline[s]
	out := make([]status, len(next))
	copy(out, next)
	return out
}

// Successors returns every status reachable from current in one step.
// pausedFrom is only consulted when current is a side state.
func Successors(current, pausedFrom status) []status {
	if current.IsTerminal() || !current.IsValid() {
		return nil
	}

	var out []status
	origin := current
	if current.IsPaused() {
		origin = pausedFrom
		if pausedFrom.IsValid() && !pausedFrom.IsPaused() && !pausedFrom.IsTerminal() {
			out = append(out, pausedFrom)
		}
	} else {
		out = append(out, pipeline[current]...)
	}

	for _, side := range []status{entities.TicketStatusOnHold, entities.TicketStatusWaitingForClient} {
		if side != current {
			out = append(out, side)
		}
	}
	out = append(out, entities.TicketStatusCancelled)
	if prePayment[origin] {
		out = append(out, entities.TicketStatusDeadLead)
	}
	return out
}

// CanTransition reports whether to is in the successor set of current.
func CanTransition(current, pausedFrom, to status) bool {
	for _, s := range Successors(current, pausedFrom) {
		if s == to {
			return true
		}
	}
	return false
}

// Step is a validated status change ready to be written atomically.
type Step struct {
	From       status
	To         status
	PausedFrom status
	Entry      entities.StatusHistoryEntry
}

// Plan validates moving t to the target status and builds the history entry
// and the resulting PausedFrom marker.
func Plan(t entities.Ticket, to status, changedBy, reason, notes string, now time.Time) (Step, error) {
	if !CanTransition(t.Status, t.PausedFrom, to) {
		return Step{}, &TransitionError{From: t.Status, To: to}
	}
	if guard, ok := guards[to]; ok {
		if err := guard(t.Financials); err != nil {
			return Step{}, err
		}
	}

	paused := status("")
	switch {
	case to.IsPaused() && t.Status.IsPaused():
		paused = t.PausedFrom
	case to.IsPaused():
		paused = t.Status
	}

	return Step{
		From:       t.Status,
		To:         to,
		PausedFrom: paused,
		Entry: entities.StatusHistoryEntry{
			Status:    to,
			Timestamp: now.UTC(),
			ChangedBy: changedBy,
			Reason:    strings.TrimSpace(reason),
			Notes:     strings.TrimSpace(notes),
			Action:    entities.HistoryActionTransition,
		},
	}, nil
}

// PlanReopen builds the privileged move out of a terminal status. The target
// must be a non-terminal pipeline status; financial guards still apply.
func PlanReopen(t entities.Ticket, to status, changedBy, reason string, now time.Time) (Step, error) {
	if !t.Status.IsTerminal() {
		return Step{}, fmt.Errorf("%w: %s", ErrNotTerminal, t.Status)
	}
	if !to.IsValid() || to.IsTerminal() || to.IsPaused() {
		return Step{}, fmt.Errorf("%w: %s", ErrInvalidReopen, to)
	}
	if guard, ok := guards[to]; ok {
		if err := guard(t.Financials); err != nil {
			return Step{}, err
		}
	}
	return Step{
		From: t.Status,
		To:   to,
		Entry: entities.StatusHistoryEntry{
			Status:    to,
			Timestamp: now.UTC(),
			ChangedBy: changedBy,
			Reason:    strings.TrimSpace(reason),
			Action:    entities.HistoryActionReopen,
		},
	}, nil
}
