package workflow

import (
	"errors"
	"testing"
	"time"

	"atelier_ops/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineTableOnlyNamesKnownStatuses(t *testing.T) {
	for from, next := range pipeline {
		require.True(t, from.IsValid(), "unknown source %s", from)
		require.False(t, from.IsTerminal(), "terminal %s has pipeline successors", from)
		for _, to := range next {
			require.True(t, to.IsValid(), "unknown target %s from %s", to, from)
			require.NotEqual(t, from, to, "self loop on %s", from)
		}
	}
}

func TestEveryNonTerminalPipelineStatusHasAWayForward(t *testing.T) {
	for _, s := range entities.AllTicketStatuses() {
		if s.IsTerminal() || s.IsPaused() {
			continue
		}
		assert.NotEmpty(t, PipelineSuccessors(s), "dead end at %s", s)
	}
}

func TestSuccessors_SideStatesFromAnyNonTerminal(t *testing.T) {
	for _, s := range entities.AllTicketStatuses() {
		if s.IsTerminal() || s.IsPaused() {
			continue
		}
		next := Successors(s, "")
		assert.Contains(t, next, entities.TicketStatusOnHold, s)
		assert.Contains(t, next, entities.TicketStatusWaitingForClient, s)
		assert.Contains(t, next, entities.TicketStatusCancelled, s)
		if IsPrePayment(s) {
			assert.Contains(t, next, entities.TicketStatusDeadLead, s)
		} else {
			assert.NotContains(t, next, entities.TicketStatusDeadLead, s)
		}
	}
}

func TestSuccessors_TerminalIsAbsorbing(t *testing.T) {
	for _, s := range []entities.TicketStatus{entities.TicketStatusCompleted, entities.TicketStatusCancelled, entities.TicketStatusDeadLead} {
		assert.Empty(t, Successors(s, ""), s)
		for _, to := range entities.AllTicketStatuses() {
			_, err := Plan(entities.Ticket{Status: s}, to, "u1", "", "", time.Now())
			require.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", s, to)
		}
	}
}

func TestSuccessors_PausedResumesToOrigin(t *testing.T) {
	next := Successors(entities.TicketStatusOnHold, entities.TicketStatusCasting)
	assert.Contains(t, next, entities.TicketStatusCasting)
	assert.Contains(t, next, entities.TicketStatusWaitingForClient)
	assert.Contains(t, next, entities.TicketStatusCancelled)
	assert.NotContains(t, next, entities.TicketStatusOnHold)
	assert.NotContains(t, next, entities.TicketStatusPolishing)
	assert.NotContains(t, next, entities.TicketStatusDeadLead)

	assert.Contains(t, Successors(entities.TicketStatusWaitingForClient, entities.TicketStatusQuoteSent), entities.TicketStatusDeadLead)
}

func TestPlan_QuoteSentCannotSkipToDepositInvoice(t *testing.T) {
	ticket := entities.Ticket{Status: entities.TicketStatusQuoteSent}

	_, err := Plan(ticket, entities.TicketStatusDepositInvoiceSent, "staff-1", "", "", time.Now())
	require.ErrorIs(t, err, ErrInvalidTransition)

	var te *TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, entities.TicketStatusQuoteSent, te.From)
	assert.Equal(t, entities.TicketStatusDepositInvoiceSent, te.To)

	step, err := Plan(ticket, entities.TicketStatusQuoteApproved, "staff-1", "client signed", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusQuoteApproved, step.Entry.Status)
	assert.Equal(t, entities.HistoryActionTransition, step.Entry.Action)
	assert.Equal(t, "client signed", step.Entry.Reason)
}

func TestPlan_PausedFromBookkeeping(t *testing.T) {
	now := time.Now()
	ticket := entities.Ticket{Status: entities.TicketStatusPolishing}

	step, err := Plan(ticket, entities.TicketStatusOnHold, "staff-1", "waiting on stone", "", now)
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusPolishing, step.PausedFrom)

	ticket = entities.Ticket{Status: entities.TicketStatusOnHold, PausedFrom: entities.TicketStatusPolishing}
	step, err = Plan(ticket, entities.TicketStatusWaitingForClient, "staff-1", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusPolishing, step.PausedFrom)

	step, err = Plan(ticket, entities.TicketStatusPolishing, "staff-1", "", "", now)
	require.NoError(t, err)
	assert.Empty(t, step.PausedFrom)
}

func TestPlan_FinancialGuards(t *testing.T) {
	now := time.Now()
	ticket := entities.Ticket{Status: entities.TicketStatusDepositReceived}

	_, err := Plan(ticket, entities.TicketStatusPartsOrdered, "staff-1", "", "", now)
	require.ErrorIs(t, err, ErrPaymentRequired)

	paid := now.Add(-time.Hour)
	ticket.Financials.DepositPaidAt = &paid
	_, err = Plan(ticket, entities.TicketStatusPartsOrdered, "staff-1", "", "", now)
	require.NoError(t, err)

	ticket = entities.Ticket{Status: entities.TicketStatusFinalInvoiceSent}
	_, err = Plan(ticket, entities.TicketStatusFinalPaymentReceived, "staff-1", "", "", now)
	require.ErrorIs(t, err, ErrPaymentRequired)
}

func TestPlanReopen(t *testing.T) {
	now := time.Now()

	_, err := PlanReopen(entities.Ticket{Status: entities.TicketStatusQuoteSent}, entities.TicketStatusPending, "admin-1", "", now)
	require.ErrorIs(t, err, ErrNotTerminal)

	_, err = PlanReopen(entities.Ticket{Status: entities.TicketStatusDeadLead}, entities.TicketStatusCancelled, "admin-1", "", now)
	require.ErrorIs(t, err, ErrInvalidReopen)

	_, err = PlanReopen(entities.Ticket{Status: entities.TicketStatusDeadLead}, entities.TicketStatusOnHold, "admin-1", "", now)
	require.ErrorIs(t, err, ErrInvalidReopen)

	step, err := PlanReopen(entities.Ticket{Status: entities.TicketStatusDeadLead}, entities.TicketStatusQuotePreparing, "admin-1", "client came back", now)
	require.NoError(t, err)
	assert.Equal(t, entities.HistoryActionReopen, step.Entry.Action)
	assert.Equal(t, entities.TicketStatusDeadLead, step.From)
	assert.Equal(t, "admin-1", step.Entry.ChangedBy)
}

func TestClientStatusOf_IsTotal(t *testing.T) {
	for _, s := range entities.AllTicketStatuses() {
		cs, ok := ClientStatusOf(s)
		require.True(t, ok, "no client status for %s", s)
		require.NotEmpty(t, cs)
	}
	_, ok := ClientStatusOf("NOT_A_STATUS")
	assert.False(t, ok)
}

func TestClientStatusOf_Samples(t *testing.T) {
	cases := map[entities.TicketStatus]ClientStatus{
		entities.TicketStatusPending:          ClientStatusPendingReview,
		entities.TicketStatusQuoteSent:        ClientStatusAwaitingYourResponse,
		entities.TicketStatusCasting:          ClientStatusInProgress,
		entities.TicketStatusReadyForPickup:   ClientStatusReadyForPickup,
		entities.TicketStatusCompleted:        ClientStatusCompleted,
		entities.TicketStatusOnHold:           ClientStatusOnHold,
		entities.TicketStatusDeadLead:         ClientStatusCancelledNoResponse,
		entities.TicketStatusWaitingForClient: ClientStatusAwaitingYourResponse,
	}
	for s, want := range cases {
		got, _ := ClientStatusOf(s)
		assert.Equal(t, want, got, s)
	}
}
