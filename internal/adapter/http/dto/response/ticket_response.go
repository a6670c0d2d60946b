package response

import (
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/domain/workflow"
)

type StatusHistoryEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	ChangedBy string    `json:"changed_by"`
	Reason    string    `json:"reason,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Action    string    `json:"action"`
}

type FinancialsResponse struct {
	DepositAmount    string     `json:"deposit_amount,omitempty"`
	DepositPaidAt    *time.Time `json:"deposit_paid_at,omitempty"`
	DepositPaymentID string     `json:"deposit_payment_id,omitempty"`
	FinalAmount      string     `json:"final_amount,omitempty"`
	FinalPaidAt      *time.Time `json:"final_paid_at,omitempty"`
	FinalPaymentID   string     `json:"final_payment_id,omitempty"`
}

// TicketResponse exposes both the internal status and the coarse status shown
// to customers.
type TicketResponse struct {
	ID            string                       `json:"id"`
	CustomerID    string                       `json:"customer_id"`
	Title         string                       `json:"title"`
	Kind          string                       `json:"kind"`
	Status        string                       `json:"status"`
	ClientStatus  string                       `json:"client_status"`
	PausedFrom    string                       `json:"paused_from,omitempty"`
	StatusHistory []StatusHistoryEntryResponse `json:"status_history"`
	Financials    FinancialsResponse           `json:"financials"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

type TransitionResponse struct {
	Ticket TicketResponse             `json:"ticket"`
	Entry  StatusHistoryEntryResponse `json:"entry"`
}

type AllowedTransitionsResponse struct {
	TicketID string   `json:"ticket_id"`
	Allowed  []string `json:"allowed"`
}

func FromStatusHistoryEntry(e entities.StatusHistoryEntry) StatusHistoryEntryResponse {
	return StatusHistoryEntryResponse{
		Status:    string(e.Status),
		Timestamp: e.Timestamp,
		ChangedBy: e.ChangedBy,
		Reason:    e.Reason,
		Notes:     e.Notes,
		Action:    string(e.Action),
	}
}

func FromTicket(t entities.Ticket) TicketResponse {
	history := make([]StatusHistoryEntryResponse, 0, len(t.StatusHistory))
	for _, e := range t.StatusHistory {
		history = append(history, FromStatusHistoryEntry(e))
	}
	client, _ := workflow.ClientStatusOf(t.Status)

	fin := FinancialsResponse{
		DepositPaidAt:    t.Financials.DepositPaidAt,
		DepositPaymentID: t.Financials.DepositPaymentID,
		FinalPaidAt:      t.Financials.FinalPaidAt,
		FinalPaymentID:   t.Financials.FinalPaymentID,
	}
	if !t.Financials.DepositAmount.IsZero() {
		fin.DepositAmount = t.Financials.DepositAmount.String()
	}
	if !t.Financials.FinalAmount.IsZero() {
		fin.FinalAmount = t.Financials.FinalAmount.String()
	}

	return TicketResponse{
		ID:            t.ID,
		CustomerID:    t.CustomerID,
		Title:         t.Title,
		Kind:          string(t.Kind),
		Status:        string(t.Status),
		ClientStatus:  string(client),
		PausedFrom:    string(t.PausedFrom),
		StatusHistory: history,
		Financials:    fin,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func FromTransition(t entities.Ticket, e entities.StatusHistoryEntry) TransitionResponse {
	return TransitionResponse{Ticket: FromTicket(t), Entry: FromStatusHistoryEntry(e)}
}

func FromAllowedTransitions(ticketID string, allowed []entities.TicketStatus) AllowedTransitionsResponse {
	out := make([]string, 0, len(allowed))
	for _, s := range allowed {
		out = append(out, string(s))
	}
	return AllowedTransitionsResponse{TicketID: ticketID, Allowed: out}
}
