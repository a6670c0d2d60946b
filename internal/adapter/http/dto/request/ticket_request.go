package request

import (
	"strings"

	"atelier_ops/internal/domain/entities"
)

type CreateTicketRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Kind       string `json:"kind"`
	Notes      string `json:"notes"`
}

// TransitionRequest asks for a move to another internal status.
type TransitionRequest struct {
	To     string `json:"to" binding:"required"`
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

func (r TransitionRequest) Target() entities.TicketStatus {
	return entities.TicketStatus(strings.ToUpper(strings.TrimSpace(r.To)))
}

// ReopenRequest is the admin override out of a terminal status.
type ReopenRequest struct {
	To     string `json:"to" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

func (r ReopenRequest) Target() entities.TicketStatus {
	return entities.TicketStatus(strings.ToUpper(strings.TrimSpace(r.To)))
}
