package response

import (
	"time"

	"atelier_ops/internal/domain/entities"
)

type ProductResponse struct {
	ID               string     `json:"id"`
	ArtisanID        string     `json:"artisan_id"`
	Name             string     `json:"name"`
	Status           string     `json:"status"`
	IsApproved       bool       `json:"is_approved"`
	Visible          bool       `json:"visible"`
	PendingMigration bool       `json:"pending_migration,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	ApprovedBy       string     `json:"approved_by,omitempty"`
	ApprovalNotes    string     `json:"approval_notes,omitempty"`
	DeclinedAt       *time.Time `json:"declined_at,omitempty"`
	DeclinedBy       string     `json:"declined_by,omitempty"`
	DeclineReason    string     `json:"decline_reason,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		ArtisanID:        p.ArtisanID,
		Name:             p.Name,
		Status:           string(p.Approval.Status()),
		IsApproved:       p.Approval.IsApproved(),
		Visible:          p.Approval.Visible(),
		PendingMigration: p.PendingMigration(),
		ApprovedAt:       p.ApprovedAt,
		ApprovedBy:       p.ApprovedBy,
		ApprovalNotes:    p.ApprovalNotes,
		DeclinedAt:       p.DeclinedAt,
		DeclinedBy:       p.DeclinedBy,
		DeclineReason:    p.DeclineReason,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
