package entities

import (
	"errors"
	"fmt"
	"time"
)

// ProductStatus is the coarse publication lifecycle of an artisan product.
type ProductStatus string

const (
	ProductStatusDraft           ProductStatus = "draft"
	ProductStatusPendingApproval ProductStatus = "pending-approval"
	ProductStatusPublished       ProductStatus = "published"
	ProductStatusArchived        ProductStatus = "archived"
)

func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusPendingApproval, ProductStatusPublished, ProductStatusArchived:
		return true
	}
	return false
}

var (
	ErrApprovedDraft        = errors.New("approved product cannot be in draft")
	ErrUnknownProductStatus = errors.New("unknown product status")
)

// ApprovalState is the decoupled (status, isApproved) pair of a product.
//
// The two dimensions are independent: admin review sets IsApproved, the
// publication lifecycle sets Status. The only cross-field rule is that an
// approved product is never a draft. The zero value is not valid; build values
// with NewApprovalState or DraftApprovalState.
type ApprovalState struct {
	status     ProductStatus
	isApproved bool
}

func NewApprovalState(status ProductStatus, isApproved bool) (ApprovalState, error) {
	if !status.IsValid() {
		return ApprovalState{}, fmt.Errorf("%w: %q", ErrUnknownProductStatus, status)
	}
	if isApproved && status == ProductStatusDraft {
		return ApprovalState{}, ErrApprovedDraft
	}
	return ApprovalState{status: status, isApproved: isApproved}, nil
}

func DraftApprovalState() ApprovalState {
	return ApprovalState{status: ProductStatusDraft}
}

func (a ApprovalState) Status() ProductStatus { return a.status }
func (a ApprovalState) IsApproved() bool      { return a.isApproved }

// Visible reports whether customers can see the product.
func (a ApprovalState) Visible() bool {
	return a.status == ProductStatusPublished && a.isApproved
}

func (a ApprovalState) WithStatus(status ProductStatus) (ApprovalState, error) {
	return NewApprovalState(status, a.isApproved)
}

func (a ApprovalState) WithApproval(isApproved bool) (ApprovalState, error) {
	return NewApprovalState(a.status, isApproved)
}

func (a ApprovalState) String() string {
	return fmt.Sprintf("%s/approved=%t", a.status, a.isApproved)
}

// Product is an artisan-submitted catalogue item.
//
// Storage model (DynamoDB):
//   - PK: id
//   - status and is_approved are separate attributes; is_approved is absent on
//     records written before the approval model was decoupled.
type Product struct {
	ID        string        `json:"id"`
	ArtisanID string        `json:"artisan_id"`
	Name      string        `json:"name"`
	Approval  ApprovalState `json:"-"`

	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ApprovedBy    string     `json:"approved_by,omitempty"`
	ApprovalNotes string     `json:"approval_notes,omitempty"`

	DeclinedAt    *time.Time `json:"declined_at,omitempty"`
	DeclinedBy    string     `json:"declined_by,omitempty"`
	DeclineReason string     `json:"decline_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApprovalStamp carries the audit fields written together with a new
// ApprovalState.
type ApprovalStamp struct {
	At            time.Time
	ApprovedBy    string
	ApprovalNotes string
	DeclinedBy    string
	DeclineReason string
}

// LegacyProductRecord is the raw approval view of a stored product used by the
// migrator. IsApproved is nil when the attribute is absent.
type LegacyProductRecord struct {
	ID         string
	Status     string
	IsApproved *bool
}

// NeedsMigration reports whether the record predates the decoupled model.
func (r LegacyProductRecord) NeedsMigration() bool {
	return r.IsApproved == nil
}

// PendingMigration reports whether the stored record had no decoupled approval
// state. Such products are read-only until the migrator has run.
func (p Product) PendingMigration() bool {
	return p.Approval == ApprovalState{}
}
