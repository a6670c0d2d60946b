package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IProductApprovalUseCase manages the (status, isApproved) pair of artisan
// products. Publication and approval stay independent dimensions; every write
// is conditional on the pair read before it.
type IProductApprovalUseCase interface {
	Create(ctx context.Context, name string, actor entities.Actor) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Submit(ctx context.Context, id string, actor entities.Actor) (entities.Product, error)
	Approve(ctx context.Context, id string, actor entities.Actor, notes string) (entities.Product, error)
	Decline(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Product, error)
	Unpublish(ctx context.Context, id string, actor entities.Actor) (entities.Product, error)
	Republish(ctx context.Context, id string, actor entities.Actor) (entities.Product, error)
}

type ProductApprovalUseCase struct {
	repo interfaces.IProductRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IProductApprovalUseCase = (*ProductApprovalUseCase)(nil)

func NewProductApprovalUseCase(repo interfaces.IProductRepository, log *zap.Logger) *ProductApprovalUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductApprovalUseCase{repo: repo, log: log, now: time.Now}
}

func (u *ProductApprovalUseCase) Create(ctx context.Context, name string, actor entities.Actor) (entities.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Product{}, invalidInput("product name is required")
	}
	if actor.ID == "" || (actor.Role != entities.RoleArtisan && !actor.IsAdmin()) {
		return entities.Product{}, ErrForbidden
	}

	now := u.now().UTC()
	p := entities.Product{
		ID:        uuid.NewString(),
		ArtisanID: actor.ID,
		Name:      name,
		Approval:  entities.DraftApprovalState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Product{}, storageErr("create product", err)
	}
	return created, nil
}

func (u *ProductApprovalUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, invalidInput("product id is required")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, storageErr("get product", err)
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductApprovalUseCase) Submit(ctx context.Context, id string, actor entities.Actor) (entities.Product, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ArtisanID != actor.ID {
		return entities.Product{}, ErrNotOwner
	}
	if p.Approval.Status() != entities.ProductStatusDraft {
		return entities.Product{}, fmt.Errorf("%w: submit requires draft, product is %s", ErrInvalidState, p.Approval)
	}
	next, err := p.Approval.WithStatus(entities.ProductStatusPendingApproval)
	if err != nil {
		return entities.Product{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return u.write(ctx, p, next, entities.ApprovalStamp{At: u.now().UTC()}, "submit", actor)
}

func (u *ProductApprovalUseCase) Approve(ctx context.Context, id string, actor entities.Actor, notes string) (entities.Product, error) {
	if !actor.IsAdmin() {
		return entities.Product{}, ErrForbidden
	}
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.Approval.Visible() {
		u.log.Debug("product already approved", zap.String("product_id", p.ID))
		return p, nil
	}
	if p.Approval.Status() != entities.ProductStatusPendingApproval {
		return entities.Product{}, fmt.Errorf("%w: approve requires pending-approval, product is %s", ErrInvalidState, p.Approval)
	}
	next, err := entities.NewApprovalState(entities.ProductStatusPublished, true)
	if err != nil {
		return entities.Product{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	stamp := entities.ApprovalStamp{
		At:            u.now().UTC(),
		ApprovedBy:    actor.ID,
		ApprovalNotes: strings.TrimSpace(notes),
	}
	return u.write(ctx, p, next, stamp, "approve", actor)
}

func (u *ProductApprovalUseCase) Decline(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Product, error) {
	if !actor.IsAdmin() {
		return entities.Product{}, ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Product{}, invalidInput("decline reason is required")
	}
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	switch p.Approval.Status() {
	case entities.ProductStatusPendingApproval, entities.ProductStatusPublished:
	default:
		return entities.Product{}, fmt.Errorf("%w: decline requires pending-approval or published, product is %s", ErrInvalidState, p.Approval)
	}
	next, err := entities.NewApprovalState(entities.ProductStatusDraft, false)
	if err != nil {
		return entities.Product{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	stamp := entities.ApprovalStamp{
		At:            u.now().UTC(),
		DeclinedBy:    actor.ID,
		DeclineReason: reason,
	}
	return u.write(ctx, p, next, stamp, "decline", actor)
}

// Unpublish takes a live product off the storefront without touching its
// approval.
func (u *ProductApprovalUseCase) Unpublish(ctx context.Context, id string, actor entities.Actor) (entities.Product, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ArtisanID != actor.ID && !actor.IsAdmin() {
		return entities.Product{}, ErrNotOwner
	}
	if p.Approval.Status() != entities.ProductStatusPublished {
		return entities.Product{}, fmt.Errorf("%w: unpublish requires published, product is %s", ErrInvalidState, p.Approval)
	}
	next, err := p.Approval.WithStatus(entities.ProductStatusArchived)
	if err != nil {
		return entities.Product{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return u.write(ctx, p, next, entities.ApprovalStamp{At: u.now().UTC()}, "unpublish", actor)
}

// Republish puts an archived, still-approved product back on the storefront.
func (u *ProductApprovalUseCase) Republish(ctx context.Context, id string, actor entities.Actor) (entities.Product, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ArtisanID != actor.ID && !actor.IsAdmin() {
		return entities.Product{}, ErrNotOwner
	}
	if p.Approval.Status() != entities.ProductStatusArchived || !p.Approval.IsApproved() {
		return entities.Product{}, fmt.Errorf("%w: republish requires archived and approved, product is %s", ErrInvalidState, p.Approval)
	}
	next, err := p.Approval.WithStatus(entities.ProductStatusPublished)
	if err != nil {
		return entities.Product{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return u.write(ctx, p, next, entities.ApprovalStamp{At: u.now().UTC()}, "republish", actor)
}

func (u *ProductApprovalUseCase) load(ctx context.Context, id string) (entities.Product, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.PendingMigration() {
		return entities.Product{}, fmt.Errorf("%w: product %s has not been migrated to the approval model", ErrInvalidState, p.ID)
	}
	return p, nil
}

func (u *ProductApprovalUseCase) write(ctx context.Context, p entities.Product, next entities.ApprovalState, stamp entities.ApprovalStamp, op string, actor entities.Actor) (entities.Product, error) {
	updated, err := u.repo.UpdateApproval(ctx, p.ID, p.Approval, next, stamp)
	if err != nil {
		return entities.Product{}, storageErr(op+" product", err)
	}
	if updated.ID == "" {
		return entities.Product{}, fmt.Errorf("%w: product %s changed since read", ErrInvalidState, p.ID)
	}
	u.log.Info("product approval updated",
		zap.String("product_id", p.ID),
		zap.String("op", op),
		zap.String("from", p.Approval.String()),
		zap.String("to", next.String()),
		zap.String("actor", actor.ID),
	)
	return updated, nil
}
