package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/domain/workflow"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ITicketWorkflowUseCase exposes the ticket lifecycle operations.
//
// Every status change goes through Transition or Reopen; both validate against
// the workflow table and write status + history in one conditional update.
type ITicketWorkflowUseCase interface {
	Create(ctx context.Context, in CreateTicketInput, actor entities.Actor) (entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	Transition(ctx context.Context, id string, to entities.TicketStatus, actor entities.Actor, reason, notes string) (TransitionResult, error)
	Reopen(ctx context.Context, id string, to entities.TicketStatus, actor entities.Actor, reason string) (TransitionResult, error)
	AllowedTransitions(ctx context.Context, id string) ([]entities.TicketStatus, error)
}

type CreateTicketInput struct {
	CustomerID string
	Title      string
	Kind       entities.TicketKind
	Notes      string
}

// TransitionResult is the persisted ticket and the history entry the call
// appended.
type TransitionResult struct {
	Ticket entities.Ticket
	Entry  entities.StatusHistoryEntry
}

type TicketWorkflowUseCase struct {
	repo     interfaces.ITicketRepository
	notifier interfaces.ITransitionNotifier
	log      *zap.Logger
	now      func() time.Time
}

var _ ITicketWorkflowUseCase = (*TicketWorkflowUseCase)(nil)

func NewTicketWorkflowUseCase(repo interfaces.ITicketRepository, notifier interfaces.ITransitionNotifier, log *zap.Logger) *TicketWorkflowUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &TicketWorkflowUseCase{repo: repo, notifier: notifier, log: log, now: time.Now}
}

func (u *TicketWorkflowUseCase) Create(ctx context.Context, in CreateTicketInput, actor entities.Actor) (entities.Ticket, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.Title = strings.TrimSpace(in.Title)
	if in.CustomerID == "" {
		return entities.Ticket{}, invalidInput("customer_id is required")
	}
	if in.Title == "" {
		return entities.Ticket{}, invalidInput("title is required")
	}
	if in.Kind == "" {
		in.Kind = entities.TicketKindCustom
	}
	if in.Kind != entities.TicketKindCustom && in.Kind != entities.TicketKindRepair {
		return entities.Ticket{}, invalidInput("unknown ticket kind %q", in.Kind)
	}
	if !actor.CanOperateTickets() {
		return entities.Ticket{}, ErrForbidden
	}

	now := u.now().UTC()
	t := entities.Ticket{
		ID:         uuid.NewString(),
		CustomerID: in.CustomerID,
		Title:      in.Title,
		Kind:       in.Kind,
		Status:     entities.TicketStatusPending,
		StatusHistory: []entities.StatusHistoryEntry{{
			Status:    entities.TicketStatusPending,
			Timestamp: now,
			ChangedBy: actor.ID,
			Notes:     strings.TrimSpace(in.Notes),
			Action:    entities.HistoryActionCreate,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.Ticket{}, storageErr("create ticket", err)
	}
	u.log.Info("ticket created", zap.String("ticket_id", created.ID), zap.String("kind", string(created.Kind)), zap.String("actor", actor.ID))
	return created, nil
}

func (u *TicketWorkflowUseCase) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ticket{}, invalidInput("ticket id is required")
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, storageErr("get ticket", err)
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

func (u *TicketWorkflowUseCase) Transition(ctx context.Context, id string, to entities.TicketStatus, actor entities.Actor, reason, notes string) (TransitionResult, error) {
	if !to.IsValid() {
		return TransitionResult{}, invalidInput("unknown status %q", to)
	}
	if !actor.CanOperateTickets() {
		return TransitionResult{}, ErrForbidden
	}

	t, err := u.GetByID(ctx, id)
	if err != nil {
		return TransitionResult{}, err
	}

	step, err := workflow.Plan(t, to, actor.ID, reason, notes, u.now())
	if err != nil {
		u.log.Info("ticket transition rejected",
			zap.String("ticket_id", t.ID),
			zap.String("from", string(t.Status)),
			zap.String("to", string(to)),
			zap.Error(err),
		)
		return TransitionResult{}, mapWorkflowErr(err)
	}
	return u.apply(ctx, t.ID, step, actor)
}

func (u *TicketWorkflowUseCase) Reopen(ctx context.Context, id string, to entities.TicketStatus, actor entities.Actor, reason string) (TransitionResult, error) {
	if !to.IsValid() {
		return TransitionResult{}, invalidInput("unknown status %q", to)
	}
	if !actor.IsAdmin() {
		return TransitionResult{}, ErrForbidden
	}
	if strings.TrimSpace(reason) == "" {
		return TransitionResult{}, invalidInput("reopen reason is required")
	}

	t, err := u.GetByID(ctx, id)
	if err != nil {
		return TransitionResult{}, err
	}

	step, err := workflow.PlanReopen(t, to, actor.ID, reason, u.now())
	if err != nil {
		return TransitionResult{}, mapWorkflowErr(err)
	}
	u.log.Warn("ticket reopened by admin override",
		zap.String("ticket_id", t.ID),
		zap.String("from", string(step.From)),
		zap.String("to", string(step.To)),
		zap.String("actor", actor.ID),
		zap.String("reason", step.Entry.Reason),
	)
	return u.apply(ctx, t.ID, step, actor)
}

func (u *TicketWorkflowUseCase) AllowedTransitions(ctx context.Context, id string) ([]entities.TicketStatus, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return workflow.Successors(t.Status, t.PausedFrom), nil
}

// apply performs the conditional write. A miss means another writer moved the
// ticket after it was read; the caller has to re-read before retrying.
func (u *TicketWorkflowUseCase) apply(ctx context.Context, id string, step workflow.Step, actor entities.Actor) (TransitionResult, error) {
	updated, err := u.repo.ApplyStatus(ctx, id, interfaces.StatusWrite{
		Expected:   step.From,
		To:         step.To,
		PausedFrom: step.PausedFrom,
		Entry:      step.Entry,
	})
	if err != nil {
		return TransitionResult{}, storageErr("apply status", err)
	}
	if updated.ID == "" {
		u.log.Info("ticket transition lost race",
			zap.String("ticket_id", id),
			zap.String("expected", string(step.From)),
			zap.String("to", string(step.To)),
		)
		return TransitionResult{}, fmt.Errorf("status changed since read: %w", &workflow.TransitionError{From: step.From, To: step.To})
	}

	u.log.Info("ticket transition applied",
		zap.String("ticket_id", id),
		zap.String("from", string(step.From)),
		zap.String("to", string(step.To)),
		zap.String("action", string(step.Entry.Action)),
		zap.String("actor", actor.ID),
	)

	if u.notifier != nil {
		u.notifier.NotifyTransition(ctx, interfaces.TransitionEvent{
			TicketID:   id,
			FromStatus: step.From,
			ToStatus:   step.To,
			Actor:      actor.ID,
			Action:     step.Entry.Action,
			Timestamp:  step.Entry.Timestamp,
		})
	}
	return TransitionResult{Ticket: updated, Entry: step.Entry}, nil
}

func mapWorkflowErr(err error) error {
	switch {
	case errors.Is(err, workflow.ErrInvalidTransition):
		return err
	case errors.Is(err, workflow.ErrPaymentRequired), errors.Is(err, workflow.ErrNotTerminal):
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	case errors.Is(err, workflow.ErrInvalidReopen):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}
