package usecase

import (
	"context"
	"sync"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"
)

// memTicketRepo mirrors the DynamoDB repository's conditional semantics so
// concurrent callers can race on a single ticket.
type memTicketRepo struct {
	mu      sync.Mutex
	tickets map[string]entities.Ticket
}

var _ interfaces.ITicketRepository = (*memTicketRepo)(nil)

func newMemTicketRepo(ts ...entities.Ticket) *memTicketRepo {
	r := &memTicketRepo{tickets: map[string]entities.Ticket{}}
	for _, t := range ts {
		r.tickets[t.ID] = t
	}
	return r
}

func (r *memTicketRepo) Create(_ context.Context, t entities.Ticket) (entities.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[t.ID] = t
	return t, nil
}

func (r *memTicketRepo) GetByID(_ context.Context, id string) (entities.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.tickets[id]
	t.StatusHistory = append([]entities.StatusHistoryEntry(nil), t.StatusHistory...)
	return t, nil
}

func (r *memTicketRepo) ApplyStatus(_ context.Context, id string, w interfaces.StatusWrite) (entities.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[id]
	if !ok || t.Status != w.Expected {
		return entities.Ticket{}, nil
	}
	t.Status = w.To
	t.PausedFrom = w.PausedFrom
	t.UpdatedAt = w.Entry.Timestamp
	t.StatusHistory = append(append([]entities.StatusHistoryEntry(nil), t.StatusHistory...), w.Entry)
	r.tickets[id] = t
	return t, nil
}

func (r *memTicketRepo) MarkPaid(_ context.Context, id string, m interfaces.PaymentMarker) (entities.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[id]
	if !ok {
		return entities.Ticket{}, nil
	}
	paidAt := m.PaidAt
	switch m.Kind {
	case entities.InvoiceKindDeposit:
		t.Financials.DepositAmount = m.Amount
		t.Financials.DepositPaidAt = &paidAt
		t.Financials.DepositPaymentID = m.PaymentID
	case entities.InvoiceKindFinal:
		t.Financials.FinalAmount = m.Amount
		t.Financials.FinalPaidAt = &paidAt
		t.Financials.FinalPaymentID = m.PaymentID
	}
	r.tickets[id] = t
	return t, nil
}

// memProductRepo keeps raw approval records so legacy, unmigrated products
// can be represented.
type memProductRepo struct {
	mu       sync.Mutex
	products map[string]entities.Product
	legacy   map[string]string
}

var _ interfaces.IProductRepository = (*memProductRepo)(nil)

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]entities.Product{}, legacy: map[string]string{}}
}

func (r *memProductRepo) addLegacy(id, status string) {
	r.legacy[id] = status
	r.products[id] = entities.Product{ID: id, ArtisanID: "artisan-1", Name: id}
}

func (r *memProductRepo) Create(_ context.Context, p entities.Product) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return p, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id], nil
}

func (r *memProductRepo) UpdateApproval(_ context.Context, id string, expected, next entities.ApprovalState, stamp entities.ApprovalStamp) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.PendingMigration() || p.Approval != expected {
		return entities.Product{}, nil
	}
	p.Approval = next
	p.UpdatedAt = stamp.At
	if stamp.ApprovedBy != "" {
		at := stamp.At
		p.ApprovedAt, p.ApprovedBy, p.ApprovalNotes = &at, stamp.ApprovedBy, stamp.ApprovalNotes
	}
	if stamp.DeclinedBy != "" {
		at := stamp.At
		p.DeclinedAt, p.DeclinedBy, p.DeclineReason = &at, stamp.DeclinedBy, stamp.DeclineReason
	}
	r.products[id] = p
	return p, nil
}

func (r *memProductRepo) ScanApprovalRecords(_ context.Context) ([]entities.LegacyProductRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.LegacyProductRecord, 0, len(r.products))
	for id, p := range r.products {
		if p.PendingMigration() {
			out = append(out, entities.LegacyProductRecord{ID: id, Status: r.legacy[id]})
			continue
		}
		approved := p.Approval.IsApproved()
		out = append(out, entities.LegacyProductRecord{ID: id, Status: string(p.Approval.Status()), IsApproved: &approved})
	}
	return out, nil
}

func (r *memProductRepo) MigrateApproval(_ context.Context, id string, _ string, next entities.ApprovalState) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || !p.PendingMigration() {
		return false, nil
	}
	p.Approval = next
	r.products[id] = p
	delete(r.legacy, id)
	return true, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []interfaces.TransitionEvent
}

func (n *recordingNotifier) NotifyTransition(_ context.Context, evt interfaces.TransitionEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, evt)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}
