package response

import (
	"errors"
	"testing"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/domain/pricing"
	"atelier_ops/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromTicket(t *testing.T) {
	now := time.Now().UTC()
	paid := now.Add(-time.Hour)
	tk := entities.Ticket{
		ID:         "t-1",
		CustomerID: "c-1",
		Title:      "Engagement ring",
		Kind:       entities.TicketKindCustom,
		Status:     entities.TicketStatusInProduction,
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.TicketStatusPending, Timestamp: now, ChangedBy: "staff-1", Action: entities.HistoryActionCreate},
		},
		Financials: entities.Financials{DepositAmount: decimal.RequireFromString("500.50"), DepositPaidAt: &paid},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromTicket(tk)
	if res.ID != "t-1" || res.Status != "IN_PRODUCTION" || res.ClientStatus == "" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.StatusHistory) != 1 || res.StatusHistory[0].Action != "create" {
		t.Fatalf("unexpected history: %+v", res.StatusHistory)
	}
	if res.Financials.DepositAmount != "500.5" || res.Financials.FinalAmount != "" {
		t.Fatalf("unexpected financials: %+v", res.Financials)
	}
}

func TestFromProduct(t *testing.T) {
	state, err := entities.NewApprovalState(entities.ProductStatusPublished, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := FromProduct(entities.Product{ID: "p-1", ArtisanID: "a-1", Name: "Opal pendant", Approval: state})
	if res.Status != "published" || !res.IsApproved || !res.Visible || res.PendingMigration {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}

	legacy := FromProduct(entities.Product{ID: "p-2"})
	if !legacy.PendingMigration || legacy.Visible {
		t.Fatalf("expected pending migration: %+v", legacy)
	}
}

func TestFromBatchResult(t *testing.T) {
	r := usecase.BatchResult{
		Total:   3,
		Updated: 2,
		Failed:  1,
		Failures: []pricing.RecordFailure{
			{Kind: entities.CostableProcess, ID: "proc-9", Err: errors.New("unknown skill level \"grandmaster\"")},
		},
	}
	res := FromBatchResult(r)
	if res.Total != 3 || res.Updated != 2 || res.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if len(res.Failures) != 1 || res.Failures[0].Kind != "process" || res.Failures[0].Reason == "" {
		t.Fatalf("unexpected failures: %+v", res.Failures)
	}
}

func TestFromInvoicePayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.InvoicePayment{
		ID:                 "pay-1",
		TicketID:           "t-1",
		Kind:               entities.InvoiceKindDeposit,
		Amount:             decimal.NewFromInt(250),
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":"pay-1"}`),
	}
	res := FromInvoicePayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" || res.TicketID != "t-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != "250" || res.Kind != "deposit" || res.Status != "approved" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.PaymentDate.Equal(now) || res.ProviderPayloadRaw != `{"id":"pay-1"}` {
		t.Fatalf("unexpected payload/date: %+v", res)
	}
}
