package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var repoNow = time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

func sampleTicket(status entities.TicketStatus) entities.Ticket {
	return entities.Ticket{
		ID:         "t-1",
		CustomerID: "c-1",
		Title:      "Signet ring",
		Kind:       entities.TicketKindCustom,
		Status:     status,
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.TicketStatusPending, Timestamp: repoNow, ChangedBy: "staff-1", Action: entities.HistoryActionCreate},
		},
		CreatedAt: repoNow,
		UpdatedAt: repoNow,
	}
}

func marshalTicket(t *testing.T, tk entities.Ticket) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toTicketItem(tk))
	require.NoError(t, err)
	return av
}

func TestTicketDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewTicketDynamoRepository(ddb, "")

	in := sampleTicket(entities.TicketStatusPending)
	_, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, ddb.putIn, 1)
	assert.Equal(t, DefaultTicketsTableName, *ddb.putIn[0].TableName)
	assert.Equal(t, "attribute_not_exists(#id)", *ddb.putIn[0].ConditionExpression)
	_, hasDeposit := ddb.putIn[0].Item["deposit_amount"]
	assert.False(t, hasDeposit)

	got, err := repo.GetByID(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, in.Status, got.Status)
	assert.Equal(t, in.StatusHistory, got.StatusHistory)
	assert.True(t, got.CreatedAt.Equal(repoNow))
	assert.True(t, *ddb.getIn[0].ConsistentRead)
}

func TestTicketDynamoRepository_GetByID_NotFound(t *testing.T) {
	repo := NewTicketDynamoRepository(&fakeDynamo{}, "tickets-test")
	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestTicketDynamoRepository_ApplyStatus(t *testing.T) {
	entry := entities.StatusHistoryEntry{
		Status:    entities.TicketStatusConsultationScheduled,
		Timestamp: repoNow.Add(time.Minute),
		ChangedBy: "staff-1",
		Action:    entities.HistoryActionTransition,
	}

	t.Run("guards on the status read", func(t *testing.T) {
		next := sampleTicket(entities.TicketStatusConsultationScheduled)
		next.StatusHistory = append(next.StatusHistory, entry)
		ddb := &fakeDynamo{updateOut: marshalTicket(t, next)}
		repo := NewTicketDynamoRepository(ddb, "")

		got, err := repo.ApplyStatus(context.Background(), "t-1", interfaces.StatusWrite{
			Expected: entities.TicketStatusPending,
			To:       entities.TicketStatusConsultationScheduled,
			Entry:    entry,
		})
		require.NoError(t, err)
		assert.Equal(t, entities.TicketStatusConsultationScheduled, got.Status)
		assert.Len(t, got.StatusHistory, 2)

		in := ddb.updateIn[0]
		assert.Equal(t, "attribute_exists(#id) AND #status = :expected", *in.ConditionExpression)
		assert.Contains(t, *in.UpdateExpression, "list_append(if_not_exists(#history, :empty), :entry)")
		assert.Contains(t, *in.UpdateExpression, "REMOVE #paused_from")
		assert.Equal(t, "PENDING", str(in.ExpressionAttributeValues[":expected"]))
		assert.Equal(t, "CONSULTATION_SCHEDULED", str(in.ExpressionAttributeValues[":to"]))
		assert.Equal(t, "id", in.ExpressionAttributeNames["#id"])
		assert.Equal(t, types.ReturnValueAllNew, in.ReturnValues)
	})

	t.Run("hold records the paused-from status", func(t *testing.T) {
		ddb := &fakeDynamo{updateOut: marshalTicket(t, sampleTicket(entities.TicketStatusOnHold))}
		repo := NewTicketDynamoRepository(ddb, "")

		_, err := repo.ApplyStatus(context.Background(), "t-1", interfaces.StatusWrite{
			Expected:   entities.TicketStatusDesignInProgress,
			To:         entities.TicketStatusOnHold,
			PausedFrom: entities.TicketStatusDesignInProgress,
			Entry:      entry,
		})
		require.NoError(t, err)
		in := ddb.updateIn[0]
		assert.Contains(t, *in.UpdateExpression, "#paused_from = :paused_from")
		assert.NotContains(t, *in.UpdateExpression, "REMOVE")
		assert.Equal(t, "DESIGN_IN_PROGRESS", str(in.ExpressionAttributeValues[":paused_from"]))
	})

	t.Run("lost race returns a zero ticket", func(t *testing.T) {
		repo := NewTicketDynamoRepository(&fakeDynamo{updateErr: conditionFailed()}, "")
		got, err := repo.ApplyStatus(context.Background(), "t-1", interfaces.StatusWrite{
			Expected: entities.TicketStatusPending,
			To:       entities.TicketStatusConsultationScheduled,
			Entry:    entry,
		})
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("other errors surface", func(t *testing.T) {
		repo := NewTicketDynamoRepository(&fakeDynamo{updateErr: errors.New("throttled")}, "")
		_, err := repo.ApplyStatus(context.Background(), "t-1", interfaces.StatusWrite{Entry: entry})
		assert.EqualError(t, err, "throttled")
	})
}

func TestTicketDynamoRepository_MarkPaid(t *testing.T) {
	paid := sampleTicket(entities.TicketStatusDepositInvoiceSent)
	paidAt := repoNow
	paid.Financials.DepositAmount = decimal.RequireFromString("120.50")
	paid.Financials.DepositPaidAt = &paidAt
	paid.Financials.DepositPaymentID = "mp-1"

	ddb := &fakeDynamo{updateOut: marshalTicket(t, paid)}
	repo := NewTicketDynamoRepository(ddb, "")

	got, err := repo.MarkPaid(context.Background(), "t-1", interfaces.PaymentMarker{
		Kind:      entities.InvoiceKindDeposit,
		Amount:    decimal.RequireFromString("120.50"),
		PaidAt:    paidAt,
		PaymentID: "mp-1",
	})
	require.NoError(t, err)
	assert.True(t, got.Financials.DepositReceived())
	assert.Equal(t, "120.5", got.Financials.DepositAmount.String())

	in := ddb.updateIn[0]
	assert.Equal(t, "attribute_exists(#id)", *in.ConditionExpression)
	assert.Equal(t, "deposit_amount", in.ExpressionAttributeNames["#amount"])
	assert.Equal(t, "deposit_payment_id", in.ExpressionAttributeNames["#payment_id"])
	assert.Equal(t, "120.5", str(in.ExpressionAttributeValues[":amount"]))

	_, err = repo.MarkPaid(context.Background(), "t-1", interfaces.PaymentMarker{Kind: "tip"})
	assert.Error(t, err)
}
