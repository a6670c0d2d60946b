package repository

import (
	"context"
	"testing"

	"atelier_ops/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoicePaymentDynamoRepository_Create(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewInvoicePaymentDynamoRepository(ddb, "")

	p := entities.InvoicePayment{
		ID:                 "mp-1",
		TicketID:           "t-1",
		Kind:               entities.InvoiceKindDeposit,
		Amount:             decimal.RequireFromString("250.00"),
		Date:               repoNow,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":"mp-1"}`),
		ProviderPayload:    map[string]interface{}{"id": "mp-1"},
	}
	_, err := repo.Create(context.Background(), p)
	require.NoError(t, err)

	item := ddb.putIn[0].Item
	assert.Equal(t, DefaultPaymentsTableName, *ddb.putIn[0].TableName)
	assert.Equal(t, "250", str(item["amount"]))
	assert.Equal(t, "deposit", str(item["kind"]))
	assert.Equal(t, `{"id":"mp-1"}`, str(item["provider_payload_raw"]))
}

func TestInvoicePaymentDynamoRepository_ListByTicketID(t *testing.T) {
	first, err := attributevalue.MarshalMap(invoicePaymentItem{ID: "mp-1", TicketID: "t-1", Kind: "deposit", Amount: "250", Date: formatTime(repoNow), Status: "approved"})
	require.NoError(t, err)
	second, err := attributevalue.MarshalMap(invoicePaymentItem{ID: "mp-2", TicketID: "t-1", Kind: "final", Amount: "700", Date: formatTime(repoNow), Status: "pending"})
	require.NoError(t, err)

	ddb := &fakeDynamo{pages: [][]map[string]types.AttributeValue{{first}, {second}}}
	repo := NewInvoicePaymentDynamoRepository(ddb, "")

	got, err := repo.ListByTicketID(context.Background(), "t-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, paymentsTicketIDIndex, *ddb.queryIn[0].IndexName)
	assert.Equal(t, "t-1", str(ddb.queryIn[0].ExpressionAttributeValues[":tid"]))
	assert.Equal(t, entities.InvoiceKindFinal, got[1].Kind)
	assert.True(t, got[1].Amount.Equal(decimal.NewFromInt(700)))
}

func TestInvoicePaymentDynamoRepository_ListByTicketID_Empty(t *testing.T) {
	repo := NewInvoicePaymentDynamoRepository(&fakeDynamo{}, "")
	got, err := repo.ListByTicketID(context.Background(), "t-1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
