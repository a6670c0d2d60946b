package repository

import (
	"context"
	"fmt"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultTicketsTableName = "tickets"

type historyItem struct {
	Status    string `dynamodbav:"status"`
	Timestamp string `dynamodbav:"timestamp"`
	ChangedBy string `dynamodbav:"changed_by"`
	Reason    string `dynamodbav:"reason,omitempty"`
	Notes     string `dynamodbav:"notes,omitempty"`
	Action    string `dynamodbav:"action"`
}

type ticketItem struct {
	ID            string        `dynamodbav:"id"`
	CustomerID    string        `dynamodbav:"customer_id"`
	Title         string        `dynamodbav:"title"`
	Kind          string        `dynamodbav:"kind"`
	Status        string        `dynamodbav:"status"`
	PausedFrom    string        `dynamodbav:"paused_from,omitempty"`
	StatusHistory []historyItem `dynamodbav:"status_history"`

	DepositAmount    string `dynamodbav:"deposit_amount,omitempty"`
	DepositPaidAt    string `dynamodbav:"deposit_paid_at,omitempty"`
	DepositPaymentID string `dynamodbav:"deposit_payment_id,omitempty"`
	FinalAmount      string `dynamodbav:"final_amount,omitempty"`
	FinalPaidAt      string `dynamodbav:"final_paid_at,omitempty"`
	FinalPaymentID   string `dynamodbav:"final_payment_id,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// TicketDynamoRepository persists Ticket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status changes are a single UpdateItem guarded by the status the caller
// read; the history entry is appended in the same write.
type TicketDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb DynamoAPI, tableName string) *TicketDynamoRepository {
	return &TicketDynamoRepository{
		ddb:       ddb,
		tableName: orDefault(tableName, DefaultTicketsTableName),
	}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	av, err := attributevalue.MarshalMap(toTicketItem(t))
	if err != nil {
		return entities.Ticket{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	if len(out.Item) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func (r *TicketDynamoRepository) ApplyStatus(ctx context.Context, id string, w interfaces.StatusWrite) (entities.Ticket, error) {
	entry, err := attributevalue.Marshal([]historyItem{toHistoryItem(w.Entry)})
	if err != nil {
		return entities.Ticket{}, err
	}

	expr := "SET #status = :to, #updated_at = :updated_at, #history = list_append(if_not_exists(#history, :empty), :entry)"
	vals := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(w.To)},
		":expected":   &types.AttributeValueMemberS{Value: string(w.Expected)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(w.Entry.Timestamp)},
		":entry":      entry,
		":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
	}
	names := map[string]string{
		"#status":      "status",
		"#updated_at":  "updated_at",
		"#history":     "status_history",
		"#paused_from": "paused_from",
	}
	if w.PausedFrom != "" {
		expr += ", #paused_from = :paused_from"
		vals[":paused_from"] = &types.AttributeValueMemberS{Value: string(w.PausedFrom)}
	} else {
		expr += " REMOVE #paused_from"
	}

	return r.update(ctx, id, "#status = :expected", expr, vals, names)
}

func (r *TicketDynamoRepository) MarkPaid(ctx context.Context, id string, m interfaces.PaymentMarker) (entities.Ticket, error) {
	prefix := string(m.Kind)
	if !m.Kind.IsValid() {
		return entities.Ticket{}, fmt.Errorf("unknown invoice kind %q", m.Kind)
	}

	expr := "SET #amount = :amount, #paid_at = :paid_at, #payment_id = :payment_id, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":amount":     &types.AttributeValueMemberS{Value: decimalToString(m.Amount)},
		":paid_at":    &types.AttributeValueMemberS{Value: formatTime(m.PaidAt)},
		":payment_id": &types.AttributeValueMemberS{Value: m.PaymentID},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(m.PaidAt)},
	}
	names := map[string]string{
		"#amount":     prefix + "_amount",
		"#paid_at":    prefix + "_paid_at",
		"#payment_id": prefix + "_payment_id",
		"#updated_at": "updated_at",
	}
	return r.update(ctx, id, "", expr, vals, names)
}

// update runs a conditional UpdateItem on an existing ticket. A failed
// condition returns a zero Ticket and nil error.
func (r *TicketDynamoRepository) update(
	ctx context.Context,
	id string,
	cond string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Ticket, error) {
	condition := "attribute_exists(#id)"
	if cond != "" {
		condition += " AND " + cond
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Ticket{}, nil
		}
		return entities.Ticket{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Ticket{}, nil
	}
	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func toHistoryItem(e entities.StatusHistoryEntry) historyItem {
	return historyItem{
		Status:    string(e.Status),
		Timestamp: formatTime(e.Timestamp),
		ChangedBy: e.ChangedBy,
		Reason:    e.Reason,
		Notes:     e.Notes,
		Action:    string(e.Action),
	}
}

func fromHistoryItem(it historyItem) entities.StatusHistoryEntry {
	return entities.StatusHistoryEntry{
		Status:    entities.TicketStatus(it.Status),
		Timestamp: parseTime(it.Timestamp),
		ChangedBy: it.ChangedBy,
		Reason:    it.Reason,
		Notes:     it.Notes,
		Action:    entities.HistoryAction(it.Action),
	}
}

func toTicketItem(t entities.Ticket) ticketItem {
	history := make([]historyItem, 0, len(t.StatusHistory))
	for _, e := range t.StatusHistory {
		history = append(history, toHistoryItem(e))
	}
	it := ticketItem{
		ID:               t.ID,
		CustomerID:       t.CustomerID,
		Title:            t.Title,
		Kind:             string(t.Kind),
		Status:           string(t.Status),
		PausedFrom:       string(t.PausedFrom),
		StatusHistory:    history,
		DepositPaidAt:    formatOptionalTime(t.Financials.DepositPaidAt),
		DepositPaymentID: t.Financials.DepositPaymentID,
		FinalPaidAt:      formatOptionalTime(t.Financials.FinalPaidAt),
		FinalPaymentID:   t.Financials.FinalPaymentID,
		CreatedAt:        formatTime(t.CreatedAt),
		UpdatedAt:        formatTime(t.UpdatedAt),
	}
	if !t.Financials.DepositAmount.IsZero() {
		it.DepositAmount = decimalToString(t.Financials.DepositAmount)
	}
	if !t.Financials.FinalAmount.IsZero() {
		it.FinalAmount = decimalToString(t.Financials.FinalAmount)
	}
	return it
}

func fromTicketItem(it ticketItem) entities.Ticket {
	history := make([]entities.StatusHistoryEntry, 0, len(it.StatusHistory))
	for _, h := range it.StatusHistory {
		history = append(history, fromHistoryItem(h))
	}
	return entities.Ticket{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		Title:         it.Title,
		Kind:          entities.TicketKind(it.Kind),
		Status:        entities.TicketStatus(it.Status),
		PausedFrom:    entities.TicketStatus(it.PausedFrom),
		StatusHistory: history,
		Financials: entities.Financials{
			DepositAmount:    parseDecimal(it.DepositAmount),
			DepositPaidAt:    parseOptionalTime(it.DepositPaidAt),
			DepositPaymentID: it.DepositPaymentID,
			FinalAmount:      parseDecimal(it.FinalAmount),
			FinalPaidAt:      parseOptionalTime(it.FinalPaidAt),
			FinalPaymentID:   it.FinalPaymentID,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
