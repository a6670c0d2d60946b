package repository

import (
	"context"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultProductsTableName = "products"

type productItem struct {
	ID         string `dynamodbav:"id"`
	ArtisanID  string `dynamodbav:"artisan_id"`
	Name       string `dynamodbav:"name"`
	Status     string `dynamodbav:"status"`
	IsApproved *bool  `dynamodbav:"is_approved,omitempty"`

	ApprovedAt    string `dynamodbav:"approved_at,omitempty"`
	ApprovedBy    string `dynamodbav:"approved_by,omitempty"`
	ApprovalNotes string `dynamodbav:"approval_notes,omitempty"`
	DeclinedAt    string `dynamodbav:"declined_at,omitempty"`
	DeclinedBy    string `dynamodbav:"declined_by,omitempty"`
	DeclineReason string `dynamodbav:"decline_reason,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Records written before the approval flag existed have no BOOL is_approved
// attribute; they surface as products pending migration.
type ProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, tableName string) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: orDefault(tableName, DefaultProductsTableName),
		now:       time.Now,
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	return decodeProduct(out.Item)
}

// UpdateApproval moves the (status, is_approved) pair only while both still
// hold the expected values.
func (r *ProductDynamoRepository) UpdateApproval(ctx context.Context, id string, expected, next entities.ApprovalState, stamp entities.ApprovalStamp) (entities.Product, error) {
	at := stamp.At
	if at.IsZero() {
		at = r.now()
	}

	expr := "SET #status = :status, #is_approved = :is_approved, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":            &types.AttributeValueMemberS{Value: string(next.Status())},
		":is_approved":       &types.AttributeValueMemberBOOL{Value: next.IsApproved()},
		":updated_at":        &types.AttributeValueMemberS{Value: formatTime(at)},
		":expected_status":   &types.AttributeValueMemberS{Value: string(expected.Status())},
		":expected_approved": &types.AttributeValueMemberBOOL{Value: expected.IsApproved()},
	}
	names := map[string]string{
		"#id":          "id",
		"#status":      "status",
		"#is_approved": "is_approved",
		"#updated_at":  "updated_at",
	}
	if stamp.ApprovedBy != "" {
		expr += ", #approved_at = :stamp_at, #approved_by = :approved_by, #approval_notes = :approval_notes"
		vals[":stamp_at"] = &types.AttributeValueMemberS{Value: formatTime(at)}
		vals[":approved_by"] = &types.AttributeValueMemberS{Value: stamp.ApprovedBy}
		vals[":approval_notes"] = &types.AttributeValueMemberS{Value: stamp.ApprovalNotes}
		names["#approved_at"] = "approved_at"
		names["#approved_by"] = "approved_by"
		names["#approval_notes"] = "approval_notes"
	}
	if stamp.DeclinedBy != "" {
		expr += ", #declined_at = :stamp_at, #declined_by = :declined_by, #decline_reason = :decline_reason"
		vals[":stamp_at"] = &types.AttributeValueMemberS{Value: formatTime(at)}
		vals[":declined_by"] = &types.AttributeValueMemberS{Value: stamp.DeclinedBy}
		vals[":decline_reason"] = &types.AttributeValueMemberS{Value: stamp.DeclineReason}
		names["#declined_at"] = "declined_at"
		names["#declined_by"] = "declined_by"
		names["#decline_reason"] = "decline_reason"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected_status AND #is_approved = :expected_approved"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	return decodeProduct(out.Attributes)
}

// ScanApprovalRecords reads only the approval attributes of every product.
func (r *ProductDynamoRepository) ScanApprovalRecords(ctx context.Context) ([]entities.LegacyProductRecord, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("#id, #status, #is_approved"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#is_approved": "is_approved",
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.LegacyProductRecord, 0, len(raw))
	for _, item := range raw {
		rec := entities.LegacyProductRecord{}
		if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
			rec.ID = v.Value
		}
		if v, ok := item["status"].(*types.AttributeValueMemberS); ok {
			rec.Status = v.Value
		}
		rec.IsApproved = approvalFlag(item["is_approved"])
		out = append(out, rec)
	}
	return out, nil
}

// MigrateApproval writes the decoupled pair only while is_approved is still
// absent or not a BOOL. It reports false when another run got there first.
func (r *ProductDynamoRepository) MigrateApproval(ctx context.Context, id string, legacyStatus string, next entities.ApprovalState) (bool, error) {
	now := formatTime(r.now())
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#is_approved) OR NOT attribute_type(#is_approved, :bool_type))"),
		UpdateExpression:    aws.String("SET #status = :status, #is_approved = :is_approved, #legacy_status = :legacy_status, #migrated_at = :now, #updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: string(next.Status())},
			":is_approved":   &types.AttributeValueMemberBOOL{Value: next.IsApproved()},
			":legacy_status": &types.AttributeValueMemberS{Value: legacyStatus},
			":now":           &types.AttributeValueMemberS{Value: now},
			":bool_type":     &types.AttributeValueMemberS{Value: "BOOL"},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#status":        "status",
			"#is_approved":   "is_approved",
			"#legacy_status": "legacy_status",
			"#migrated_at":   "migrated_at",
			"#updated_at":    "updated_at",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// approvalFlag reads is_approved. Only a BOOL counts; string or number
// spellings from older writers are treated as absent so the migrator
// rewrites them.
func approvalFlag(av types.AttributeValue) *bool {
	if v, ok := av.(*types.AttributeValueMemberBOOL); ok {
		return aws.Bool(v.Value)
	}
	return nil
}

// decodeProduct unmarshals a stored product, reading is_approved through
// approvalFlag so legacy spellings surface as pending migration.
func decodeProduct(item map[string]types.AttributeValue) (entities.Product, error) {
	rest := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		if k != "is_approved" {
			rest[k] = v
		}
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(rest, &it); err != nil {
		return entities.Product{}, err
	}
	it.IsApproved = approvalFlag(item["is_approved"])
	return fromProductItem(it), nil
}

func toProductItem(p entities.Product) productItem {
	it := productItem{
		ID:            p.ID,
		ArtisanID:     p.ArtisanID,
		Name:          p.Name,
		ApprovedAt:    formatOptionalTime(p.ApprovedAt),
		ApprovedBy:    p.ApprovedBy,
		ApprovalNotes: p.ApprovalNotes,
		DeclinedAt:    formatOptionalTime(p.DeclinedAt),
		DeclinedBy:    p.DeclinedBy,
		DeclineReason: p.DeclineReason,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
	if !p.PendingMigration() {
		it.Status = string(p.Approval.Status())
		it.IsApproved = aws.Bool(p.Approval.IsApproved())
	}
	return it
}

func fromProductItem(it productItem) entities.Product {
	p := entities.Product{
		ID:            it.ID,
		ArtisanID:     it.ArtisanID,
		Name:          it.Name,
		ApprovedAt:    parseOptionalTime(it.ApprovedAt),
		ApprovedBy:    it.ApprovedBy,
		ApprovalNotes: it.ApprovalNotes,
		DeclinedAt:    parseOptionalTime(it.DeclinedAt),
		DeclinedBy:    it.DeclinedBy,
		DeclineReason: it.DeclineReason,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.IsApproved != nil {
		if state, err := entities.NewApprovalState(entities.ProductStatus(it.Status), *it.IsApproved); err == nil {
			p.Approval = state
		}
	}
	return p
}
