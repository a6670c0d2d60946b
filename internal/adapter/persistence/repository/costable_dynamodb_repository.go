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

const (
	DefaultMaterialsTableName = "materials"
	DefaultProcessesTableName = "processes"
)

type pricingItem struct {
	BaseCost           string `dynamodbav:"base_cost"`
	MarkedUpCost       string `dynamodbav:"marked_up_cost"`
	LaborCost          string `dynamodbav:"labor_cost"`
	MaterialsCost      string `dynamodbav:"materials_cost"`
	TotalCost          string `dynamodbav:"total_cost"`
	LaborRate          string `dynamodbav:"labor_rate"`
	MaterialMarkup     string `dynamodbav:"material_markup"`
	BusinessMultiplier string `dynamodbav:"business_multiplier"`
	Formula            string `dynamodbav:"formula"`
	CalculatedAt       string `dynamodbav:"calculated_at"`
}

type materialItem struct {
	ID       string       `dynamodbav:"id"`
	Name     string       `dynamodbav:"name"`
	Unit     string       `dynamodbav:"unit"`
	UnitCost string       `dynamodbav:"unit_cost"`
	Pricing  *pricingItem `dynamodbav:"pricing,omitempty"`
}

type processItem struct {
	ID                string       `dynamodbav:"id"`
	Name              string       `dynamodbav:"name"`
	LaborHours        string       `dynamodbav:"labor_hours"`
	SkillLevel        string       `dynamodbav:"skill_level"`
	BaseMaterialsCost string       `dynamodbav:"base_materials_cost"`
	Pricing           *pricingItem `dynamodbav:"pricing,omitempty"`
}

// CostableDynamoRepository persists materials and processes, each with its
// embedded pricing breakdown.
//
// Table requirements (both tables):
//   - PK: id (string)
type CostableDynamoRepository struct {
	ddb            DynamoAPI
	materialsTable string
	processesTable string
}

var _ interfaces.ICostableRepository = (*CostableDynamoRepository)(nil)

func NewCostableDynamoRepository(ddb DynamoAPI, materialsTable, processesTable string) *CostableDynamoRepository {
	return &CostableDynamoRepository{
		ddb:            ddb,
		materialsTable: orDefault(materialsTable, DefaultMaterialsTableName),
		processesTable: orDefault(processesTable, DefaultProcessesTableName),
	}
}

// ListMaterials decodes each item on its own; undecodable items come back as
// malformed records and the rest of the listing is kept.
func (r *CostableDynamoRepository) ListMaterials(ctx context.Context) ([]entities.Material, []entities.MalformedCostable, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.materialsTable)})
	if err != nil {
		return nil, nil, err
	}
	out := make([]entities.Material, 0, len(raw))
	var bad []entities.MalformedCostable
	for _, item := range raw {
		m, err := decodeMaterial(item)
		if err != nil {
			bad = append(bad, entities.MalformedCostable{Kind: entities.CostableMaterial, ID: itemID(item), Err: err})
			continue
		}
		out = append(out, m)
	}
	return out, bad, nil
}

func (r *CostableDynamoRepository) ListProcesses(ctx context.Context) ([]entities.Process, []entities.MalformedCostable, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.processesTable)})
	if err != nil {
		return nil, nil, err
	}
	out := make([]entities.Process, 0, len(raw))
	var bad []entities.MalformedCostable
	for _, item := range raw {
		p, err := decodeProcess(item)
		if err != nil {
			bad = append(bad, entities.MalformedCostable{Kind: entities.CostableProcess, ID: itemID(item), Err: err})
			continue
		}
		out = append(out, p)
	}
	return out, bad, nil
}

func (r *CostableDynamoRepository) GetMaterial(ctx context.Context, id string) (entities.Material, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.materialsTable),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}
	return decodeMaterial(out.Item)
}

// ReplacePricing overwrites the pricing map of one record in a single write.
func (r *CostableDynamoRepository) ReplacePricing(ctx context.Context, kind entities.CostableKind, id string, p entities.PricingComponents) (bool, error) {
	var table string
	switch kind {
	case entities.CostableMaterial:
		table = r.materialsTable
	case entities.CostableProcess:
		table = r.processesTable
	default:
		return false, fmt.Errorf("unknown costable kind %q", kind)
	}

	av, err := attributevalue.Marshal(toPricingItem(p))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(table),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #pricing = :pricing"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pricing": av,
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#pricing": "pricing",
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

func toPricingItem(p entities.PricingComponents) pricingItem {
	return pricingItem{
		BaseCost:           decimalToString(p.BaseCost),
		MarkedUpCost:       decimalToString(p.MarkedUpCost),
		LaborCost:          decimalToString(p.LaborCost),
		MaterialsCost:      decimalToString(p.MaterialsCost),
		TotalCost:          decimalToString(p.TotalCost),
		LaborRate:          decimalToString(p.LaborRate),
		MaterialMarkup:     decimalToString(p.MaterialMarkup),
		BusinessMultiplier: decimalToString(p.BusinessMultiplier),
		Formula:            p.Formula,
		CalculatedAt:       formatTime(p.CalculatedAt),
	}
}

func fromPricingItem(it *pricingItem) entities.PricingComponents {
	if it == nil {
		return entities.PricingComponents{}
	}
	return entities.PricingComponents{
		BaseCost:           parseDecimal(it.BaseCost),
		MarkedUpCost:       parseDecimal(it.MarkedUpCost),
		LaborCost:          parseDecimal(it.LaborCost),
		MaterialsCost:      parseDecimal(it.MaterialsCost),
		TotalCost:          parseDecimal(it.TotalCost),
		LaborRate:          parseDecimal(it.LaborRate),
		MaterialMarkup:     parseDecimal(it.MaterialMarkup),
		BusinessMultiplier: parseDecimal(it.BusinessMultiplier),
		Formula:            it.Formula,
		CalculatedAt:       parseTime(it.CalculatedAt),
	}
}

func decodeMaterial(item map[string]types.AttributeValue) (entities.Material, error) {
	var it materialItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Material{}, fmt.Errorf("%w: %w", entities.ErrMalformedRecord, err)
	}
	unitCost, err := requireDecimal("unit_cost", it.UnitCost)
	if err != nil {
		return entities.Material{}, err
	}
	return entities.Material{
		ID:       it.ID,
		Name:     it.Name,
		Unit:     it.Unit,
		UnitCost: unitCost,
		Pricing:  fromPricingItem(it.Pricing),
	}, nil
}

func decodeProcess(item map[string]types.AttributeValue) (entities.Process, error) {
	var it processItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Process{}, fmt.Errorf("%w: %w", entities.ErrMalformedRecord, err)
	}
	hours, err := requireDecimal("labor_hours", it.LaborHours)
	if err != nil {
		return entities.Process{}, err
	}
	materials, err := requireDecimal("base_materials_cost", it.BaseMaterialsCost)
	if err != nil {
		return entities.Process{}, err
	}
	return entities.Process{
		ID:                it.ID,
		Name:              it.Name,
		LaborHours:        hours,
		SkillLevel:        it.SkillLevel,
		BaseMaterialsCost: materials,
		Pricing:           fromPricingItem(it.Pricing),
	}, nil
}

// itemID reads the key of an item that may not decode as a whole.
func itemID(item map[string]types.AttributeValue) string {
	if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
