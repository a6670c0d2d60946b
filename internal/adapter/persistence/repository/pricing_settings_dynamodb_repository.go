package repository

import (
	"context"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

const (
	DefaultPricingSettingsTableName = "pricing_settings"
	pricingSettingsID               = "admin"
)

type pricingSettingsItem struct {
	ID                 string            `dynamodbav:"id"`
	LaborRates         map[string]string `dynamodbav:"labor_rates"`
	MaterialMarkup     string            `dynamodbav:"material_markup"`
	BusinessMultiplier string            `dynamodbav:"business_multiplier"`
	UpdatedAt          string            `dynamodbav:"updated_at"`
	UpdatedBy          string            `dynamodbav:"updated_by,omitempty"`
}

// PricingSettingsDynamoRepository stores the single admin settings document
// under a fixed key.
type PricingSettingsDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPricingSettingsRepository = (*PricingSettingsDynamoRepository)(nil)

func NewPricingSettingsDynamoRepository(ddb DynamoAPI, tableName string) *PricingSettingsDynamoRepository {
	return &PricingSettingsDynamoRepository{
		ddb:       ddb,
		tableName: orDefault(tableName, DefaultPricingSettingsTableName),
	}
}

func (r *PricingSettingsDynamoRepository) Get(ctx context.Context) (entities.AdminPricingSettings, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(pricingSettingsID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AdminPricingSettings{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.AdminPricingSettings{}, false, nil
	}
	var it pricingSettingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AdminPricingSettings{}, false, err
	}

	rates := make(map[string]decimal.Decimal, len(it.LaborRates))
	for skill, rate := range it.LaborRates {
		rates[skill] = parseDecimal(rate)
	}
	return entities.AdminPricingSettings{
		LaborRates:         rates,
		MaterialMarkup:     parseDecimal(it.MaterialMarkup),
		BusinessMultiplier: parseDecimal(it.BusinessMultiplier),
		UpdatedAt:          parseTime(it.UpdatedAt),
		UpdatedBy:          it.UpdatedBy,
	}, true, nil
}

func (r *PricingSettingsDynamoRepository) Put(ctx context.Context, s entities.AdminPricingSettings) error {
	rates := make(map[string]string, len(s.LaborRates))
	for skill, rate := range s.LaborRates {
		rates[skill] = decimalToString(rate)
	}
	av, err := attributevalue.MarshalMap(pricingSettingsItem{
		ID:                 pricingSettingsID,
		LaborRates:         rates,
		MaterialMarkup:     decimalToString(s.MaterialMarkup),
		BusinessMultiplier: decimalToString(s.BusinessMultiplier),
		UpdatedAt:          formatTime(s.UpdatedAt),
		UpdatedBy:          s.UpdatedBy,
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
