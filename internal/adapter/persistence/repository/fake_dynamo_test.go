package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records every request and answers from the configured hooks.
type fakeDynamo struct {
	getIn    []*dynamodb.GetItemInput
	putIn    []*dynamodb.PutItemInput
	updateIn []*dynamodb.UpdateItemInput
	queryIn  []*dynamodb.QueryInput
	scanIn   []*dynamodb.ScanInput

	getItem    map[string]types.AttributeValue
	updateOut  map[string]types.AttributeValue
	pages      [][]map[string]types.AttributeValue
	getErr     error
	putErr     error
	updateErr  error
	pageErr    error
	pageCursor int
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = append(f.getIn, in)
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = append(f.putIn, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.getItem = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = append(f.updateIn, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.updateOut}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = append(f.queryIn, in)
	items, last, err := f.nextPage()
	if err != nil {
		return nil, err
	}
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIn = append(f.scanIn, in)
	items, last, err := f.nextPage()
	if err != nil {
		return nil, err
	}
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: last}, nil
}

// nextPage serves pages in order, handing back a cursor key until the last.
func (f *fakeDynamo) nextPage() ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
	if f.pageErr != nil {
		return nil, nil, f.pageErr
	}
	if f.pageCursor >= len(f.pages) {
		return nil, nil, nil
	}
	items := f.pages[f.pageCursor]
	f.pageCursor++
	if f.pageCursor < len(f.pages) {
		return items, idKey("cursor"), nil
	}
	return items, nil, nil
}

func str(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}
