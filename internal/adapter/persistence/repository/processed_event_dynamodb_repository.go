package repository

import (
	"context"
	"time"

	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type processedEventItem struct {
	ProviderEventID string `dynamodbav:"provider_event_id"`
	EventType       string `dynamodbav:"event_type"`
	Processed       bool   `dynamodbav:"processed"`
	CreatedAt       string `dynamodbav:"created_at"`
	ProcessedAt     string `dynamodbav:"processed_at,omitempty"`
}

// ProcessedEventDynamoRepository stores webhook idempotency claims.
//
// Table requirements:
//   - PK: provider_event_id (string)

type ProcessedEventDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IProcessedEventRepository = (*ProcessedEventDynamoRepository)(nil)

func NewProcessedEventDynamoRepository(ddb DynamoDBAPI, tables Tables) *ProcessedEventDynamoRepository {
	return &ProcessedEventDynamoRepository{ddb: ddb, tableName: tables.ProcessedEvents, now: time.Now}
}

func (r *ProcessedEventDynamoRepository) Get(ctx context.Context, eventID string) (entities.ProcessedEvent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"provider_event_id": str(eventID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProcessedEvent{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProcessedEvent{}, entities.ErrEventNotFound
	}

	var it processedEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProcessedEvent{}, err
	}
	return entities.ProcessedEvent{
		ProviderEventID: it.ProviderEventID,
		EventType:       it.EventType,
		Processed:       it.Processed,
		CreatedAt:       parseTime(it.CreatedAt),
		ProcessedAt:     parseTimePtr(it.ProcessedAt),
	}, nil
}

func (r *ProcessedEventDynamoRepository) Insert(ctx context.Context, e entities.ProcessedEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now()
	}
	av, err := attributevalue.MarshalMap(processedEventItem{
		ProviderEventID: e.ProviderEventID,
		EventType:       e.EventType,
		Processed:       false,
		CreatedAt:       formatTime(e.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#eid)"),
		ExpressionAttributeNames: map[string]string{
			"#eid": "provider_event_id",
		},
	})
	if isConditionalCheckFailed(err) {
		return entities.ErrEventAlreadyClaimed
	}
	return err
}

func (r *ProcessedEventDynamoRepository) MarkProcessed(ctx context.Context, eventID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"provider_event_id": str(eventID)},
		UpdateExpression:    aws.String("SET processed = :t, processed_at = :now"),
		ConditionExpression: aws.String("attribute_exists(provider_event_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t":   &types.AttributeValueMemberBOOL{Value: true},
			":now": str(formatTime(r.now())),
		},
	})
	if isConditionalCheckFailed(err) {
		return entities.ErrEventNotFound
	}
	return err
}

func (r *ProcessedEventDynamoRepository) DeleteUnprocessed(ctx context.Context, eventID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"provider_event_id": str(eventID)},
		ConditionExpression: aws.String("attribute_exists(provider_event_id) AND processed = :f"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":f": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if isConditionalCheckFailed(err) {
		return entities.ErrEventNotFound
	}
	return err
}
