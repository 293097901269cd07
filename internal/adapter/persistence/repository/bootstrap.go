package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableAdmin is the part of *dynamodb.Client used to create tables.
type TableAdmin interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

var _ TableAdmin = (*dynamodb.Client)(nil)

// EnsureTables creates missing tables with on-demand billing. Meant for
// DynamoDB Local and test stacks; production tables are provisioned outside
// the service.
func EnsureTables(ctx context.Context, admin TableAdmin, tables Tables, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("dynamodb")

	for _, in := range tableDefinitions(tables) {
		name := aws.ToString(in.TableName)
		_, err := admin.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return fmt.Errorf("describe table %s: %w", name, err)
		}

		if _, err := admin.CreateTable(ctx, in); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", name, err)
		}
		logger.Info("table created", zap.String("table", name))
	}
	return nil
}

func tableDefinitions(t Tables) []*dynamodb.CreateTableInput {
	hashKey := func(table, attr string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:   aws.String(table),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash},
			},
		}
	}

	purchases := hashKey(t.Purchases, "session_id")
	purchases.AttributeDefinitions = append(purchases.AttributeDefinitions, types.AttributeDefinition{
		AttributeName: aws.String("payment_intent_id"), AttributeType: types.ScalarAttributeTypeS,
	})
	purchases.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
		IndexName: aws.String(purchasesPaymentIntentIndex),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("payment_intent_id"), KeyType: types.KeyTypeHash},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}}

	return []*dynamodb.CreateTableInput{
		purchases,
		hashKey(t.AccessTokens, "access_token"),
		hashKey(t.Customers, "id"),
		hashKey(t.ProcessedEvents, "provider_event_id"),
	}
}
