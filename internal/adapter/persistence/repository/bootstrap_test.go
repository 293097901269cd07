package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmin struct {
	existing map[string]bool
	inUse    map[string]bool
	describe error
	created  []*dynamodb.CreateTableInput
}

func (f *fakeAdmin) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describe != nil {
		return nil, f.describe
	}
	if f.existing[aws.ToString(in.TableName)] {
		return &dynamodb.DescribeTableOutput{}, nil
	}
	return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
}

func (f *fakeAdmin) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if f.inUse[aws.ToString(in.TableName)] {
		return nil, &types.ResourceInUseException{Message: aws.String("in use")}
	}
	f.created = append(f.created, in)
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables(t *testing.T) {
	t.Run("creates missing tables", func(t *testing.T) {
		admin := &fakeAdmin{existing: map[string]bool{"customers": true}, inUse: map[string]bool{"processed_events": true}}
		require.NoError(t, EnsureTables(context.Background(), admin, testTables, nil))

		require.Len(t, admin.created, 2)
		purchases := admin.created[0]
		assert.Equal(t, "ebook_purchases", aws.ToString(purchases.TableName))
		assert.Equal(t, types.BillingModePayPerRequest, purchases.BillingMode)
		require.Len(t, purchases.GlobalSecondaryIndexes, 1)
		assert.Equal(t, purchasesPaymentIntentIndex, aws.ToString(purchases.GlobalSecondaryIndexes[0].IndexName))
		assert.Equal(t, "ebook_access_tokens", aws.ToString(admin.created[1].TableName))
	})

	t.Run("describe failure", func(t *testing.T) {
		admin := &fakeAdmin{describe: errors.New("access denied")}
		assert.Error(t, EnsureTables(context.Background(), admin, testTables, nil))
		assert.Empty(t, admin.created)
	})
}

func TestTablesFromEnv(t *testing.T) {
	t.Setenv("PURCHASES_TABLE", "")
	t.Setenv("ACCESS_TOKENS_TABLE", "")
	t.Setenv("CUSTOMERS_TABLE", "shop_customers")
	t.Setenv("PROCESSED_EVENTS_TABLE", "")

	got := TablesFromEnv()
	assert.Equal(t, Tables{
		Purchases:       "ebook_purchases",
		AccessTokens:    "ebook_access_tokens",
		Customers:       "shop_customers",
		ProcessedEvents: "processed_events",
	}, got)
}
