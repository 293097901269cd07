package repository

import (
	"context"
	"testing"

	mock_repository "erdbeergourmet/internal/adapter/persistence/repository/mocks"
	"erdbeergourmet/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func customerAV(t *testing.T, c entities.Customer) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	require.NoError(t, err)
	return av
}

func TestCustomerDynamoRepository_FindOrCreate(t *testing.T) {
	id := entities.CustomerIDForEmail("ana@example.com")

	t.Run("creates with email derived id", func(t *testing.T) {
		ddb := mock_repository.NewMockDynamoDBAPI(gomock.NewController(t))
		r := NewCustomerDynamoRepository(ddb, testTables)
		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
				assert.Equal(t, "customers", aws.ToString(in.TableName))
				assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))
				return &dynamodb.PutItemOutput{}, nil
			},
		)

		c, created, err := r.FindOrCreate(context.Background(), entities.Customer{Email: " Ana@Example.com ", FirstName: "Ana"})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, id, c.ID)
		assert.Equal(t, "ana@example.com", c.Email)
	})

	t.Run("returns the stored customer on collision", func(t *testing.T) {
		ddb := mock_repository.NewMockDynamoDBAPI(gomock.NewController(t))
		r := NewCustomerDynamoRepository(ddb, testTables)
		stored := entities.Customer{ID: id, Email: "ana@example.com", FirstName: "Ana", LastName: "Souza", CreatedAt: fixedNow}
		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).Return(nil, conditionFailed())
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{Item: customerAV(t, stored)}, nil)

		c, created, err := r.FindOrCreate(context.Background(), entities.Customer{Email: "ana@example.com"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, stored, c)
	})
}

func TestCustomerDynamoRepository_BackfillIdentity(t *testing.T) {
	id := entities.CustomerIDForEmail("ana@example.com")

	t.Run("only empty fields are written", func(t *testing.T) {
		ddb := mock_repository.NewMockDynamoDBAPI(gomock.NewController(t))
		r := NewCustomerDynamoRepository(ddb, testTables)
		stored := entities.Customer{ID: id, Email: "ana@example.com", FirstName: "Ana", CreatedAt: fixedNow}
		updated := stored
		updated.LastName, updated.ProviderCustomerID = "Souza", "cus_1"

		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{Item: customerAV(t, stored)}, nil)
		ddb.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
				expr := aws.ToString(in.UpdateExpression)
				assert.NotContains(t, expr, "first_name")
				assert.Contains(t, expr, "last_name = :last_name")
				assert.Contains(t, expr, "provider_customer_id = :provider_customer_id")
				return &dynamodb.UpdateItemOutput{Attributes: customerAV(t, updated)}, nil
			},
		)

		c, err := r.BackfillIdentity(context.Background(), id, entities.Customer{FirstName: "Maria", LastName: "Souza", ProviderCustomerID: "cus_1"})
		require.NoError(t, err)
		assert.Equal(t, "Ana", c.FirstName)
		assert.Equal(t, "Souza", c.LastName)
	})

	t.Run("nothing to backfill", func(t *testing.T) {
		ddb := mock_repository.NewMockDynamoDBAPI(gomock.NewController(t))
		r := NewCustomerDynamoRepository(ddb, testTables)
		stored := entities.Customer{ID: id, Email: "ana@example.com", FirstName: "Ana", LastName: "Souza", ProviderCustomerID: "cus_1", CreatedAt: fixedNow}
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{Item: customerAV(t, stored)}, nil)

		c, err := r.BackfillIdentity(context.Background(), id, entities.Customer{FirstName: "Other"})
		require.NoError(t, err)
		assert.Equal(t, stored, c)
	})

	t.Run("missing customer", func(t *testing.T) {
		ddb := mock_repository.NewMockDynamoDBAPI(gomock.NewController(t))
		r := NewCustomerDynamoRepository(ddb, testTables)
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := r.BackfillIdentity(context.Background(), id, entities.Customer{FirstName: "Ana"})
		assert.ErrorIs(t, err, entities.ErrCustomerNotFound)
	})
}
