package repository

import (
	"context"
	"testing"
	"time"

	mock_repository "erdbeergourmet/internal/adapter/persistence/repository/mocks"
	"erdbeergourmet/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEventRepo(t *testing.T) (*ProcessedEventDynamoRepository, *mock_repository.MockDynamoDBAPI) {
	t.Helper()
	ddb := mock_repository.NewMockDynamoDBAPI(gomock.NewController(t))
	r := NewProcessedEventDynamoRepository(ddb, testTables)
	r.now = func() time.Time { return fixedNow }
	return r, ddb
}

func TestProcessedEventDynamoRepository_Insert(t *testing.T) {
	t.Run("claim", func(t *testing.T) {
		r, ddb := newEventRepo(t)
		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
				assert.Equal(t, "processed_events", aws.ToString(in.TableName))
				var it processedEventItem
				require.NoError(t, attributevalue.UnmarshalMap(in.Item, &it))
				assert.Equal(t, "evt_1", it.ProviderEventID)
				assert.False(t, it.Processed)
				assert.Equal(t, formatTime(fixedNow), it.CreatedAt)
				return &dynamodb.PutItemOutput{}, nil
			},
		)
		require.NoError(t, r.Insert(context.Background(), entities.ProcessedEvent{ProviderEventID: "evt_1", EventType: "checkout.session.completed"}))
	})

	t.Run("second claim", func(t *testing.T) {
		r, ddb := newEventRepo(t)
		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).Return(nil, conditionFailed())
		assert.ErrorIs(t, r.Insert(context.Background(), entities.ProcessedEvent{ProviderEventID: "evt_1"}), entities.ErrEventAlreadyClaimed)
	})
}

func TestProcessedEventDynamoRepository_Get(t *testing.T) {
	r, ddb := newEventRepo(t)
	av, err := attributevalue.MarshalMap(processedEventItem{
		ProviderEventID: "evt_1", EventType: "checkout.session.completed", Processed: true,
		CreatedAt: formatTime(fixedNow), ProcessedAt: formatTime(fixedNow.Add(time.Second)),
	})
	require.NoError(t, err)
	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{Item: av}, nil)
	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{}, nil)

	e, err := r.Get(context.Background(), "evt_1")
	require.NoError(t, err)
	assert.True(t, e.Processed)
	require.NotNil(t, e.ProcessedAt)

	_, err = r.Get(context.Background(), "evt_2")
	assert.ErrorIs(t, err, entities.ErrEventNotFound)
}

func TestProcessedEventDynamoRepository_Lifecycle(t *testing.T) {
	r, ddb := newEventRepo(t)
	ddb.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "SET processed = :t, processed_at = :now", aws.ToString(in.UpdateExpression))
			return &dynamodb.UpdateItemOutput{}, nil
		},
	)
	ddb.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).Return(nil, conditionFailed())
	ddb.EXPECT().DeleteItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
			assert.Contains(t, aws.ToString(in.ConditionExpression), "processed = :f")
			return &dynamodb.DeleteItemOutput{}, nil
		},
	)
	ddb.EXPECT().DeleteItem(gomock.Any(), gomock.Any()).Return(nil, conditionFailed())

	require.NoError(t, r.MarkProcessed(context.Background(), "evt_1"))
	assert.ErrorIs(t, r.MarkProcessed(context.Background(), "evt_missing"), entities.ErrEventNotFound)
	require.NoError(t, r.DeleteUnprocessed(context.Background(), "evt_2"))
	assert.ErrorIs(t, r.DeleteUnprocessed(context.Background(), "evt_1"), entities.ErrEventNotFound)
}
