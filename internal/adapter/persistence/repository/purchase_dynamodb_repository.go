package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type purchaseItem struct {
	SessionID       string `dynamodbav:"session_id"`
	ID              string `dynamodbav:"id"`
	CustomerID      string `dynamodbav:"customer_id"`
	AmountCents     int64  `dynamodbav:"amount_cents"`
	Currency        string `dynamodbav:"currency"`
	Status          string `dynamodbav:"status"`
	AccessToken     string `dynamodbav:"access_token,omitempty"`
	PaymentIntentID string `dynamodbav:"payment_intent_id,omitempty"`
	CompletedAt     string `dynamodbav:"completed_at,omitempty"`
	LastAccessedAt  string `dynamodbav:"last_accessed_at,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

type accessTokenItem struct {
	AccessToken string `dynamodbav:"access_token"`
	SessionID   string `dynamodbav:"session_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// PurchaseDynamoRepository persists e-book purchases in DynamoDB.
//
// Table requirements:
//   - purchases PK: session_id (string)
//   - purchases GSI: payment_intent_id-index (PK: payment_intent_id)
//   - access tokens PK: access_token (string), one item per issued token
//
// The token table is the uniqueness constraint on access_token; a token is
// bound in the same transaction that completes the purchase.

type PurchaseDynamoRepository struct {
	ddb         DynamoDBAPI
	tableName   string
	tokensTable string
	now         func() time.Time
}

var _ interfaces.IPurchaseRepository = (*PurchaseDynamoRepository)(nil)

func NewPurchaseDynamoRepository(ddb DynamoDBAPI, tables Tables) *PurchaseDynamoRepository {
	return &PurchaseDynamoRepository{
		ddb:         ddb,
		tableName:   tables.Purchases,
		tokensTable: tables.AccessTokens,
		now:         time.Now,
	}
}

func (r *PurchaseDynamoRepository) Create(ctx context.Context, sessionID, customerID string, amountCents int64, currency string) (entities.Purchase, error) {
	p := entities.Purchase{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		CustomerID:  customerID,
		AmountCents: amountCents,
		Currency:    currency,
		Status:      entities.PurchaseStatusPending,
		CreatedAt:   r.now().UTC(),
	}
	av, err := attributevalue.MarshalMap(toPurchaseItem(p))
	if err != nil {
		return entities.Purchase{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sid)"),
		ExpressionAttributeNames: map[string]string{
			"#sid": "session_id",
		},
	})
	if isConditionalCheckFailed(err) {
		return entities.Purchase{}, entities.ErrPurchaseAlreadyExists
	}
	if err != nil {
		return entities.Purchase{}, err
	}
	return p, nil
}

func (r *PurchaseDynamoRepository) FindBySessionID(ctx context.Context, sessionID string) (entities.Purchase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": str(sessionID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Purchase{}, err
	}
	if len(out.Item) == 0 {
		return entities.Purchase{}, entities.ErrPurchaseNotFound
	}

	var it purchaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Purchase{}, err
	}
	return fromPurchaseItem(it), nil
}

func (r *PurchaseDynamoRepository) FindByAccessToken(ctx context.Context, token string) (entities.Purchase, error) {
	sessionID, err := r.sessionForToken(ctx, token)
	if err != nil {
		return entities.Purchase{}, err
	}
	p, err := r.FindBySessionID(ctx, sessionID)
	if err != nil {
		return entities.Purchase{}, err
	}
	if p.Status != entities.PurchaseStatusCompleted || p.AccessToken != token {
		return entities.Purchase{}, entities.ErrPurchaseNotFound
	}
	return p, nil
}

func (r *PurchaseDynamoRepository) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Purchase, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(purchasesPaymentIntentIndex),
		KeyConditionExpression: aws.String("payment_intent_id = :pi"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pi": str(paymentIntentID),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Purchase{}, err
	}
	if len(out.Items) == 0 {
		return entities.Purchase{}, entities.ErrPurchaseNotFound
	}

	var it purchaseItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Purchase{}, err
	}
	return fromPurchaseItem(it), nil
}

func (r *PurchaseDynamoRepository) CompleteWithToken(ctx context.Context, sessionID, accessToken, paymentIntentID string) (entities.Purchase, error) {
	completedAt := r.now().UTC()
	now := formatTime(completedAt)

	update := "SET #st = :completed, access_token = :tok, completed_at = :now"
	values := map[string]types.AttributeValue{
		":completed": str(string(entities.PurchaseStatusCompleted)),
		":pending":   str(string(entities.PurchaseStatusPending)),
		":tok":       str(accessToken),
		":now":       str(now),
	}
	if paymentIntentID != "" {
		update += ", payment_intent_id = :pi"
		values[":pi"] = str(paymentIntentID)
	}

	tokenAV, err := attributevalue.MarshalMap(accessTokenItem{AccessToken: accessToken, SessionID: sessionID, CreatedAt: now})
	if err != nil {
		return entities.Purchase{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:                 aws.String(r.tableName),
					Key:                       map[string]types.AttributeValue{"session_id": str(sessionID)},
					UpdateExpression:          aws.String(update),
					ConditionExpression:       aws.String("attribute_exists(session_id) AND #st = :pending AND attribute_not_exists(access_token)"),
					ExpressionAttributeNames:  map[string]string{"#st": "status"},
					ExpressionAttributeValues: values,
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tokensTable),
					Item:                tokenAV,
					ConditionExpression: aws.String("attribute_not_exists(access_token)"),
				},
			},
		},
	})
	if err != nil {
		return r.classifyCompletionFailure(ctx, sessionID, err)
	}

	p, err := r.FindBySessionID(ctx, sessionID)
	if err != nil {
		// The transaction committed, so the completion stands; report the
		// written fields rather than failing the caller.
		return entities.Purchase{
			SessionID:       sessionID,
			Status:          entities.PurchaseStatusCompleted,
			AccessToken:     accessToken,
			PaymentIntentID: paymentIntentID,
			CompletedAt:     &completedAt,
		}, nil
	}
	return p, nil
}

// classifyCompletionFailure turns a cancelled completion transaction into
// the domain outcome by looking at which condition failed.
func (r *PurchaseDynamoRepository) classifyCompletionFailure(ctx context.Context, sessionID string, err error) (entities.Purchase, error) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return entities.Purchase{}, err
	}
	purchaseFailed, tokenFailed := false, false
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != conditionalCheckFailed {
			continue
		}
		switch i {
		case 0:
			purchaseFailed = true
		case 1:
			tokenFailed = true
		}
	}

	if purchaseFailed {
		p, findErr := r.FindBySessionID(ctx, sessionID)
		if findErr != nil {
			return entities.Purchase{}, findErr
		}
		switch {
		case p.Status == entities.PurchaseStatusCompleted:
			return p, entities.ErrPurchaseAlreadyCompleted
		case p.Status.IsTerminal():
			return p, entities.ErrInvalidStatusTransition
		}
	}
	if tokenFailed {
		return entities.Purchase{}, entities.ErrAccessTokenConflict
	}
	return entities.Purchase{}, fmt.Errorf("complete purchase %s: %w", sessionID, err)
}

func (r *PurchaseDynamoRepository) MarkFailed(ctx context.Context, sessionID string) (entities.Purchase, error) {
	return r.transition(ctx, sessionID, "SET #st = :next", map[string]types.AttributeValue{
		":next": str(string(entities.PurchaseStatusFailed)),
	})
}

func (r *PurchaseDynamoRepository) MarkExpired(ctx context.Context, sessionID string) (entities.Purchase, error) {
	return r.transition(ctx, sessionID, "SET #st = :next", map[string]types.AttributeValue{
		":next": str(string(entities.PurchaseStatusExpired)),
	})
}

func (r *PurchaseDynamoRepository) AttachPaymentIntent(ctx context.Context, sessionID, paymentIntentID string) (entities.Purchase, error) {
	return r.transition(ctx, sessionID, "SET payment_intent_id = :pi", map[string]types.AttributeValue{
		":pi": str(paymentIntentID),
	})
}

// transition applies update to a purchase that is still pending.
func (r *PurchaseDynamoRepository) transition(ctx context.Context, sessionID, update string, values map[string]types.AttributeValue) (entities.Purchase, error) {
	values[":pending"] = str(string(entities.PurchaseStatusPending))
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"session_id": str(sessionID)},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(session_id) AND #st = :pending"),
		ExpressionAttributeNames:  map[string]string{"#st": "status"},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if isConditionalCheckFailed(err) {
		p, findErr := r.FindBySessionID(ctx, sessionID)
		if findErr != nil {
			return entities.Purchase{}, findErr
		}
		return p, entities.ErrInvalidStatusTransition
	}
	if err != nil {
		return entities.Purchase{}, err
	}

	var it purchaseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Purchase{}, err
	}
	return fromPurchaseItem(it), nil
}

func (r *PurchaseDynamoRepository) TouchLastAccessed(ctx context.Context, token string) error {
	sessionID, err := r.sessionForToken(ctx, token)
	if err != nil {
		return err
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      map[string]types.AttributeValue{"session_id": str(sessionID)},
		UpdateExpression:         aws.String("SET last_accessed_at = :now"),
		ConditionExpression:      aws.String("#st = :completed AND access_token = :tok"),
		ExpressionAttributeNames: map[string]string{"#st": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now":       str(formatTime(r.now())),
			":completed": str(string(entities.PurchaseStatusCompleted)),
			":tok":       str(token),
		},
	})
	if isConditionalCheckFailed(err) {
		return entities.ErrPurchaseNotFound
	}
	return err
}

func (r *PurchaseDynamoRepository) sessionForToken(ctx context.Context, token string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tokensTable),
		Key: map[string]types.AttributeValue{
			"access_token": str(token),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", entities.ErrPurchaseNotFound
	}
	var it accessTokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.SessionID, nil
}

func toPurchaseItem(p entities.Purchase) purchaseItem {
	it := purchaseItem{
		SessionID:       p.SessionID,
		ID:              p.ID,
		CustomerID:      p.CustomerID,
		AmountCents:     p.AmountCents,
		Currency:        p.Currency,
		Status:          string(p.Status),
		AccessToken:     p.AccessToken,
		PaymentIntentID: p.PaymentIntentID,
		CreatedAt:       formatTime(p.CreatedAt),
	}
	if p.CompletedAt != nil {
		it.CompletedAt = formatTime(*p.CompletedAt)
	}
	if p.LastAccessedAt != nil {
		it.LastAccessedAt = formatTime(*p.LastAccessedAt)
	}
	return it
}

func fromPurchaseItem(it purchaseItem) entities.Purchase {
	return entities.Purchase{
		ID:              it.ID,
		SessionID:       it.SessionID,
		CustomerID:      it.CustomerID,
		AmountCents:     it.AmountCents,
		Currency:        it.Currency,
		Status:          entities.PurchaseStatus(it.Status),
		AccessToken:     it.AccessToken,
		PaymentIntentID: it.PaymentIntentID,
		CompletedAt:     parseTimePtr(it.CompletedAt),
		LastAccessedAt:  parseTimePtr(it.LastAccessedAt),
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
