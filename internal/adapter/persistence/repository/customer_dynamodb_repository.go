package repository

import (
	"context"
	"strings"
	"time"

	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type customerItem struct {
	ID                 string `dynamodbav:"id"`
	Email              string `dynamodbav:"email"`
	FirstName          string `dynamodbav:"first_name"`
	LastName           string `dynamodbav:"last_name"`
	ProviderCustomerID string `dynamodbav:"provider_customer_id,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// CustomerDynamoRepository persists customers in DynamoDB.
//
// Table requirements:
//   - PK: id (string), the name-based uuid of the normalized email
//
// Keying by the email-derived id turns find-or-create into one conditional put.

type CustomerDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoDBAPI, tables Tables) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tableName: tables.Customers}
}

func (r *CustomerDynamoRepository) FindOrCreate(ctx context.Context, c entities.Customer) (entities.Customer, bool, error) {
	c.Email = entities.NormalizeEmail(c.Email)
	c.ID = entities.CustomerIDForEmail(c.Email)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionalCheckFailed(err) {
		existing, getErr := r.GetByID(ctx, c.ID)
		return existing, false, getErr
	}
	if err != nil {
		return entities.Customer{}, false, err
	}
	return c, true, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": str(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) FindByEmail(ctx context.Context, email string) (entities.Customer, error) {
	return r.GetByID(ctx, entities.CustomerIDForEmail(email))
}

// BackfillIdentity writes the identity fields that are still empty. Each
// field is conditioned on being empty so that concurrent backfills never
// overwrite each other.
func (r *CustomerDynamoRepository) BackfillIdentity(ctx context.Context, id string, identity entities.Customer) (entities.Customer, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	var (
		sets  []string
		conds = []string{"attribute_exists(#id)"}
		names = map[string]string{"#id": "id"}
		vals  = map[string]types.AttributeValue{":empty": str("")}
	)
	add := func(attr, stored, next string) {
		if stored != "" || next == "" {
			return
		}
		sets = append(sets, attr+" = :"+attr)
		conds = append(conds, "(attribute_not_exists("+attr+") OR "+attr+" = :empty)")
		vals[":"+attr] = str(next)
	}
	add("first_name", current.FirstName, identity.FirstName)
	add("last_name", current.LastName, identity.LastName)
	add("provider_customer_id", current.ProviderCustomerID, identity.ProviderCustomerID)
	if len(sets) == 0 {
		return current, nil
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"id": str(id)},
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:       aws.String(strings.Join(conds, " AND ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if isConditionalCheckFailed(err) {
		// Someone else filled the fields first.
		return r.GetByID(ctx, id)
	}
	if err != nil {
		return entities.Customer{}, err
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:                 c.ID,
		Email:              c.Email,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		ProviderCustomerID: c.ProviderCustomerID,
		CreatedAt:          formatTime(c.CreatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:                 it.ID,
		Email:              it.Email,
		FirstName:          it.FirstName,
		LastName:           it.LastName,
		ProviderCustomerID: it.ProviderCustomerID,
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
