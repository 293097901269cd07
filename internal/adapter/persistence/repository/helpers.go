package repository

import (
	"errors"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPurchasesTableName       = "ebook_purchases"
	defaultAccessTokensTableName    = "ebook_access_tokens"
	defaultCustomersTableName       = "customers"
	defaultProcessedEventsTableName = "processed_events"

	purchasesPaymentIntentIndex = "payment_intent_id-index"

	conditionalCheckFailed = "ConditionalCheckFailed"
)

// Tables names every table the service owns.
type Tables struct {
	Purchases       string
	AccessTokens    string
	Customers       string
	ProcessedEvents string
}

// TablesFromEnv reads table names, falling back to the defaults.
func TablesFromEnv() Tables {
	return Tables{
		Purchases:       getenvDefault("PURCHASES_TABLE", defaultPurchasesTableName),
		AccessTokens:    getenvDefault("ACCESS_TOKENS_TABLE", defaultAccessTokensTableName),
		Customers:       getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
		ProcessedEvents: getenvDefault("PROCESSED_EVENTS_TABLE", defaultProcessedEventsTableName),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func str(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}
