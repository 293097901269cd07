package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAWSConfig(t *testing.T) {
	t.Run("defaults region", func(t *testing.T) {
		cfg, err := NewAWSConfig(context.Background(), DynamoConfig{AccessKeyID: "local", SecretAccessKey: "local"})
		require.NoError(t, err)
		assert.Equal(t, "us-east-1", cfg.Region)

		creds, err := cfg.Credentials.Retrieve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "local", creds.AccessKeyID)
	})

	t.Run("custom http timeout", func(t *testing.T) {
		cfg, err := NewAWSConfig(context.Background(), DynamoConfig{Region: "eu-central-1", AccessKeyID: "k", SecretAccessKey: "s", Timeout: 2 * time.Second})
		require.NoError(t, err)
		assert.Equal(t, "eu-central-1", cfg.Region)
		assert.NotNil(t, cfg.HTTPClient)
	})
}

func TestConnectDynamoDB_Endpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), DynamoConfig{
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}
