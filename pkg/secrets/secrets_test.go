package secrets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/raywall/dynamodb-ledger-lessons/pkg/secrets"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSecretsClient struct {
	value string
	err   error
}

func (m *mockSecretsClient) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(m.value)}, nil
}

type mockSSMClient struct {
	value string
	err   error
}

func (m *mockSSMClient) GetParameter(ctx context.Context, params *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &ssm.GetParameterOutput{
		Parameter: &ssmtypes.Parameter{Value: aws.String(m.value)},
	}, nil
}

func TestFetchAccessKey(t *testing.T) {
	t.Parallel()

	client := &mockSecretsClient{value: `{"access_key_id":"admin","secret_access_key":"s3cr3t"}`}

	key, err := secrets.FetchAccessKey(context.Background(), client, "lessons/admin")

	require.NoError(t, err)
	assert.Equal(t, "admin", key.AccessKeyID)
	assert.Equal(t, "s3cr3t", key.SecretAccessKey)
}

func TestFetchAccessKey_BadPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{"não é JSON", "plain-text"},
		{"campos faltando", `{"access_key_id":"admin"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &mockSecretsClient{value: tc.value}
			_, err := secrets.FetchAccessKey(context.Background(), client, "lessons/admin")
			assert.Error(t, err)
		})
	}
}

func TestFetchAccessKey_ServiceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("denied")
	client := &mockSecretsClient{err: boom}

	_, err := secrets.FetchAccessKey(context.Background(), client, "lessons/admin")

	assert.ErrorIs(t, err, boom)
}

func TestFetchEndpoint(t *testing.T) {
	t.Parallel()

	client := &mockSSMClient{value: "http://dynamo.interno:8000"}

	endpoint, err := secrets.FetchEndpoint(context.Background(), client, "/lessons/endpoint")

	require.NoError(t, err)
	assert.Equal(t, "http://dynamo.interno:8000", endpoint)
}

func TestFetchEndpoint_ServiceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("denied")
	client := &mockSSMClient{err: boom}

	_, err := secrets.FetchEndpoint(context.Background(), client, "/lessons/endpoint")

	assert.ErrorIs(t, err, boom)
}
