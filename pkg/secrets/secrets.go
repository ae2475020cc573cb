package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Interfaces para abstrair o SDK da AWS (permite mocking).
type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// AccessKey é o formato esperado do segredo com a credencial administrativa.
type AccessKey struct {
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
}

// FetchAccessKey busca e decodifica a credencial no Secrets Manager.
func FetchAccessKey(ctx context.Context, client SecretsClient, secretID string) (AccessKey, error) {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretID,
	})
	if err != nil {
		return AccessKey{}, fmt.Errorf("secrets: get secret %s failed: %w", secretID, err)
	}
	if out.SecretString == nil {
		return AccessKey{}, fmt.Errorf("secrets: secret %s has no string payload", secretID)
	}

	var key AccessKey
	if err := json.Unmarshal([]byte(*out.SecretString), &key); err != nil {
		return AccessKey{}, fmt.Errorf("secrets: decode secret %s failed: %w", secretID, err)
	}
	if key.AccessKeyID == "" || key.SecretAccessKey == "" {
		return AccessKey{}, fmt.Errorf("secrets: secret %s is missing access_key_id or secret_access_key", secretID)
	}
	return key, nil
}

// FetchEndpoint busca a URL do endpoint no SSM Parameter Store.
func FetchEndpoint(ctx context.Context, client SSMClient, path string) (string, error) {
	decrypt := true
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &path,
		WithDecryption: &decrypt,
	})
	if err != nil {
		return "", fmt.Errorf("secrets: get parameter %s failed: %w", path, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("secrets: parameter %s has no value", path)
	}
	return *out.Parameter.Value, nil
}
