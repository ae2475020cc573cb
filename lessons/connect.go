package lessons

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/raywall/dynamodb-ledger-lessons/admin"
	"github.com/raywall/dynamodb-ledger-lessons/pkg/config"
	"github.com/raywall/dynamodb-ledger-lessons/pkg/secrets"
)

// ConnectAdmin monta o cliente com a credencial administrativa, resolvendo
// segredo e endpoint remotos quando configurados.
func ConnectAdmin(ctx context.Context, cfg config.DatabaseConf) (*dynamodb.Client, error) {
	creds := aws.Credentials{
		AccessKeyID:     cfg.AdminKeyID,
		SecretAccessKey: cfg.AdminSecret,
		Source:          "ledger-lessons admin key",
	}

	if cfg.SecretID != "" {
		base, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("lessons: load aws config failed: %w", err)
		}
		key, err := secrets.FetchAccessKey(ctx, secretsmanager.NewFromConfig(base), cfg.SecretID)
		if err != nil {
			return nil, err
		}
		creds.AccessKeyID = key.AccessKeyID
		creds.SecretAccessKey = key.SecretAccessKey
	}

	return newClient(ctx, cfg, creds)
}

// ConnectSession monta um cliente autenticado com uma chave de sessão. No
// DynamoDB Local a chave determina o banco que o cliente enxerga.
func ConnectSession(ctx context.Context, cfg config.DatabaseConf, key admin.SessionKey) (*dynamodb.Client, error) {
	return newClient(ctx, cfg, key.Credentials())
}

func newClient(ctx context.Context, cfg config.DatabaseConf, creds aws.Credentials) (*dynamodb.Client, error) {
	endpoint, err := resolveEndpoint(ctx, cfg)
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("lessons: load aws config failed: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	}), nil
}

// resolveEndpoint devolve o endpoint configurado, ou o valor publicado no
// SSM Parameter Store quando EndpointParam está definido.
func resolveEndpoint(ctx context.Context, cfg config.DatabaseConf) (string, error) {
	if cfg.EndpointParam == "" {
		return cfg.Endpoint, nil
	}

	base, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return "", fmt.Errorf("lessons: load aws config failed: %w", err)
	}
	return secrets.FetchEndpoint(ctx, ssm.NewFromConfig(base), cfg.EndpointParam)
}
