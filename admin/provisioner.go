package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

// Client abstrai as operações administrativas do DynamoDB.
type Client interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// KeySpec nomeia um atributo de chave e seu tipo escalar.
type KeySpec struct {
	Name string
	Type types.ScalarAttributeType
}

// IndexSpec descreve um índice secundário global (projeção ALL).
type IndexSpec struct {
	Name    string
	HashKey KeySpec
	SortKey *KeySpec
}

// TableSpec descreve uma tabela e seus índices.
type TableSpec struct {
	Name    string
	HashKey KeySpec
	SortKey *KeySpec
	Indexes []IndexSpec
}

// Provisioner cria e remove tabelas esperando o serviço estabilizar.
type Provisioner struct {
	client      Client
	log         zerolog.Logger
	waitTimeout time.Duration
}

func NewProvisioner(client Client, log zerolog.Logger) *Provisioner {
	return &Provisioner{
		client:      client,
		log:         log,
		waitTimeout: 2 * time.Minute,
	}
}

// Exists verifica se a tabela está presente no serviço.
func (p *Provisioner) Exists(ctx context.Context, name string) (bool, error) {
	_, err := p.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("admin: describe table %s failed: %w", name, err)
	}
	return true, nil
}

// EnsureFresh remove a tabela caso exista e a recria, devolvendo o controle
// apenas quando o serviço reporta ACTIVE. Cada lição parte do zero.
func (p *Provisioner) EnsureFresh(ctx context.Context, spec TableSpec) error {
	exists, err := p.Exists(ctx, spec.Name)
	if err != nil {
		return err
	}
	if exists {
		p.log.Info().Str("table", spec.Name).Msg("Tabela existente encontrada, removendo")
		if err := p.Drop(ctx, spec.Name); err != nil {
			return err
		}
	}
	return p.Create(ctx, spec)
}

// Create cria a tabela com seus índices e espera o estado ACTIVE.
func (p *Provisioner) Create(ctx context.Context, spec TableSpec) error {
	input := &dynamodb.CreateTableInput{
		TableName:            aws.String(spec.Name),
		BillingMode:          types.BillingModePayPerRequest,
		KeySchema:            keySchema(spec.HashKey, spec.SortKey),
		AttributeDefinitions: attributeDefinitions(spec),
	}

	for _, idx := range spec.Indexes {
		input.GlobalSecondaryIndexes = append(input.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName: aws.String(idx.Name),
			KeySchema: keySchema(idx.HashKey, idx.SortKey),
			Projection: &types.Projection{
				ProjectionType: types.ProjectionTypeAll,
			},
		})
	}

	if _, err := p.client.CreateTable(ctx, input); err != nil {
		return fmt.Errorf("admin: create table %s failed: %w", spec.Name, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(p.client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)}, p.waitTimeout); err != nil {
		return fmt.Errorf("admin: table %s never became active: %w", spec.Name, err)
	}

	p.log.Info().
		Str("table", spec.Name).
		Int("indexes", len(spec.Indexes)).
		Msg("Tabela criada e ativa")
	return nil
}

// Drop remove a tabela e espera o serviço concluir. Tabela inexistente não é
// erro: o objetivo (ausência) já está satisfeito.
func (p *Provisioner) Drop(ctx context.Context, name string) error {
	_, err := p.client.DeleteTable(ctx, &dynamodb.DeleteTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("admin: delete table %s failed: %w", name, err)
	}

	waiter := dynamodb.NewTableNotExistsWaiter(p.client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, p.waitTimeout); err != nil {
		return fmt.Errorf("admin: table %s never went away: %w", name, err)
	}

	p.log.Info().Str("table", name).Msg("Tabela removida")
	return nil
}

func keySchema(hash KeySpec, sort *KeySpec) []types.KeySchemaElement {
	schema := []types.KeySchemaElement{
		{AttributeName: aws.String(hash.Name), KeyType: types.KeyTypeHash},
	}
	if sort != nil {
		schema = append(schema, types.KeySchemaElement{
			AttributeName: aws.String(sort.Name),
			KeyType:       types.KeyTypeRange,
		})
	}
	return schema
}

// attributeDefinitions reúne os atributos de chave da tabela e dos índices,
// sem duplicar nomes.
func attributeDefinitions(spec TableSpec) []types.AttributeDefinition {
	seen := make(map[string]bool)
	var defs []types.AttributeDefinition

	add := func(key KeySpec) {
		if key.Name == "" || seen[key.Name] {
			return
		}
		seen[key.Name] = true
		defs = append(defs, types.AttributeDefinition{
			AttributeName: aws.String(key.Name),
			AttributeType: key.Type,
		})
	}

	add(spec.HashKey)
	if spec.SortKey != nil {
		add(*spec.SortKey)
	}
	for _, idx := range spec.Indexes {
		add(idx.HashKey)
		if idx.SortKey != nil {
			add(*idx.SortKey)
		}
	}
	return defs
}
