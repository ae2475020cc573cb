package docstore

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrNotFound — erro padrão quando o registro não existe.
var ErrNotFound = errors.New("docstore: item not found")

// Client abstrai o cliente DynamoDB usado pelo Store.
//
// A interface cobre apenas as operações que as lições exercitam, o que
// permite substituir o SDK por mocks nos testes.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store — interface principal (genérica).
type Store[T any] interface {
	Get(ctx context.Context, hashKey, sortKey any) (*T, error)
	Put(ctx context.Context, item T) error
	Update(ctx context.Context, hashKey, sortKey any, set map[string]any) (*T, error)
	Delete(ctx context.Context, hashKey, sortKey any) error

	BatchGet(ctx context.Context, keys [][2]any) ([]T, error)
	BatchPut(ctx context.Context, items []T) error

	Query() *QueryBuilder[T]
	Scan() *QueryBuilder[T]

	// Table expõe nome e chaves para quem monta escritas transacionais.
	Table() TableConfig[T]
}

// TableConfig — configuração da tabela vista pelo Store.
type TableConfig[T any] struct {
	TableName string
	HashKey   string
	SortKey   string // opcional
}

// QueryBuilder — builder fluente de Query/Scan com paginação por token.
type QueryBuilder[T any] struct {
	store       *documentStore[T]
	keyCond     *expression.KeyConditionBuilder
	filterCond  *expression.ConditionBuilder
	indexName   *string
	limit       *int32
	startKey    map[string]types.AttributeValue
	scanForward *bool
	isScan      bool
	err         error
}
