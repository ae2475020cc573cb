package docstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Query inicia uma Query.
func (s *documentStore[T]) Query() *QueryBuilder[T] {
	return &QueryBuilder[T]{
		store:       s,
		scanForward: aws.Bool(true),
	}
}

// Scan inicia um Scan.
func (s *documentStore[T]) Scan() *QueryBuilder[T] {
	return &QueryBuilder[T]{
		store:  s,
		isScan: true,
	}
}

// === MÉTODOS FLUENTES ===

func (qb *QueryBuilder[T]) Index(name string) *QueryBuilder[T] {
	qb.indexName = aws.String(name)
	return qb
}

func (qb *QueryBuilder[T]) andKey(cond expression.KeyConditionBuilder) *QueryBuilder[T] {
	if qb.keyCond == nil {
		qb.keyCond = &cond
	} else {
		tmp := qb.keyCond.And(cond)
		qb.keyCond = &tmp
	}
	return qb
}

func (qb *QueryBuilder[T]) KeyEqual(key string, value any) *QueryBuilder[T] {
	return qb.andKey(expression.KeyEqual(expression.Key(key), expression.Value(value)))
}

func (qb *QueryBuilder[T]) KeyLessThan(key string, value any) *QueryBuilder[T] {
	return qb.andKey(expression.KeyLessThan(expression.Key(key), expression.Value(value)))
}

func (qb *QueryBuilder[T]) KeyGreaterThanEqual(key string, value any) *QueryBuilder[T] {
	return qb.andKey(expression.KeyGreaterThanEqual(expression.Key(key), expression.Value(value)))
}

// KeyBetween delimita a chave de ordenação a [low, high] (inclusivo).
func (qb *QueryBuilder[T]) KeyBetween(key string, low, high any) *QueryBuilder[T] {
	return qb.andKey(expression.KeyBetween(expression.Key(key), expression.Value(low), expression.Value(high)))
}

func (qb *QueryBuilder[T]) andFilter(cond expression.ConditionBuilder) *QueryBuilder[T] {
	if qb.filterCond == nil {
		qb.filterCond = &cond
	} else {
		tmp := qb.filterCond.And(cond)
		qb.filterCond = &tmp
	}
	return qb
}

func (qb *QueryBuilder[T]) FilterEqual(field string, value any) *QueryBuilder[T] {
	return qb.andFilter(expression.Equal(expression.Name(field), expression.Value(value)))
}

// FilterGreaterThanEqual filtra depois da leitura da chave: o filtro roda no
// serviço, sobre a página já selecionada pela condição de chave.
func (qb *QueryBuilder[T]) FilterGreaterThanEqual(field string, value any) *QueryBuilder[T] {
	return qb.andFilter(expression.GreaterThanEqual(expression.Name(field), expression.Value(value)))
}

func (qb *QueryBuilder[T]) Limit(n int32) *QueryBuilder[T] {
	qb.limit = &n
	return qb
}

func (qb *QueryBuilder[T]) Descending() *QueryBuilder[T] {
	qb.scanForward = aws.Bool(false)
	return qb
}

// StartFrom retoma a consulta a partir de um token devolvido por Exec.
// Token vazio significa começar do início. Token malformado faz o Exec
// seguinte falhar, em vez de recomeçar silenciosamente do zero.
func (qb *QueryBuilder[T]) StartFrom(token string) *QueryBuilder[T] {
	key, err := decodeCursor(token)
	if err != nil {
		qb.err = err
		return qb
	}
	qb.startKey = key
	return qb
}

// Exec executa a consulta e devolve os itens da página, o token de
// continuação (vazio na última página) e o erro.
func (qb *QueryBuilder[T]) Exec(ctx context.Context) ([]T, string, error) {
	if qb.err != nil {
		return nil, "", qb.err
	}

	builder := expression.NewBuilder()

	if qb.keyCond != nil {
		builder = builder.WithKeyCondition(*qb.keyCond)
	}
	if qb.filterCond != nil {
		builder = builder.WithFilter(*qb.filterCond)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, "", fmt.Errorf("docstore: build expression failed: %w", err)
	}

	if qb.isScan || qb.keyCond == nil {
		return qb.execScan(ctx, expr)
	}
	return qb.execQuery(ctx, expr)
}

// Fetcher adapta o builder ao contrato de paginação (ver pager.go).
// Cada chamada reposiciona o cursor e executa exatamente uma requisição.
func (qb *QueryBuilder[T]) Fetcher() FetchFunc[T] {
	return func(ctx context.Context, cursor string, size int32) (Page[T], error) {
		qb.startKey = nil
		qb.err = nil
		qb.StartFrom(cursor)
		if size > 0 {
			qb.Limit(size)
		}
		items, next, err := qb.Exec(ctx)
		if err != nil {
			return Page[T]{}, err
		}
		return Page[T]{Items: items, Cursor: next}, nil
	}
}

func (qb *QueryBuilder[T]) execQuery(ctx context.Context, expr expression.Expression) ([]T, string, error) {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(qb.store.cfg.TableName),
		IndexName:                 qb.indexName,
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     qb.limit,
		ScanIndexForward:          qb.scanForward,
		ExclusiveStartKey:         qb.startKey,
	}

	out, err := qb.store.client.Query(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("docstore: query failed: %w", err)
	}
	return unmarshalPage[T](out.Items, out.LastEvaluatedKey)
}

func (qb *QueryBuilder[T]) execScan(ctx context.Context, expr expression.Expression) ([]T, string, error) {
	input := &dynamodb.ScanInput{
		TableName:                 aws.String(qb.store.cfg.TableName),
		IndexName:                 qb.indexName,
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     qb.limit,
		ExclusiveStartKey:         qb.startKey,
	}

	out, err := qb.store.client.Scan(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("docstore: scan failed: %w", err)
	}
	return unmarshalPage[T](out.Items, out.LastEvaluatedKey)
}

func unmarshalPage[T any](
	items []map[string]types.AttributeValue,
	lastKey map[string]types.AttributeValue,
) ([]T, string, error) {
	result := make([]T, 0, len(items))
	for _, item := range items {
		var t T
		if err := attributevalue.UnmarshalMap(item, &t); err != nil {
			return nil, "", fmt.Errorf("docstore: unmarshal failed: %w", err)
		}
		result = append(result, t)
	}
	return result, encodeCursor(lastKey), nil
}
