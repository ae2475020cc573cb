package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TxWrite é uma escrita condicional pronta para compor uma transação.
// Construa com TxPut/TxUpdate e submeta com TransactWrite.
type TxWrite struct {
	item types.TransactWriteItem
	err  error
}

// TxPut monta um Put transacional. A condição é opcional.
func TxPut[T any](table TableConfig[T], item T, cond *expression.ConditionBuilder) TxWrite {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return TxWrite{err: fmt.Errorf("docstore: tx marshal failed: %w", err)}
	}

	put := &types.Put{
		TableName: aws.String(table.TableName),
		Item:      av,
	}

	if cond != nil {
		expr, err := expression.NewBuilder().WithCondition(*cond).Build()
		if err != nil {
			return TxWrite{err: fmt.Errorf("docstore: tx condition failed: %w", err)}
		}
		put.ConditionExpression = expr.Condition()
		put.ExpressionAttributeNames = expr.Names()
		put.ExpressionAttributeValues = expr.Values()
	}

	return TxWrite{item: types.TransactWriteItem{Put: put}}
}

// TxUpdate monta um Update transacional sobre a chave informada.
func TxUpdate[T any](table TableConfig[T], hashKey, sortKey any, update expression.UpdateBuilder, cond *expression.ConditionBuilder) TxWrite {
	builder := expression.NewBuilder().WithUpdate(update)
	if cond != nil {
		builder = builder.WithCondition(*cond)
	}
	expr, err := builder.Build()
	if err != nil {
		return TxWrite{err: fmt.Errorf("docstore: tx update failed: %w", err)}
	}

	key := map[string]types.AttributeValue{
		table.HashKey: attr(hashKey),
	}
	if table.SortKey != "" && sortKey != nil {
		key[table.SortKey] = attr(sortKey)
	}

	return TxWrite{item: types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(table.TableName),
		Key:                       key,
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}}}
}

// TransactWrite submete as escritas como uma única unidade indivisível do
// serviço. Ou todas aplicam, ou nenhuma: a atomicidade é do DynamoDB, não
// deste cliente.
func TransactWrite(ctx context.Context, client Client, writes ...TxWrite) error {
	items := make([]types.TransactWriteItem, 0, len(writes))
	for _, w := range writes {
		if w.err != nil {
			return w.err
		}
		items = append(items, w.item)
	}

	_, err := client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return fmt.Errorf("docstore: transaction failed: %w", err)
	}
	return nil
}

// ConditionFailed informa se o erro foi um cancelamento por verificação
// condicional, ou seja, uma rejeição de regra e não uma falha de sistema.
func ConditionFailed(err error) bool {
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return true
	}

	var txErr *types.TransactionCanceledException
	if errors.As(err, &txErr) {
		for _, reason := range txErr.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}
