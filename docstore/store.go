// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
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

type documentStore[T any] struct {
	client Client
	cfg    TableConfig[T]
}

// New cria um store reutilizável sobre a tabela configurada.
func New[T any](client Client, cfg TableConfig[T]) Store[T] {
	return &documentStore[T]{
		client: client,
		cfg:    cfg,
	}
}

func (s *documentStore[T]) Table() TableConfig[T] {
	return s.cfg
}

// key monta a chave primária da tabela (sortKey opcional).
func (s *documentStore[T]) key(hashKey, sortKey any) map[string]types.AttributeValue {
	key := map[string]types.AttributeValue{
		s.cfg.HashKey: attr(hashKey),
	}
	if s.cfg.SortKey != "" && sortKey != nil {
		key[s.cfg.SortKey] = attr(sortKey)
	}
	return key
}

// Get busca um registro pela chave primária (leitura consistente).
func (s *documentStore[T]) Get(ctx context.Context, hashKey, sortKey any) (*T, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.cfg.TableName),
		Key:            s.key(hashKey, sortKey),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("docstore: get failed: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("docstore: unmarshal failed: %w", err)
	}
	return &item, nil
}

// Put grava um registro (upsert).
func (s *documentStore[T]) Put(ctx context.Context, item T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("docstore: marshal failed: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.cfg.TableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("docstore: put failed: %w", err)
	}
	return nil
}

// Update altera apenas os atributos informados em `set` e devolve o registro
// resultante. O registro precisa existir (condição na chave de partição).
func (s *documentStore[T]) Update(ctx context.Context, hashKey, sortKey any, set map[string]any) (*T, error) {
	if len(set) == 0 {
		return s.Get(ctx, hashKey, sortKey)
	}

	var upd expression.UpdateBuilder
	for name, value := range set {
		upd = upd.Set(expression.Name(name), expression.Value(value))
	}
	cond := expression.AttributeExists(expression.Name(s.cfg.HashKey))

	expr, err := expression.NewBuilder().WithUpdate(upd).WithCondition(cond).Build()
	if err != nil {
		return nil, fmt.Errorf("docstore: update expression failed: %w", err)
	}

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.cfg.TableName),
		Key:                       s.key(hashKey, sortKey),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if ConditionFailed(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("docstore: update failed: %w", err)
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, fmt.Errorf("docstore: unmarshal failed: %w", err)
	}
	return &item, nil
}

// Delete remove um registro pela chave primária.
func (s *documentStore[T]) Delete(ctx context.Context, hashKey, sortKey any) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.cfg.TableName),
		Key:       s.key(hashKey, sortKey),
	})
	if err != nil {
		return fmt.Errorf("docstore: delete failed: %w", err)
	}
	return nil
}

// BatchGet busca várias chaves, em lotes de até 100 por chamada ao serviço.
func (s *documentStore[T]) BatchGet(ctx context.Context, keys [][2]any) ([]T, error) {
	var keysToGet []map[string]types.AttributeValue
	for _, k := range keys {
		keysToGet = append(keysToGet, s.key(k[0], k[1]))
	}

	var results []T

	for i := 0; i < len(keysToGet); i += 100 {
		end := min(i+100, len(keysToGet))

		resp, err := s.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				s.cfg.TableName: {
					Keys:           keysToGet[i:end],
					ConsistentRead: aws.Bool(true),
				},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("docstore: batchget failed: %w", err)
		}

		for _, item := range resp.Responses[s.cfg.TableName] {
			var t T
			if err := attributevalue.UnmarshalMap(item, &t); err != nil {
				return nil, fmt.Errorf("docstore: unmarshal failed: %w", err)
			}
			results = append(results, t)
		}
	}

	return results, nil
}

// BatchPut grava vários registros respeitando o limite de 25 por chamada.
func (s *documentStore[T]) BatchPut(ctx context.Context, items []T) error {
	var writes []types.WriteRequest
	for _, item := range items {
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return fmt.Errorf("docstore: marshal failed: %w", err)
		}
		writes = append(writes, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}

	for i := 0; i < len(writes); i += 25 {
		end := min(i+25, len(writes))

		_, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.cfg.TableName: writes[i:end],
			},
		})
		if err != nil {
			return fmt.Errorf("docstore: batchput failed: %w", err)
		}
	}
	return nil
}

// attr converte qualquer valor para types.AttributeValue.
func attr(v any) types.AttributeValue {
	if v == nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	return av
}
