package docstore_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/raywall/dynamodb-ledger-lessons/docstore"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerItem(id, balance int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":      &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		"balance": &types.AttributeValueMemberN{Value: strconv.Itoa(balance)},
	}
}

func TestQuery_Exec_ReturnsItemsAndEmptyTokenOnLastPage(t *testing.T) {
	t.Parallel()

	client := &docstore.MockClient{
		QueryFn: func(ctx context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, "customers", *params.TableName)
			assert.Equal(t, "customer-id-filter", *params.IndexName)
			require.NotNil(t, params.KeyConditionExpression)
			assert.Nil(t, params.ExclusiveStartKey)
			return &dynamodb.QueryOutput{
				Items:            []map[string]types.AttributeValue{customerItem(1, 10), customerItem(2, 20)},
				LastEvaluatedKey: nil,
			}, nil
		},
	}

	items, token, err := newTestStore(client).Query().
		Index("customer-id-filter").
		KeyEqual("pk", "customer").
		Limit(8).
		Exec(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
	assert.Empty(t, token, "sem LastEvaluatedKey o token é vazio")
}

func TestQuery_Exec_CursorRoundTrip(t *testing.T) {
	t.Parallel()

	lastKey := map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: "customer"},
		"id": &types.AttributeValueMemberN{Value: "8"},
	}

	var received map[string]types.AttributeValue
	client := &docstore.MockClient{
		QueryFn: func(ctx context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			received = params.ExclusiveStartKey
			if received == nil {
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{customerItem(8, 80)},
					LastEvaluatedKey: lastKey,
				}, nil
			}
			return &dynamodb.QueryOutput{
				Items: []map[string]types.AttributeValue{customerItem(9, 90)},
			}, nil
		},
	}
	store := newTestStore(client)

	_, token, err := store.Query().KeyEqual("pk", "customer").Exec(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// o token devolvido retoma exatamente da LastEvaluatedKey original
	items, next, err := store.Query().
		KeyEqual("pk", "customer").
		StartFrom(token).
		Exec(context.Background())

	require.NoError(t, err)
	assert.Equal(t, lastKey, received)
	require.Len(t, items, 1)
	assert.Equal(t, 9, items[0].ID)
	assert.Empty(t, next)
}

func TestQuery_StartFrom_InvalidToken(t *testing.T) {
	t.Parallel()

	client := &docstore.MockClient{}

	_, _, err := newTestStore(client).Query().
		KeyEqual("pk", "customer").
		StartFrom("*** token corrompido ***").
		Exec(context.Background())

	assert.ErrorContains(t, err, "invalid cursor")
}

func TestScan_Exec_UsesScanWhenNoKeyCondition(t *testing.T) {
	t.Parallel()

	scanned := false
	client := &docstore.MockClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			scanned = true
			assert.NotNil(t, params.FilterExpression)
			return &dynamodb.ScanOutput{
				Items: []map[string]types.AttributeValue{customerItem(5, 50)},
			}, nil
		},
	}

	items, token, err := newTestStore(client).Scan().
		FilterEqual("balance", 50).
		Exec(context.Background())

	require.NoError(t, err)
	assert.True(t, scanned)
	assert.Len(t, items, 1)
	assert.Empty(t, token)
}

func TestQuery_KeyBetween(t *testing.T) {
	t.Parallel()

	client := &docstore.MockClient{
		QueryFn: func(ctx context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			// BETWEEN aparece na expressão de chave montada pelo builder
			assert.Contains(t, *params.KeyConditionExpression, "BETWEEN")
			return &dynamodb.QueryOutput{}, nil
		},
	}

	_, _, err := newTestStore(client).Query().
		KeyEqual("pk", "customer").
		KeyBetween("id", 5, 10).
		Exec(context.Background())

	require.NoError(t, err)
}

// EachPage com builder real + cliente mockado: 20 itens em páginas de 8
// devem produzir 3 requisições (8, 8, 4) e parar sem token.
func TestQuery_EachPage_DrainsWholeIndex(t *testing.T) {
	t.Parallel()

	const total = 20
	client := &docstore.MockClient{
		QueryFn: func(ctx context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			start := 0
			if params.ExclusiveStartKey != nil {
				n := params.ExclusiveStartKey["id"].(*types.AttributeValueMemberN)
				start, _ = strconv.Atoi(n.Value)
			}

			size := int(*params.Limit)
			out := &dynamodb.QueryOutput{}
			end := min(start+size, total)
			for id := start + 1; id <= end; id++ {
				out.Items = append(out.Items, customerItem(id, id*10))
			}
			if end < total {
				out.LastEvaluatedKey = map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
				}
			}
			return out, nil
		},
	}

	var pageSizes []int
	var visited []int
	err := newTestStore(client).Query().
		KeyEqual("pk", "customer").
		EachPage(context.Background(), 8, func(page docstore.Page[testCustomer]) error {
			pageSizes = append(pageSizes, len(page.Items))
			for _, c := range page.Items {
				visited = append(visited, c.ID)
			}
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, []int{8, 8, 4}, pageSizes)
	require.Len(t, visited, total)
	for i, id := range visited {
		assert.Equal(t, i+1, id)
	}
}
