package docstore_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/raywall/dynamodb-ledger-lessons/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher simula o serviço: fatia um conjunto fixo em páginas de `size`
// e devolve um cursor opaco enquanto houver resto.
func fakeFetcher(items []int) (docstore.FetchFunc[int], *int) {
	calls := new(int)
	fetch := func(ctx context.Context, cursor string, size int32) (docstore.Page[int], error) {
		*calls++

		start := 0
		if cursor != "" {
			var err error
			start, err = strconv.Atoi(cursor)
			if err != nil {
				return docstore.Page[int]{}, err
			}
		}

		end := min(start+int(size), len(items))
		page := docstore.Page[int]{Items: items[start:end]}
		if end < len(items) {
			page.Cursor = strconv.Itoa(end)
		}
		return page, nil
	}
	return fetch, calls
}

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestDrain_VisitsEveryItemOnceInOrder(t *testing.T) {
	t.Parallel()

	// 20 itens com páginas de 8 → 3 buscas (8, 8, 4)
	fetch, calls := fakeFetcher(sequence(20))

	var visited []int
	err := docstore.Drain(context.Background(), 8, fetch, func(item int) error {
		visited = append(visited, item)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, sequence(20), visited)
	assert.Equal(t, 3, *calls)
}

func TestDrain_PageSizeLargerThanSet(t *testing.T) {
	t.Parallel()

	fetch, calls := fakeFetcher(sequence(5))

	var visited []int
	err := docstore.Drain(context.Background(), 50, fetch, func(item int) error {
		visited = append(visited, item)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, sequence(5), visited)
	assert.Equal(t, 1, *calls)
}

func TestDrain_EmptyResultSet(t *testing.T) {
	t.Parallel()

	fetch, calls := fakeFetcher(nil)

	visited := 0
	err := docstore.Drain(context.Background(), 8, fetch, func(int) error {
		visited++
		return nil
	})

	require.NoError(t, err)
	assert.Zero(t, visited)
	assert.Equal(t, 1, *calls, "conjunto vazio termina após uma única busca")
}

func TestDrain_FetchErrorAborts(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0
	fetch := func(ctx context.Context, cursor string, size int32) (docstore.Page[int], error) {
		calls++
		if calls == 2 {
			return docstore.Page[int]{}, boom
		}
		return docstore.Page[int]{Items: []int{1, 2}, Cursor: "next"}, nil
	}

	var visited []int
	err := docstore.Drain(context.Background(), 2, fetch, func(item int) error {
		visited = append(visited, item)
		return nil
	})

	assert.ErrorIs(t, err, boom)
	// os itens da primeira página já foram entregues e não são desfeitos
	assert.Equal(t, []int{1, 2}, visited)
	assert.Equal(t, 2, calls)
}

func TestDrain_VisitErrorAborts(t *testing.T) {
	t.Parallel()

	fetch, calls := fakeFetcher(sequence(20))
	boom := errors.New("visit failed")

	var visited []int
	err := docstore.Drain(context.Background(), 8, fetch, func(item int) error {
		if item == 10 {
			return boom
		}
		visited = append(visited, item)
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, sequence(9), visited)
	assert.Equal(t, 2, *calls, "o erro na segunda página não dispara novas buscas")
}

func TestCollect_TransformsInOrder(t *testing.T) {
	t.Parallel()

	fetch, _ := fakeFetcher(sequence(10))

	got, err := docstore.Collect(context.Background(), 4, fetch, func(item int) (string, error) {
		return fmt.Sprintf("c-%d", item), nil
	})

	require.NoError(t, err)
	require.Len(t, got, 10)
	assert.Equal(t, "c-1", got[0])
	assert.Equal(t, "c-10", got[9])
}

func TestCollect_TransformError(t *testing.T) {
	t.Parallel()

	fetch, _ := fakeFetcher(sequence(10))
	boom := errors.New("transform failed")

	got, err := docstore.Collect(context.Background(), 4, fetch, func(item int) (int, error) {
		if item == 3 {
			return 0, boom
		}
		return item, nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestDrain_ReissueIsIdempotent(t *testing.T) {
	t.Parallel()

	// duas drenagens sobre os mesmos dados devolvem a mesma sequência
	run := func() []int {
		fetch, _ := fakeFetcher(sequence(13))
		var visited []int
		err := docstore.Drain(context.Background(), 5, fetch, func(item int) error {
			visited = append(visited, item)
			return nil
		})
		require.NoError(t, err)
		return visited
	}

	assert.Equal(t, run(), run())
}
