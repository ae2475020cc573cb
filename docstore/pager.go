package docstore

import "context"

// Page é um lote limitado de resultados de uma execução de consulta, mais o
// token de continuação fornecido pelo serviço. Invariante: Cursor vazio
// significa que esta é a última página.
type Page[T any] struct {
	Items  []T
	Cursor string
}

// FetchFunc emite exatamente uma requisição ao serviço e devolve uma página.
// Cursor vazio inicia do começo; qualquer outro valor retoma de onde o
// serviço parou. O estado de paginação pertence ao serviço, não ao cliente.
type FetchFunc[T any] func(ctx context.Context, cursor string, size int32) (Page[T], error)

// Drain consome a consulta paginada por completo: busca página a página,
// visita cada item na ordem em que o serviço devolve e encerra quando uma
// página chega sem token de continuação.
//
// O cursor é o acumulador explícito do laço — não há estado compartilhado
// entre iterações além dele, e nunca mais de uma página fica em memória.
// Um conjunto vazio termina após uma única busca sem visitar item algum.
//
// Qualquer erro (da busca ou do visitante) interrompe o laço e propaga;
// itens já visitados permanecem visitados.
func Drain[T any](ctx context.Context, size int32, fetch FetchFunc[T], visit func(item T) error) error {
	cursor := ""
	for {
		page, err := fetch(ctx, cursor, size)
		if err != nil {
			return err
		}

		for _, item := range page.Items {
			if err := visit(item); err != nil {
				return err
			}
		}

		if page.Cursor == "" {
			return nil
		}
		cursor = page.Cursor
	}
}

// Collect drena a consulta aplicando a transformação a cada item e acumula
// o resultado na ordem de chegada.
func Collect[T, R any](ctx context.Context, size int32, fetch FetchFunc[T], transform func(item T) (R, error)) ([]R, error) {
	var results []R
	err := Drain(ctx, size, fetch, func(item T) error {
		r, err := transform(item)
		if err != nil {
			return err
		}
		results = append(results, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// EachPage drena a consulta do builder entregando página a página, útil
// quando o chamador quer observar os cortes e os cursores do serviço.
func (qb *QueryBuilder[T]) EachPage(ctx context.Context, size int32, visit func(page Page[T]) error) error {
	fetch := qb.Fetcher()
	cursor := ""
	for {
		page, err := fetch(ctx, cursor, size)
		if err != nil {
			return err
		}
		if err := visit(page); err != nil {
			return err
		}
		if page.Cursor == "" {
			return nil
		}
		cursor = page.Cursor
	}
}

// Each drena a consulta do builder item a item.
func (qb *QueryBuilder[T]) Each(ctx context.Context, size int32, visit func(item T) error) error {
	return Drain(ctx, size, qb.Fetcher(), visit)
}
