// Package docstore fornece uma camada genérica e fortemente tipada sobre o
// AWS DynamoDB Go SDK (v2), dimensionada para as lições deste repositório.
//
// Visão Geral:
// O pacote expõe a interface `Store[T]`, que cobre as operações usadas pelas
// lições (Get, Put, Update, Delete, BatchGet, BatchWrite) sem expor os tipos
// de baixo nível do SDK (AttributeValue, etc.).
//
// O `QueryBuilder[T]` permite montar consultas `Query` e `Scan` de forma
// fluente, com condições de chave por igualdade e por faixa, filtros, limite
// de página e continuação por token opaco. O token é a LastEvaluatedKey do
// serviço serializada em Base64 — o chamador nunca interpreta o conteúdo.
//
// Paginação:
// `Drain` e `Collect` consomem uma consulta paginada por completo: uma página
// em memória por vez, cada item visitado exatamente uma vez e na ordem em que
// o serviço devolve. O laço termina quando uma página chega sem token de
// continuação; um erro de transporte interrompe e propaga (itens já visitados
// permanecem visitados).
//
// Transações:
// `TransactWrite` submete um conjunto de escritas condicionais como uma única
// unidade indivisível do serviço (TransactWriteItems). `ConditionFailed`
// distingue o cancelamento por verificação condicional de falhas de sistema.
//
// Exemplo:
//
//	store := docstore.New(client, docstore.TableConfig[Customer]{
//		TableName: "customers",
//		HashKey:   "id",
//	})
//
//	err := docstore.Drain(ctx, 8,
//		store.Query().Index("customer-id-filter").KeyEqual("pk", "customer").Fetcher(),
//		func(c Customer) error {
//			log.Printf("%d: %d", c.ID, c.Balance)
//			return nil
//		})
package docstore
