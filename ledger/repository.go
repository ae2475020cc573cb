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
package ledger

import (
	"context"
	"fmt"

	"github.com/raywall/dynamodb-ledger-lessons/docstore"
)

// CustomerRepository dá acesso tipado aos clientes.
type CustomerRepository struct {
	store docstore.Store[Customer]
}

func NewCustomerRepository(client docstore.Client) *CustomerRepository {
	return &CustomerRepository{
		store: docstore.New(client, docstore.TableConfig[Customer]{
			TableName: CustomersTable,
			HashKey:   "id",
		}),
	}
}

// Table expõe a configuração para quem monta escritas transacionais.
func (r *CustomerRepository) Table() docstore.TableConfig[Customer] {
	return r.store.Table()
}

// Save grava o cliente garantindo o atributo de partição do índice ordenado.
func (r *CustomerRepository) Save(ctx context.Context, c Customer) error {
	c.Partition = CustomerPartition
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("ledger: invalid customer: %w", err)
	}
	return r.store.Put(ctx, c)
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*Customer, error) {
	return r.store.Get(ctx, id, nil)
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	return r.store.Delete(ctx, id, nil)
}

// UpdateBalance sobrescreve o saldo de um cliente existente.
func (r *CustomerRepository) UpdateBalance(ctx context.Context, id, balance int) (*Customer, error) {
	return r.store.Update(ctx, id, nil, map[string]any{"balance": balance})
}

// Seed cria clientes com ids de 1 a n e saldo dado por balanceFor(id).
func (r *CustomerRepository) Seed(ctx context.Context, n int, balanceFor func(id int) int) error {
	customers := make([]Customer, n)
	for i := range customers {
		id := i + 1
		customers[i] = Customer{
			ID:        id,
			Balance:   balanceFor(id),
			Partition: CustomerPartition,
		}
	}
	return r.store.BatchPut(ctx, customers)
}

// GetMany devolve os clientes dos ids informados, em uma leitura em lote.
func (r *CustomerRepository) GetMany(ctx context.Context, ids []int) ([]Customer, error) {
	keys := make([][2]any, len(ids))
	for i, id := range ids {
		keys[i] = [2]any{id, nil}
	}
	return r.store.BatchGet(ctx, keys)
}

// ordered inicia uma consulta pelo índice ordenado de clientes.
func (r *CustomerRepository) ordered() *docstore.QueryBuilder[Customer] {
	return r.store.Query().
		Index(CustomerIDFilter).
		KeyEqual("pk", CustomerPartition)
}

// RangeBelow devolve os clientes com id < max, em ordem crescente.
func (r *CustomerRepository) RangeBelow(ctx context.Context, max int) ([]Customer, error) {
	items, _, err := r.ordered().KeyLessThan("id", max).Exec(ctx)
	return items, err
}

// RangeBetween devolve os clientes com min <= id < max. O limite superior
// corta na chave; o inferior é um filtro aplicado pelo serviço sobre a página.
func (r *CustomerRepository) RangeBetween(ctx context.Context, min, max int) ([]Customer, error) {
	items, _, err := r.ordered().
		KeyLessThan("id", max).
		FilterGreaterThanEqual("id", min).
		Exec(ctx)
	return items, err
}

// PageThrough percorre todos os clientes em páginas de `size`, entregando
// página a página — inclusive o cursor devolvido pelo serviço em cada corte.
func (r *CustomerRepository) PageThrough(ctx context.Context, size int32, visit func(page docstore.Page[Customer]) error) error {
	return r.ordered().EachPage(ctx, size, visit)
}

// SumBalances soma o saldo de todos os clientes drenando o índice ordenado.
func (r *CustomerRepository) SumBalances(ctx context.Context, pageSize int32) (int, error) {
	sum := 0
	err := r.ordered().Each(ctx, pageSize, func(c Customer) error {
		sum += c.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sum, nil
}

// TransactionRepository dá acesso tipado aos registros de auditoria.
type TransactionRepository struct {
	store docstore.Store[Transaction]
}

func NewTransactionRepository(client docstore.Client) *TransactionRepository {
	return &TransactionRepository{
		store: docstore.New(client, docstore.TableConfig[Transaction]{
			TableName: TransactionsTable,
			HashKey:   "id",
		}),
	}
}

func (r *TransactionRepository) Table() docstore.TableConfig[Transaction] {
	return r.store.Table()
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*Transaction, error) {
	return r.store.Get(ctx, id, nil)
}

// ListBySource devolve as transferências originadas por um cliente.
func (r *TransactionRepository) ListBySource(ctx context.Context, sourceID int) ([]Transaction, error) {
	items, _, err := r.store.Query().
		Index(TransactionsBySource).
		KeyEqual("sourceCust", sourceID).
		Exec(ctx)
	return items, err
}
