package ledger

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/raywall/dynamodb-ledger-lessons/admin"
)

// CustomersSpec descreve a tabela de clientes: chave primária pelo id e o
// índice ordenado (partição fixa + id como chave de ordenação) que serve as
// consultas por faixa e a paginação.
func CustomersSpec() admin.TableSpec {
	return admin.TableSpec{
		Name:    CustomersTable,
		HashKey: admin.KeySpec{Name: "id", Type: types.ScalarAttributeTypeN},
		Indexes: []admin.IndexSpec{
			{
				Name:    CustomerIDFilter,
				HashKey: admin.KeySpec{Name: "pk", Type: types.ScalarAttributeTypeS},
				SortKey: &admin.KeySpec{Name: "id", Type: types.ScalarAttributeTypeN},
			},
		},
	}
}

// TransactionsSpec descreve a tabela de auditoria, indexada também pelo
// cliente de origem.
func TransactionsSpec() admin.TableSpec {
	return admin.TableSpec{
		Name:    TransactionsTable,
		HashKey: admin.KeySpec{Name: "id", Type: types.ScalarAttributeTypeS},
		Indexes: []admin.IndexSpec{
			{
				Name:    TransactionsBySource,
				HashKey: admin.KeySpec{Name: "sourceCust", Type: types.ScalarAttributeTypeN},
			},
		},
	}
}
