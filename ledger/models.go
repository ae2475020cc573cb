package ledger

// CustomerPartition é o valor fixo do atributo de partição do índice
// ordenado de clientes. Com todos os clientes sob a mesma partição, o índice
// devolve os registros em ordem crescente de id — é ele que as consultas por
// faixa e a paginação percorrem.
const CustomerPartition = "customer"

// Customer é um cliente do ledger.
type Customer struct {
	ID        int    `dynamodbav:"id" validate:"gte=0"`
	Balance   int    `dynamodbav:"balance"`
	Partition string `dynamodbav:"pk" validate:"required"`
}

// Transaction é o registro de auditoria de uma transferência aplicada.
type Transaction struct {
	ID       string `dynamodbav:"id" validate:"required,uuid4"`
	SourceID int    `dynamodbav:"sourceCust" validate:"gte=0"`
	DestID   int    `dynamodbav:"destCust" validate:"gte=0,nefield=SourceID"`
	Amount   int    `dynamodbav:"amount" validate:"gt=0"`
}

// Tabelas e índices que as lições provisionam.
const (
	CustomersTable       = "customers"
	TransactionsTable    = "transactions"
	CustomerIDFilter     = "customer-id-filter"
	TransactionsBySource = "transactions-by-source"
)
