package ledger

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/raywall/dynamodb-ledger-lessons/docstore"
	"github.com/raywall/dynamodb-ledger-lessons/pkg/metrics"
)

// Status é o desfecho de uma tentativa de transferência.
type Status string

const (
	StatusApplied           Status = "applied"
	StatusInsufficientFunds Status = "insufficient_funds"
)

// Outcome descreve o resultado de uma transferência. Saldo insuficiente é um
// Outcome, não um erro: regra de negócio rejeitada não é falha de sistema.
type Outcome struct {
	Status      Status
	Transaction *Transaction
}

var validate = validator.New()

// TransferService aplica transferências condicionais entre clientes.
type TransferService struct {
	client       docstore.Client
	customers    *CustomerRepository
	transactions *TransactionRepository
	metrics      metrics.Provider
	log          zerolog.Logger
}

func NewTransferService(client docstore.Client, provider metrics.Provider, log zerolog.Logger) *TransferService {
	return &TransferService{
		client:       client,
		customers:    NewCustomerRepository(client),
		transactions: NewTransactionRepository(client),
		metrics:      provider,
		log:          log,
	}
}

// Transfer move `amount` do cliente de origem para o de destino.
//
// A sequência é leitura-antes-da-escrita: os dois clientes são lidos, o novo
// saldo de origem é calculado e, só se permanecer >= 0, as três escritas
// (auditoria, débito, crédito) são submetidas em uma única transação do
// serviço. O débito carrega a condição `balance >= amount`, então uma
// corrida entre a leitura e a escrita também termina em rejeição, nunca em
// saldo negativo.
func (s *TransferService) Transfer(ctx context.Context, sourceID, destID, amount int) (Outcome, error) {
	if sourceID == destID {
		return Outcome{}, fmt.Errorf("ledger: transfer needs distinct customers, got %d twice", sourceID)
	}
	if amount <= 0 {
		return Outcome{}, fmt.Errorf("ledger: transfer amount must be positive, got %d", amount)
	}

	source, err := s.customers.GetByID(ctx, sourceID)
	if err != nil {
		return Outcome{}, fmt.Errorf("ledger: source customer %d: %w", sourceID, err)
	}
	if _, err := s.customers.GetByID(ctx, destID); err != nil {
		return Outcome{}, fmt.Errorf("ledger: dest customer %d: %w", destID, err)
	}

	if source.Balance-amount < 0 {
		return s.reject(sourceID, destID, amount), nil
	}

	record := Transaction{
		ID:       uuid.NewString(),
		SourceID: sourceID,
		DestID:   destID,
		Amount:   amount,
	}
	if err := validate.Struct(record); err != nil {
		return Outcome{}, fmt.Errorf("ledger: invalid transaction: %w", err)
	}

	freshAudit := expression.AttributeNotExists(expression.Name("id"))
	enoughFunds := expression.GreaterThanEqual(expression.Name("balance"), expression.Value(amount))
	debit := expression.Set(
		expression.Name("balance"),
		expression.Minus(expression.Name("balance"), expression.Value(amount)),
	)
	credit := expression.Set(
		expression.Name("balance"),
		expression.Plus(expression.Name("balance"), expression.Value(amount)),
	)

	err = docstore.TransactWrite(ctx, s.client,
		docstore.TxPut(s.transactions.Table(), record, &freshAudit),
		docstore.TxUpdate(s.customers.Table(), sourceID, nil, debit, &enoughFunds),
		docstore.TxUpdate(s.customers.Table(), destID, nil, credit, nil),
	)
	if err != nil {
		if docstore.ConditionFailed(err) {
			// alguém gastou o saldo entre a leitura e a transação
			return s.reject(sourceID, destID, amount), nil
		}
		return Outcome{}, err
	}

	_ = s.metrics.Count("transfer.applied", 1, nil)
	s.log.Debug().
		Str("transaction", record.ID).
		Int("source", sourceID).
		Int("dest", destID).
		Int("amount", amount).
		Msg("Transferência aplicada")

	return Outcome{Status: StatusApplied, Transaction: &record}, nil
}

func (s *TransferService) reject(sourceID, destID, amount int) Outcome {
	_ = s.metrics.Count("transfer.rejected", 1, nil)
	s.log.Debug().
		Int("source", sourceID).
		Int("dest", destID).
		Int("amount", amount).
		Msg("Transferência rejeitada: saldo insuficiente")
	return Outcome{Status: StatusInsufficientFunds}
}

// RandomTransfer sorteia origem, destino e valor (1..maxAmount) e aplica a
// transferência. É o gerador de carga da quarta lição.
func (s *TransferService) RandomTransfer(ctx context.Context, numCustomers, maxAmount int) (Outcome, error) {
	sourceID := rand.Intn(numCustomers) + 1
	destID := rand.Intn(numCustomers) + 1
	for sourceID == destID {
		destID = rand.Intn(numCustomers) + 1
	}
	amount := rand.Intn(maxAmount) + 1

	return s.Transfer(ctx, sourceID, destID, amount)
}
