// Package ledger implementa o domínio das lições: clientes com saldo,
// transações de auditoria e a transferência condicional de fundos.
//
// A regra central é a guarda de não-negatividade: uma transferência só
// acontece se o saldo de origem pós-débito permanecer >= 0. A verificação é
// feita duas vezes: uma leitura local para rejeitar cedo, e uma
// ConditionExpression dentro do TransactWriteItems para que o serviço rejeite
// qualquer corrida que o cliente não viu. As três escritas (auditoria, débito
// e crédito) viajam em uma única transação do serviço; este pacote não
// implementa atomicidade própria.
//
// "Saldo insuficiente" é um resultado de negócio (Outcome), não um erro:
// o chamador inspeciona o Status e segue em frente.
package ledger
