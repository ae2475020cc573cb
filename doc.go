// Package dynamodb_ledger_lessons é uma série de lições sequenciais que
// demonstram, passo a passo, como trabalhar com um banco de documentos
// (Amazon DynamoDB ou DynamoDB Local) em Go: provisionar tabelas e índices,
// executar operações CRUD, consumir consultas paginadas por cursor e aplicar
// transferências condicionais de saldo em uma única transação do serviço.
//
// Visão Geral:
// Cada lição é um executável independente em cmd/, com fluxo linear:
// conectar, provisionar, executar uma sequência de operações, registrar os
// resultados em JSON e encerrar as conexões. Toda a consistência das
// operações condicionais pertence ao serviço remoto — o código local nunca
// implementa atomicidade própria.
//
// Sub-Pacotes Principais:
//
// 1. docstore:
//   - Store[T] genérico e tipado sobre o DynamoDB (CRUD, Batch, Update).
//   - QueryBuilder fluente com paginação por token opaco.
//   - Drain/Collect: consumo completo de consultas paginadas (uma página
//     em memória por vez, visita única e em ordem de cada item).
//   - Escritas transacionais condicionais (TransactWriteItems).
//
// 2. admin:
//   - Provisionamento de tabelas e GSIs com espera de ACTIVE.
//   - Geração de chaves de sessão (namespace isolado no DynamoDB Local).
//
// 3. ledger:
//   - Modelos Customer/Transaction, repositórios e o TransferService com a
//     guarda de saldo não-negativo delegada ao serviço.
//
// 4. lessons:
//   - Bootstrap compartilhado das lições: configuração, conexões e dump
//     JSON identado dos resultados.
//
// As Lições:
//
//	cmd/lesson1 — conexão administrativa, criação e remoção de uma tabela.
//	cmd/lesson2 — provisionamento + CRUD de um único cliente.
//	cmd/lesson3 — consultas por índice, faixas e o laço de paginação.
//	cmd/lesson4 — ledger: 50 clientes, 100 transferências aleatórias e
//	              auditoria da soma de saldos antes e depois.
package dynamodb_ledger_lessons
