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
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/raywall/dynamodb-ledger-lessons/admin"
	"github.com/raywall/dynamodb-ledger-lessons/ledger"
	"github.com/raywall/dynamodb-ledger-lessons/lessons"
)

var configPath = flag.String("config", "", "caminho do arquivo de configuração (vazio usa lessons.yaml)")

const (
	totalCustomers  = 50
	initialBalance  = 100
	totalTransfers  = 100
	maxTransferable = 10
	auditPageSize   = 10
)

func main() {
	flag.Parse()
	if err := run(context.Background(), *configPath); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run aplica uma rajada de transferências aleatórias e confere que a soma dos
// saldos não mudou: dinheiro muda de dono, nunca de quantidade.
func run(ctx context.Context, cfgPath string) error {
	env, err := lessons.Bootstrap(cfgPath)
	if err != nil {
		return err
	}
	logger := env.Log.With().Str("lesson", "4").Logger()

	key := admin.NewSessionKey(env.Config.Database.Name)
	db, err := lessons.ConnectSession(ctx, env.Config.Database, key)
	if err != nil {
		return err
	}

	prov := admin.NewProvisioner(db, logger)
	if err := prov.EnsureFresh(ctx, ledger.CustomersSpec()); err != nil {
		return err
	}
	if err := prov.EnsureFresh(ctx, ledger.TransactionsSpec()); err != nil {
		return err
	}
	defer func() {
		for _, table := range []string{ledger.CustomersTable, ledger.TransactionsTable} {
			if err := prov.Drop(context.Background(), table); err != nil {
				logger.Error().Err(err).Str("table", table).Msg("Falha ao remover tabela")
			}
		}
	}()

	customers := ledger.NewCustomerRepository(db)
	if err := customers.Seed(ctx, totalCustomers, func(int) int { return initialBalance }); err != nil {
		return err
	}
	logger.Info().Int("customers", totalCustomers).Int("balance", initialBalance).Msg("Clientes criados")

	before, err := customers.SumBalances(ctx, auditPageSize)
	if err != nil {
		return err
	}
	logger.Info().Int("sum", before).Msg("Soma dos saldos antes das transferências")

	svc := ledger.NewTransferService(db, env.Metrics, logger)

	applied, rejected := 0, 0
	for i := 0; i < totalTransfers; i++ {
		outcome, err := svc.RandomTransfer(ctx, totalCustomers, maxTransferable)
		if err != nil {
			return err
		}
		switch outcome.Status {
		case ledger.StatusApplied:
			applied++
		case ledger.StatusInsufficientFunds:
			rejected++
		}
	}
	logger.Info().
		Int("applied", applied).
		Int("rejected", rejected).
		Msg("Rajada de transferências concluída")

	after, err := customers.SumBalances(ctx, auditPageSize)
	if err != nil {
		return err
	}
	logger.Info().Int("sum", after).Msg("Soma dos saldos depois das transferências")

	if before != after {
		return fmt.Errorf("soma dos saldos mudou: antes %d, depois %d", before, after)
	}
	logger.Info().Msg("Invariante confirmada: a soma dos saldos não mudou")

	return nil
}
