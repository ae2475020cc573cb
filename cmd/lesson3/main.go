package main

import (
	"context"
	"flag"
	"log"

	"github.com/raywall/dynamodb-ledger-lessons/admin"
	"github.com/raywall/dynamodb-ledger-lessons/docstore"
	"github.com/raywall/dynamodb-ledger-lessons/ledger"
	"github.com/raywall/dynamodb-ledger-lessons/lessons"
)

var configPath = flag.String("config", "", "caminho do arquivo de configuração (vazio usa lessons.yaml)")

const (
	totalCustomers = 20
	pageSize       = 8
)

func main() {
	flag.Parse()
	if err := run(context.Background(), *configPath); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run demonstra as formas de leitura: pontual, em lote, por faixa e a
// varredura paginada do índice ordenado.
func run(ctx context.Context, cfgPath string) error {
	env, err := lessons.Bootstrap(cfgPath)
	if err != nil {
		return err
	}
	logger := env.Log.With().Str("lesson", "3").Logger()

	key := admin.NewSessionKey(env.Config.Database.Name)
	db, err := lessons.ConnectSession(ctx, env.Config.Database, key)
	if err != nil {
		return err
	}

	prov := admin.NewProvisioner(db, logger)
	if err := prov.EnsureFresh(ctx, ledger.CustomersSpec()); err != nil {
		return err
	}
	defer func() {
		if err := prov.Drop(context.Background(), ledger.CustomersTable); err != nil {
			logger.Error().Err(err).Msg("Falha ao remover a tabela de clientes")
		}
	}()

	repo := ledger.NewCustomerRepository(db)
	if err := repo.Seed(ctx, totalCustomers, func(id int) int { return id * 10 }); err != nil {
		return err
	}
	logger.Info().Int("customers", totalCustomers).Msg("Clientes criados")

	// Leitura pontual
	customer, err := repo.GetByID(ctx, 1)
	if err != nil {
		return err
	}
	logger.Info().Str("customer", lessons.PrettyJSON(customer)).Msg("Leitura pontual")

	// Leituras em lote
	three, err := repo.GetMany(ctx, []int{1, 3, 7})
	if err != nil {
		return err
	}
	logger.Info().Str("customers", lessons.PrettyJSON(three)).Msg("Três clientes por id")

	several, err := repo.GetMany(ctx, []int{1, 3, 6, 7})
	if err != nil {
		return err
	}
	logger.Info().Str("customers", lessons.PrettyJSON(several)).Msg("Lista arbitrária de ids")

	// Leituras por faixa
	below, err := repo.RangeBelow(ctx, 5)
	if err != nil {
		return err
	}
	logger.Info().Str("customers", lessons.PrettyJSON(below)).Msg("Clientes com id < 5")

	between, err := repo.RangeBetween(ctx, 5, 11)
	if err != nil {
		return err
	}
	logger.Info().Str("customers", lessons.PrettyJSON(between)).Msg("Clientes com 5 <= id < 11")

	// Varredura paginada: cada página sai com o cursor que a continua.
	page := 0
	err = repo.PageThrough(ctx, pageSize, func(p docstore.Page[ledger.Customer]) error {
		page++
		logger.Info().
			Int("page", page).
			Int("items", len(p.Items)).
			Str("cursor", p.Cursor).
			Str("customers", lessons.PrettyJSON(p.Items)).
			Msg("Página do índice ordenado")
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info().Int("pages", page).Msg("Varredura concluída")

	return nil
}
