package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/raywall/dynamodb-ledger-lessons/admin"
	"github.com/raywall/dynamodb-ledger-lessons/docstore"
	"github.com/raywall/dynamodb-ledger-lessons/ledger"
	"github.com/raywall/dynamodb-ledger-lessons/lessons"
)

var configPath = flag.String("config", "", "caminho do arquivo de configuração (vazio usa lessons.yaml)")

func main() {
	flag.Parse()
	if err := run(context.Background(), *configPath); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run demonstra o ciclo completo de um registro: criar, ler, atualizar,
// reler e apagar um cliente usando uma chave de sessão própria.
func run(ctx context.Context, cfgPath string) error {
	env, err := lessons.Bootstrap(cfgPath)
	if err != nil {
		return err
	}
	logger := env.Log.With().Str("lesson", "2").Logger()

	key := admin.NewSessionKey(env.Config.Database.Name)
	logger.Info().Str("access_key_id", key.AccessKeyID).Msg("Chave de sessão gerada")

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

	if err := repo.Save(ctx, ledger.Customer{ID: 1, Balance: 100}); err != nil {
		return err
	}
	logger.Info().Msg("Cliente criado")

	customer, err := repo.GetByID(ctx, 1)
	if err != nil {
		return err
	}
	logger.Info().Str("customer", lessons.PrettyJSON(customer)).Msg("Cliente lido")

	customer, err = repo.UpdateBalance(ctx, 1, 150)
	if err != nil {
		return err
	}
	logger.Info().Str("customer", lessons.PrettyJSON(customer)).Msg("Saldo atualizado")

	customer, err = repo.GetByID(ctx, 1)
	if err != nil {
		return err
	}
	logger.Info().Str("customer", lessons.PrettyJSON(customer)).Msg("Cliente relido")

	if err := repo.Delete(ctx, 1); err != nil {
		return err
	}
	if _, err := repo.GetByID(ctx, 1); !errors.Is(err, docstore.ErrNotFound) {
		return errors.New("cliente ainda presente depois da remoção")
	}
	logger.Info().Msg("Cliente removido")

	return nil
}
