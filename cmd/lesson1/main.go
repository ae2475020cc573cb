package main

import (
	"context"
	"flag"
	"log"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/raywall/dynamodb-ledger-lessons/admin"
	"github.com/raywall/dynamodb-ledger-lessons/lessons"
)

var configPath = flag.String("config", "", "caminho do arquivo de configuração (vazio usa lessons.yaml)")

func main() {
	flag.Parse()
	if err := run(context.Background(), *configPath); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run conecta com a credencial administrativa, cria um banco de teste e o
// remove em seguida: o ciclo de vida mais curto possível.
func run(ctx context.Context, cfgPath string) error {
	env, err := lessons.Bootstrap(cfgPath)
	if err != nil {
		return err
	}
	logger := env.Log.With().Str("lesson", "1").Logger()

	db, err := lessons.ConnectAdmin(ctx, env.Config.Database)
	if err != nil {
		return err
	}
	logger.Info().
		Str("endpoint", env.Config.Database.Endpoint).
		Msg("Conectado com a credencial administrativa")

	prov := admin.NewProvisioner(db, logger)
	probe := admin.TableSpec{
		Name:    env.Config.Database.Name,
		HashKey: admin.KeySpec{Name: "id", Type: types.ScalarAttributeTypeS},
	}

	if err := prov.EnsureFresh(ctx, probe); err != nil {
		return err
	}

	exists, err := prov.Exists(ctx, probe.Name)
	if err != nil {
		return err
	}
	logger.Info().Str("database", probe.Name).Bool("exists", exists).Msg("Banco criado")

	if err := prov.Drop(ctx, probe.Name); err != nil {
		return err
	}

	exists, err = prov.Exists(ctx, probe.Name)
	if err != nil {
		return err
	}
	logger.Info().Str("database", probe.Name).Bool("exists", exists).Msg("Banco removido")

	return nil
}
