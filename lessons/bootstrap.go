package lessons

import (
	"github.com/rs/zerolog"

	"github.com/raywall/dynamodb-ledger-lessons/pkg/config"
	"github.com/raywall/dynamodb-ledger-lessons/pkg/logger"
	"github.com/raywall/dynamodb-ledger-lessons/pkg/metrics"
)

// Env é o ambiente comum de uma lição: configuração carregada, logger e
// provider de métricas prontos.
type Env struct {
	Config  *config.LessonConfig
	Log     zerolog.Logger
	Metrics metrics.Provider
}

// Bootstrap carrega a configuração (path vazio usa o default) e monta o
// ambiente da lição.
func Bootstrap(path string) (*Env, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	provider, err := metrics.NewFromConfig(cfg.Metrics.Datadog)
	if err != nil {
		return nil, err
	}

	return &Env{
		Config:  cfg,
		Log:     logger.Configure(cfg.Logging),
		Metrics: provider,
	}, nil
}
