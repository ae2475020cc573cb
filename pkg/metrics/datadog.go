package metrics

import (
	"fmt"

	"github.com/DataDog/datadog-go/v5/statsd"

	"github.com/raywall/dynamodb-ledger-lessons/pkg/config"
)

// statsdClient é o recorte do cliente statsd que o provider usa.
type statsdClient interface {
	Count(name string, value int64, tags []string, rate float64) error
	Gauge(name string, value float64, tags []string, rate float64) error
}

// DatadogProvider envia métricas via DogStatsD.
type DatadogProvider struct {
	client statsdClient
}

// NewFromConfig monta o provider a partir da configuração. Com métricas
// desabilitadas devolve Noop, assim as lições não exigem um agente rodando.
func NewFromConfig(cfg config.DatadogConf) (Provider, error) {
	if !cfg.Enabled {
		return Noop{}, nil
	}

	client, err := statsd.New(cfg.Addr, statsd.WithNamespace(cfg.Namespace))
	if err != nil {
		return nil, fmt.Errorf("metrics: statsd connect failed: %w", err)
	}
	return &DatadogProvider{client: client}, nil
}

func (d *DatadogProvider) Count(name string, value int64, tags []string) error {
	return d.client.Count(name, value, tags, 1)
}

func (d *DatadogProvider) Gauge(name string, value float64, tags []string) error {
	return d.client.Gauge(name, value, tags, 1)
}
