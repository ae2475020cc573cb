package metrics

// Provider define o contrato de envio de métricas das lições.
// Permite trocar Datadog por outro backend (ou por Noop) sem tocar o ledger.
type Provider interface {
	Count(name string, value int64, tags []string) error
	Gauge(name string, value float64, tags []string) error
}

// Noop descarta tudo. É o provider quando métricas estão desabilitadas.
type Noop struct{}

func (Noop) Count(string, int64, []string) error   { return nil }
func (Noop) Gauge(string, float64, []string) error { return nil }
