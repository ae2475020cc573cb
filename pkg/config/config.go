package config

// LessonConfig é a raiz da configuração das lições. Tudo tem default
// apontando para um DynamoDB Local em http://localhost:8000, de modo que as
// lições rodem sem nenhum setup. A precedência é: variável de ambiente >
// lessons.yaml > default.
type LessonConfig struct {
	Database DatabaseConf `yaml:"database"`
	Logging  LoggingConf  `yaml:"logging"`
	Metrics  MetricsConf  `yaml:"metrics"`
}

// DatabaseConf aponta para o serviço de banco de documentos.
type DatabaseConf struct {
	Endpoint string `yaml:"endpoint" env:"LESSONS_ENDPOINT" envDefault:"http://localhost:8000" validate:"required,url"`
	Region   string `yaml:"region" env:"LESSONS_REGION" envDefault:"us-east-1" validate:"required"`
	Name     string `yaml:"name" env:"LESSONS_DB_NAME" envDefault:"LedgerExample" validate:"required"`

	// Credencial administrativa usada para provisionar. No DynamoDB Local
	// qualquer par é aceito; contra um endpoint real, aponte SecretID para o
	// Secrets Manager em vez de embutir a credencial.
	AdminKeyID  string `yaml:"admin_key_id" env:"LESSONS_ADMIN_KEY_ID" envDefault:"admin" validate:"required"`
	AdminSecret string `yaml:"admin_secret" env:"LESSONS_ADMIN_SECRET" envDefault:"secret"`

	// SecretID (opcional): nome de um segredo no AWS Secrets Manager contendo
	// {"access_key_id": ..., "secret_access_key": ...}.
	SecretID string `yaml:"secret_id" env:"LESSONS_SECRET_ID"`

	// EndpointParam (opcional): caminho de um parâmetro no SSM Parameter
	// Store com a URL do endpoint, sobrepondo Endpoint.
	EndpointParam string `yaml:"endpoint_param" env:"LESSONS_ENDPOINT_PARAM"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"LESSONS_LOG_ENABLED" envDefault:"true"`
	Level   string `yaml:"level" env:"LESSONS_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format  string `yaml:"format" env:"LESSONS_LOG_FORMAT" envDefault:"console" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" envDefault:"localhost:8125" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"ledger.lessons."`
}
