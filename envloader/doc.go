// Package envloader preenche structs de configuração a partir de variáveis
// de ambiente, usando as tags "env" e "envDefault".
//
// Regras:
//   - Campos sem tag "env" são ignorados.
//   - Structs aninhadas (valor ou ponteiro) são processadas recursivamente.
//   - Variável ausente cai para o "envDefault"; sem default, o campo fica
//     com o valor que já tinha.
//   - Tipos suportados: string, inteiros, bool, floats e time.Duration.
//
// Exemplo:
//
//	type LessonConfig struct {
//		Endpoint string        `env:"LESSONS_ENDPOINT" envDefault:"http://localhost:8000"`
//		Timeout  time.Duration `env:"LESSONS_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg LessonConfig
//	if err := envloader.Load(&cfg); err != nil { ... }
package envloader
