package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/raywall/dynamodb-ledger-lessons/envloader"
)

// DefaultPath é o arquivo de configuração procurado quando nenhum caminho é
// informado. A ausência do arquivo não é erro: os defaults bastam.
const DefaultPath = "lessons.yaml"

// Load monta a configuração das lições: defaults (tags envDefault), depois o
// YAML se existir, depois as variáveis de ambiente de fato definidas. O
// resultado sai validado.
func Load(path string) (*LessonConfig, error) {
	if path == "" {
		path = DefaultPath
	}

	var cfg LessonConfig
	if err := envloader.Load(&cfg); err != nil {
		return nil, fmt.Errorf("config: defaults failed: %w", err)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s failed: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// sem arquivo, segue com defaults + env
	default:
		return nil, fmt.Errorf("config: read %s failed: %w", path, err)
	}

	if err := envloader.Overlay(&cfg); err != nil {
		return nil, fmt.Errorf("config: env overlay failed: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate aplica as regras estruturais (tags) da configuração.
func Validate(cfg *LessonConfig) error {
	if err := validator.New().Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			msgs := make([]string, 0, len(validationErrors))
			for _, e := range validationErrors {
				msgs = append(msgs, fmt.Sprintf("campo '%s' falhou na regra '%s'", e.Field(), e.Tag()))
			}
			return fmt.Errorf("config: validação falhou:\n- %s", strings.Join(msgs, "\n- "))
		}
		return fmt.Errorf("config: validação falhou: %w", err)
	}
	return nil
}
