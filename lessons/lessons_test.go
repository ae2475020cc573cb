package lessons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapWithDefaults(t *testing.T) {
	env, err := Bootstrap("nao-existe.yaml")

	require.NoError(t, err, "sem arquivo os defaults bastam")
	assert.Equal(t, "http://localhost:8000", env.Config.Database.Endpoint)
	assert.NotNil(t, env.Metrics)
}

func TestBootstrapInvalidConfig(t *testing.T) {
	t.Setenv("LESSONS_LOG_LEVEL", "loudest")

	_, err := Bootstrap("nao-existe.yaml")
	require.Error(t, err)
}

func TestPrettyJSON(t *testing.T) {
	out := PrettyJSON(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{ID: 7, Name: "cliente"})

	assert.True(t, strings.Contains(out, "\"id\": 7"))
	assert.True(t, strings.Contains(out, "\"name\": \"cliente\""))
}

func TestPrettyJSONFallback(t *testing.T) {
	out := PrettyJSON(func() {})
	assert.NotEmpty(t, out)
}
