package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	config "github.com/mutablelogic/go-llm-probe/pkg/config"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "probe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_config_001(t *testing.T) {
	// Defaults are valid
	assert := assert.New(t)
	c := config.Default()
	assert.NoError(c.Validate())
	assert.Equal("Who is Ash Ketchum?", c.Prompt)
	assert.Equal(3*time.Second, c.Interval)
	assert.Equal(uint(64), c.MaxTokens)
	assert.Equal(0.7, c.Temperature)
	assert.Equal([]schema.Surface{schema.Completion, schema.ChatCompletion}, c.Surfaces)
	assert.Equal("free_models", c.Input)
	assert.Equal("free_working_completion_models", c.OutputName(schema.Completion))
	assert.Equal("free_working_chat_completion_models", c.OutputName(schema.ChatCompletion))
	assert.Equal("free_working_completion_models_report", c.ReportName(schema.Completion))

	// An empty path also gives the defaults
	loaded, err := config.Load("")
	assert.NoError(err)
	assert.Equal(c, loaded)
}

func Test_config_002(t *testing.T) {
	// File values replace the defaults they name
	assert := assert.New(t)
	c, err := config.Load(writeConfig(t, `
prompt: Say hello
interval: 500ms
surfaces: [chat_completion]
report: true
`))
	require.NoError(t, err)
	assert.Equal("Say hello", c.Prompt)
	assert.Equal(500*time.Millisecond, c.Interval)
	assert.Equal([]schema.Surface{schema.ChatCompletion}, c.Surfaces)
	assert.True(c.Report)
	assert.Equal(uint(64), c.MaxTokens)
	assert.Equal("free_models", c.Input)
}

func Test_config_003(t *testing.T) {
	assert := assert.New(t)

	// Missing file
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(err, probe.ErrNotFound)

	// Unknown key
	_, err = config.Load(writeConfig(t, "prompts: nope\n"))
	assert.ErrorIs(err, probe.ErrBadParameter)

	// Unknown surface
	_, err = config.Load(writeConfig(t, "surfaces: [embeddings]\n"))
	assert.ErrorIs(err, probe.ErrBadParameter)

	// Empty file
	_, err = config.Load(writeConfig(t, ""))
	assert.NoError(err)
}

func Test_config_004(t *testing.T) {
	assert := assert.New(t)
	tests := []func(*config.Config){
		func(c *config.Config) { c.Prompt = " " },
		func(c *config.Config) { c.Interval = -time.Second },
		func(c *config.Config) { c.MaxTokens = 0 },
		func(c *config.Config) { c.Temperature = 2.5 },
		func(c *config.Config) { c.Surfaces = nil },
		func(c *config.Config) { c.Surfaces = []schema.Surface{schema.Completion, schema.Completion} },
		func(c *config.Config) { c.Input = "../models" },
		func(c *config.Config) { c.Output = "working_models" },
		func(c *config.Config) { c.Output = "%s_%d" },
		func(c *config.Config) { c.Output = "../%s" },
		func(c *config.Config) { c.Data = "" },
	}
	for i, fn := range tests {
		c := config.Default()
		fn(&c)
		assert.ErrorIs(c.Validate(), probe.ErrBadParameter, "case %d", i)
	}
}
