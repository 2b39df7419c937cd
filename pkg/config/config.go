/*
config holds the settings for a probe run, read from a YAML file over
built-in defaults.
*/
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	types "github.com/mutablelogic/go-llm-probe/pkg/types"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Config struct {
	// Probe parameters
	Prompt      string           `yaml:"prompt"`
	Interval    time.Duration    `yaml:"interval"`
	MaxTokens   uint             `yaml:"max_tokens"`
	Temperature float64          `yaml:"temperature"`
	Surfaces    []schema.Surface `yaml:"surfaces"`

	// Documents
	Data   string `yaml:"data"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Report bool   `yaml:"report"`

	// API
	Endpoint string        `yaml:"endpoint,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultPrompt      = "Who is Ash Ketchum?"
	DefaultInterval    = 3 * time.Second
	DefaultMaxTokens   = 64
	DefaultTemperature = 0.7
	DefaultData        = "."
	DefaultInput       = "free_models"
	DefaultOutput      = "free_working_%s_models"
	reportSuffix       = "_report"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Prompt:      DefaultPrompt,
		Interval:    DefaultInterval,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		Surfaces:    append([]schema.Surface(nil), schema.Surfaces...),
		Data:        DefaultData,
		Input:       DefaultInput,
		Output:      DefaultOutput,
	}
}

// Load reads a YAML file over the defaults and validates the result. An
// empty path returns the defaults.
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	r, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, probe.ErrNotFound.Withf("config: %s", path)
	} else if err != nil {
		return config, err
	}
	defer r.Close()

	// Decode over the defaults, rejecting unknown keys
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, probe.ErrBadParameter.Withf("config: %s: %v", path, err)
	}

	// Return validated config
	return config, config.Validate()
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks every value is in range
func (c Config) Validate() error {
	var result error
	if strings.TrimSpace(c.Prompt) == "" {
		result = errors.Join(result, probe.ErrBadParameter.With("prompt is required"))
	}
	if c.Interval < 0 {
		result = errors.Join(result, probe.ErrBadParameter.Withf("interval: %v is negative", c.Interval))
	}
	if c.MaxTokens == 0 {
		result = errors.Join(result, probe.ErrBadParameter.With("max_tokens: must be positive"))
	}
	if c.Temperature < 0 || c.Temperature > schema.MaxTemperature {
		result = errors.Join(result, probe.ErrBadParameter.Withf("temperature: %v is outside [0, %v]", c.Temperature, schema.MaxTemperature))
	}
	if c.Timeout < 0 {
		result = errors.Join(result, probe.ErrBadParameter.Withf("timeout: %v is negative", c.Timeout))
	}
	if len(c.Surfaces) == 0 {
		result = errors.Join(result, probe.ErrBadParameter.With("surfaces: at least one is required"))
	}
	seen := make(map[schema.Surface]bool, len(c.Surfaces))
	for _, surface := range c.Surfaces {
		if !surface.Valid() {
			result = errors.Join(result, probe.ErrUnsupportedSurface.With(surface))
		} else if seen[surface] {
			result = errors.Join(result, probe.ErrBadParameter.Withf("surfaces: %q is repeated", surface))
		}
		seen[surface] = true
	}
	if c.Data == "" {
		result = errors.Join(result, probe.ErrBadParameter.With("data: path is required"))
	}
	if !types.IsName(c.Input) {
		result = errors.Join(result, probe.ErrBadParameter.Withf("input: invalid name %q", c.Input))
	}
	if strings.Count(c.Output, "%s") != 1 || strings.Count(c.Output, "%") != 1 {
		result = errors.Join(result, probe.ErrBadParameter.Withf("output: %q must contain a single %%s", c.Output))
	} else if !types.IsName(c.OutputName(schema.ChatCompletion)) {
		result = errors.Join(result, probe.ErrBadParameter.Withf("output: invalid name %q", c.Output))
	}
	return result
}

// OutputName returns the document name for the working models of a surface
func (c Config) OutputName(surface schema.Surface) string {
	return fmt.Sprintf(c.Output, surface)
}

// ReportName returns the document name for the report of a surface
func (c Config) ReportName(surface schema.Surface) string {
	return c.OutputName(surface) + reportSuffix
}
