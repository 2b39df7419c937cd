package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	// Packages
	gjson "github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ModelDescriptor identifies a candidate model and the parameters used to
// probe it. When decoded from a catalog the original JSON entry is retained,
// so pricing and other metadata pass through unchanged when it is written back.
type ModelDescriptor struct {
	ID          string  `json:"id"`
	MaxTokens   uint    `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature"`

	temperature bool // true if Temperature was set explicitly
	raw         json.RawMessage
}

type modelDescriptor struct {
	ID          string  `json:"id"`
	MaxTokens   uint    `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	MaxTemperature = 2.0
)

var (
	ErrMissingIdentifier   = errors.New("missing identifier")
	ErrMalformedIdentifier = errors.New("malformed identifier")
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewModelDescriptor returns a descriptor with explicit probe parameters
func NewModelDescriptor(id string, maxTokens uint, temperature float64) ModelDescriptor {
	return ModelDescriptor{
		ID:          id,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		temperature: true,
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m ModelDescriptor) String() string {
	return Stringify(m)
}

////////////////////////////////////////////////////////////////////////////////
// JSON

func (m ModelDescriptor) MarshalJSON() ([]byte, error) {
	if len(m.raw) > 0 {
		return m.raw, nil
	}
	return json.Marshal(modelDescriptor{
		ID:          m.ID,
		MaxTokens:   m.MaxTokens,
		Temperature: m.Temperature,
	})
}

func (m *ModelDescriptor) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid model entry: %q", data)
	}
	entry := gjson.ParseBytes(data)
	if !entry.IsObject() {
		return fmt.Errorf("model entry is not an object: %s", entry.Raw)
	}

	// Identifier, which may be empty but must be a string
	var result ModelDescriptor
	id := entry.Get("id")
	if !id.Exists() {
		id = entry.Get("model_id")
	}
	switch {
	case !id.Exists(), id.Type == gjson.Null:
		// Leave empty
	case id.Type == gjson.String:
		result.ID = id.String()
	default:
		return fmt.Errorf("model id is not a string: %s", id.Raw)
	}

	// Optional probe parameters
	if v := entry.Get("max_tokens"); v.Exists() {
		if v.Type != gjson.Number || v.Float() < 1 || v.Float() != float64(v.Uint()) {
			return fmt.Errorf("model %q: max_tokens must be a positive integer, got %s", result.ID, v.Raw)
		}
		result.MaxTokens = uint(v.Uint())
	}
	if v := entry.Get("temperature"); v.Exists() {
		if v.Type != gjson.Number || v.Float() < 0 || v.Float() > MaxTemperature {
			return fmt.Errorf("model %q: temperature must be in [0,%v], got %s", result.ID, MaxTemperature, v.Raw)
		}
		result.Temperature = v.Float()
		result.temperature = true
	}

	// Retain the original entry
	result.raw = append(json.RawMessage(nil), data...)

	// Return success
	*m = result
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Provider returns the part of the identifier before the first "/"
func (m ModelDescriptor) Provider() string {
	provider, _, _ := strings.Cut(m.ID, "/")
	return provider
}

// Slug returns the part of the identifier after the first "/", which may
// itself contain "/"
func (m ModelDescriptor) Slug() string {
	_, slug, _ := strings.Cut(m.ID, "/")
	return slug
}

// ValidateID checks the identifier has the form <provider>/<slug>
func (m ModelDescriptor) ValidateID() error {
	if m.ID == "" {
		return ErrMissingIdentifier
	}
	provider, slug, ok := strings.Cut(m.ID, "/")
	if !ok || provider == "" || slug == "" {
		return fmt.Errorf("%w %q", ErrMalformedIdentifier, m.ID)
	}
	return nil
}

// Validate checks the identifier and the probe parameters
func (m ModelDescriptor) Validate() error {
	if err := m.ValidateID(); err != nil {
		return err
	}
	if m.MaxTokens == 0 {
		return fmt.Errorf("model %q: max_tokens must be positive", m.ID)
	}
	if m.Temperature < 0 || m.Temperature > MaxTemperature {
		return fmt.Errorf("model %q: temperature must be in [0,%v]", m.ID, MaxTemperature)
	}
	return nil
}

// WithDefaults returns a copy of the descriptor with unset probe parameters
// replaced by the given defaults
func (m ModelDescriptor) WithDefaults(maxTokens uint, temperature float64) ModelDescriptor {
	if m.MaxTokens == 0 {
		m.MaxTokens = maxTokens
	}
	if !m.temperature {
		m.Temperature = temperature
		m.temperature = true
	}
	return m
}

// Get returns a field of the original catalog entry, using gjson path
// syntax. It returns a non-existent result for descriptors built in code.
func (m ModelDescriptor) Get(path string) gjson.Result {
	if len(m.raw) == 0 {
		return gjson.Result{}
	}
	return gjson.GetBytes(m.raw, path)
}
