package schema

import (
	"encoding/json"
	"strings"

	// Packages
	gjson "github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Catalog is an ordered list of model descriptors, serialized as
// {"data": [...]}
type Catalog struct {
	Data []ModelDescriptor `json:"data"`
}

type catalog Catalog

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCatalog returns a catalog with the given models, in order
func NewCatalog(models ...ModelDescriptor) *Catalog {
	return &Catalog{Data: append(make([]ModelDescriptor, 0, len(models)), models...)}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Catalog) String() string {
	return Stringify(c)
}

////////////////////////////////////////////////////////////////////////////////
// JSON

func (c Catalog) MarshalJSON() ([]byte, error) {
	if c.Data == nil {
		c.Data = []ModelDescriptor{}
	}
	return json.Marshal(catalog(c))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Len returns the number of models in the catalog
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Data)
}

// IDs returns the model identifiers, in order
func (c *Catalog) IDs() []string {
	result := make([]string, 0, c.Len())
	if c != nil {
		for _, model := range c.Data {
			result = append(result, model.ID)
		}
	}
	return result
}

// WithDefaults returns a new catalog where each model without explicit
// probe parameters uses the given defaults
func (c *Catalog) WithDefaults(maxTokens uint, temperature float64) *Catalog {
	result := NewCatalog()
	if c != nil {
		for _, model := range c.Data {
			result.Data = append(result.Data, model.WithDefaults(maxTokens, temperature))
		}
	}
	return result
}

// FreeModels returns the models whose pricing values are all "0",
// preserving order
func FreeModels(c *Catalog) *Catalog {
	result := NewCatalog()
	if c == nil {
		return result
	}
	for _, model := range c.Data {
		if isFree(model.Get("pricing")) {
			result.Data = append(result.Data, model)
		}
	}
	return result
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// isFree returns true when every pricing value is zero. A model without
// pricing information is treated as free.
func isFree(pricing gjson.Result) bool {
	free := true
	pricing.ForEach(func(_, price gjson.Result) bool {
		if strings.TrimSpace(price.String()) != "0" {
			free = false
		}
		return free
	})
	return free
}
