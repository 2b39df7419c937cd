package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

const testCatalog = `{"data":[
	{"id":"openai/gpt-4o","pricing":{"prompt":"0.000005","completion":"0.000015"}},
	{"id":"google/gemma-2-9b-it:free","pricing":{"prompt":"0","completion":"0","image":"0"}},
	{"id":"mistralai/mistral-7b-instruct:free","pricing":{"prompt":" 0 ","completion":0}},
	{"id":"x/no-pricing"}
]}`

func Test_catalog_001(t *testing.T) {
	assert := assert.New(t)
	var c schema.Catalog
	require.NoError(t, json.Unmarshal([]byte(testCatalog), &c))
	assert.Equal(4, c.Len())
	assert.Equal([]string{
		"openai/gpt-4o",
		"google/gemma-2-9b-it:free",
		"mistralai/mistral-7b-instruct:free",
		"x/no-pricing",
	}, c.IDs())
}

func Test_catalog_002(t *testing.T) {
	// Free models keep their order
	assert := assert.New(t)
	var c schema.Catalog
	require.NoError(t, json.Unmarshal([]byte(testCatalog), &c))
	free := schema.FreeModels(&c)
	assert.Equal([]string{
		"google/gemma-2-9b-it:free",
		"mistralai/mistral-7b-instruct:free",
		"x/no-pricing",
	}, free.IDs())
}

func Test_catalog_003(t *testing.T) {
	// An empty catalog marshals with an empty array
	assert := assert.New(t)
	data, err := json.Marshal(schema.Catalog{})
	assert.NoError(err)
	assert.JSONEq(`{"data":[]}`, string(data))

	var nilCatalog *schema.Catalog
	assert.Equal(0, nilCatalog.Len())
	assert.Empty(nilCatalog.IDs())
	assert.Equal(0, schema.FreeModels(nil).Len())
}

func Test_catalog_004(t *testing.T) {
	// A malformed entry fails the whole catalog
	var c schema.Catalog
	assert.Error(t, json.Unmarshal([]byte(`{"data":[{"id":"a/b"},[1,2]]}`), &c))
}

func Test_catalog_005(t *testing.T) {
	// Defaults apply to every model, and the round trip is unchanged
	assert := assert.New(t)
	var c schema.Catalog
	require.NoError(t, json.Unmarshal([]byte(testCatalog), &c))
	d := c.WithDefaults(32, 1.0)
	for _, model := range d.Data {
		assert.Equal(uint(32), model.MaxTokens)
		assert.Equal(1.0, model.Temperature)
	}
	data, err := json.Marshal(d)
	assert.NoError(err)
	assert.JSONEq(testCatalog, string(data))
}
