package manager_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	config "github.com/mutablelogic/go-llm-probe/pkg/config"
	manager "github.com/mutablelogic/go-llm-probe/pkg/manager"
	prober "github.com/mutablelogic/go-llm-probe/pkg/prober"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	store "github.com/mutablelogic/go-llm-probe/pkg/store"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

const (
	okResponse  = `{"choices":[{"text":"ok","message":{"content":"ok"}}]}`
	errResponse = `{"error":{"code":404,"message":"No endpoints found"}}`
)

type call struct {
	surface   schema.Surface
	model     string
	maxTokens uint
}

// fakeClient works for the models listed per surface
type fakeClient struct {
	sync.Mutex
	working map[schema.Surface][]string
	calls   []call
}

func (c *fakeClient) respond(surface schema.Surface, model string, maxTokens uint) (schema.Response, error) {
	c.Lock()
	defer c.Unlock()
	c.calls = append(c.calls, call{surface, model, maxTokens})
	for _, id := range c.working[surface] {
		if id == model {
			return schema.Response(okResponse), nil
		}
	}
	return schema.Response(errResponse), nil
}

func (c *fakeClient) SendCompletion(_ context.Context, req schema.CompletionRequest) (schema.Response, error) {
	return c.respond(schema.Completion, req.Model, req.MaxTokens)
}

func (c *fakeClient) SendChatCompletion(_ context.Context, req schema.ChatRequest) (schema.Response, error) {
	return c.respond(schema.ChatCompletion, req.Model, req.MaxTokens)
}

// fakeLister also lists models
type fakeLister struct {
	fakeClient
	catalog *schema.Catalog
}

func (c *fakeLister) ListModels(context.Context) (*schema.Catalog, error) {
	return c.catalog, nil
}

// failingStore rejects every save
type failingStore struct {
	*store.MemoryStore
}

var errDiskFull = errors.New("disk full")

func (failingStore) Save(context.Context, string, any) error {
	return errDiskFull
}

func newManager(t *testing.T, client probe.Client, s probe.Store, opts ...manager.Opt) *manager.Manager {
	t.Helper()
	opts = append(opts, manager.WithProberOpts(prober.WithInterval(0)))
	m, err := manager.New(client, s, opts...)
	require.NoError(t, err)
	return m
}

func testCatalog() *schema.Catalog {
	return schema.NewCatalog(
		schema.NewModelDescriptor("a/completion-only", 64, 0.7),
		schema.NewModelDescriptor("b/chat-only", 64, 0.7),
		schema.NewModelDescriptor("c/both", 64, 0.7),
		schema.NewModelDescriptor("d/neither", 64, 0.7),
	)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_manager_001(t *testing.T) {
	assert := assert.New(t)

	_, err := manager.New(nil, store.NewMemoryStore())
	assert.ErrorIs(err, probe.ErrBadParameter)
	_, err = manager.New(new(fakeClient), nil)
	assert.ErrorIs(err, probe.ErrBadParameter)
	_, err = manager.New(new(fakeClient), store.NewMemoryStore(), manager.WithSurfaces(schema.Surface(42)))
	assert.ErrorIs(err, probe.ErrUnsupportedSurface)

	m, err := manager.New(new(fakeClient), store.NewMemoryStore())
	if assert.NoError(err) {
		assert.Equal(config.Default(), m.Config())
		assert.Equal(config.DefaultInterval, m.Prober().Interval())
	}
}

func Test_manager_002(t *testing.T) {
	assert := assert.New(t)
	client := &fakeClient{working: map[schema.Surface][]string{
		schema.Completion:     {"a/completion-only", "c/both"},
		schema.ChatCompletion: {"b/chat-only", "c/both"},
	}}
	s := store.NewMemoryStore()
	m := newManager(t, client, s)

	result, err := m.Run(context.Background(), testCatalog(), "")
	require.NoError(t, err)
	assert.Equal([]string{"a/completion-only", "c/both"}, result[schema.Completion].IDs())
	assert.Equal([]string{"b/chat-only", "c/both"}, result[schema.ChatCompletion].IDs())

	// Both surfaces are saved under their own names
	completion, err := s.Load(context.Background(), "free_working_completion_models")
	if assert.NoError(err) {
		assert.Equal([]string{"a/completion-only", "c/both"}, completion.IDs())
	}
	chat, err := s.Load(context.Background(), "free_working_chat_completion_models")
	if assert.NoError(err) {
		assert.Equal([]string{"b/chat-only", "c/both"}, chat.IDs())
	}

	// The completion batch settles before the chat batch starts
	require.Len(t, client.calls, 8)
	for i, c := range client.calls {
		if i < 4 {
			assert.Equal(schema.Completion, c.surface)
		} else {
			assert.Equal(schema.ChatCompletion, c.surface)
		}
	}

	// No report unless enabled
	_, exists := s.Raw("free_working_completion_models_report")
	assert.False(exists)
}

func Test_manager_003(t *testing.T) {
	assert := assert.New(t)
	client := &fakeClient{working: map[schema.Surface][]string{
		schema.Completion: {"c/both"},
	}}
	s := store.NewMemoryStore()
	m := newManager(t, client, s, manager.WithSurfaces(schema.Completion), manager.WithReport(true))

	result, err := m.Run(context.Background(), testCatalog(), "")
	require.NoError(t, err)
	assert.Len(result, 1)

	// The report lists every candidate with its outcome
	data, exists := s.Raw("free_working_completion_models_report")
	require.True(t, exists)
	var report struct {
		Run     string `json:"run"`
		Surface string `json:"surface"`
		Working int    `json:"working"`
		Failed  int    `json:"failed"`
		Results []struct {
			ID      string `json:"id"`
			Outcome string `json:"outcome"`
			Reason  string `json:"reason"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	assert.NotEmpty(report.Run)
	assert.Equal("completion", report.Surface)
	assert.Equal(1, report.Working)
	assert.Equal(3, report.Failed)
	if assert.Len(report.Results, 4) {
		assert.Equal("a/completion-only", report.Results[0].ID)
		assert.Contains(report.Results[0].Reason, "No endpoints found")
		assert.Equal("c/both", report.Results[2].ID)
	}

	// The chat surface was not probed
	_, exists = s.Raw("free_working_chat_completion_models")
	assert.False(exists)
}

func Test_manager_004(t *testing.T) {
	assert := assert.New(t)
	client := &fakeClient{working: map[schema.Surface][]string{
		schema.Completion: {"openai/gpt-3.5-turbo"},
	}}
	s := store.NewMemoryStore()

	// The input file has an entry without parameters, and one with
	var input schema.Catalog
	require.NoError(t, json.Unmarshal([]byte(`{"data":[
		{"id":"openai/gpt-3.5-turbo"},
		{"id":"x/free-model","max_tokens":16}
	]}`), &input))
	require.NoError(t, s.Save(context.Background(), "free_models", input))

	m := newManager(t, client, s, manager.WithSurfaces(schema.Completion))
	result, err := m.Probe(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal([]string{"openai/gpt-3.5-turbo"}, result[schema.Completion].IDs())

	// Missing parameters come from the configuration
	tokens := map[string]uint{}
	for _, c := range client.calls {
		tokens[c.model] = c.maxTokens
	}
	assert.Equal(map[string]uint{"openai/gpt-3.5-turbo": 64, "x/free-model": 16}, tokens)

	// Missing input
	_, err = m.Probe(context.Background(), "missing", "")
	assert.ErrorIs(err, probe.ErrNotFound)
}

func Test_manager_005(t *testing.T) {
	assert := assert.New(t)
	s := store.NewMemoryStore()

	// An empty catalog still saves empty outputs
	m := newManager(t, new(fakeClient), s)
	result, err := m.Run(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Equal(0, result[schema.Completion].Len())
	data, exists := s.Raw("free_working_chat_completion_models")
	if assert.True(exists) {
		assert.JSONEq(`{"data":[]}`, string(data))
	}
}

func Test_manager_006(t *testing.T) {
	// A store failure is returned
	m := newManager(t, new(fakeClient), failingStore{store.NewMemoryStore()})
	_, err := m.Run(context.Background(), testCatalog(), "")
	assert.ErrorIs(t, err, errDiskFull)
}

func Test_manager_007(t *testing.T) {
	assert := assert.New(t)
	var all schema.Catalog
	require.NoError(t, json.Unmarshal([]byte(`{"data":[
		{"id":"openai/gpt-4o","pricing":{"prompt":"0.0000025","completion":"0.00001"}},
		{"id":"meta/llama:free","pricing":{"prompt":"0","completion":"0","request":"0"}},
		{"id":"google/gemma:free","pricing":{"prompt":"0","completion":"0"}}
	]}`), &all))
	client := &fakeLister{catalog: &all}
	s := store.NewMemoryStore()
	m := newManager(t, client, s)

	free, err := m.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal([]string{"meta/llama:free", "google/gemma:free"}, free.IDs())

	models, err := s.Load(context.Background(), manager.ModelsName)
	if assert.NoError(err) {
		assert.Equal(3, models.Len())
	}
	input, err := s.Load(context.Background(), "free_models")
	if assert.NoError(err) {
		assert.Equal(free.IDs(), input.IDs())
	}

	// A client which cannot list models
	m = newManager(t, new(fakeClient), s)
	_, err = m.Refresh(context.Background())
	assert.ErrorIs(err, probe.ErrNotImplemented)
}

func Test_manager_008(t *testing.T) {
	assert := assert.New(t)
	client := &fakeClient{working: map[schema.Surface][]string{
		schema.Completion:     {"a/completion-only", "c/both"},
		schema.ChatCompletion: {"b/chat-only", "c/both"},
	}}
	s := store.NewMemoryStore()
	previous := schema.NewCatalog(schema.NewModelDescriptor("c/both", 64, 0.7))
	for _, name := range []string{"free_working_completion_models", "free_working_chat_completion_models"} {
		require.NoError(t, s.Save(context.Background(), name, previous))
	}
	m, err := manager.New(client, s, manager.WithReport(true), manager.WithProberOpts(prober.WithInterval(time.Hour)))
	require.NoError(t, err)

	// Cancelling while the batch waits out its stagger keeps the previous outputs
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	result, err := m.Run(ctx, testCatalog(), "")
	assert.ErrorIs(err, context.DeadlineExceeded)
	assert.Nil(result)

	for _, name := range []string{"free_working_completion_models", "free_working_chat_completion_models"} {
		stored, err := s.Load(context.Background(), name)
		if assert.NoError(err) {
			assert.Equal([]string{"c/both"}, stored.IDs())
		}
	}
	_, exists := s.Raw("free_working_completion_models_report")
	assert.False(exists)
}
