package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	types "github.com/mutablelogic/go-llm-probe/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// MemoryStore is an in-memory implementation of Store. Documents are held
// in their serialised form, so a loaded catalog never aliases a saved
// value. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ probe.Store = (*MemoryStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMemoryStore creates a new empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string][]byte),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Load reads the catalog stored under name. Returns ErrNotFound when
// there is no such document.
func (m *MemoryStore) Load(_ context.Context, name string) (*schema.Catalog, error) {
	if !types.IsName(name) {
		return nil, probe.ErrBadParameter.Withf("invalid name %q", name)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.docs[name]
	if !exists {
		return nil, probe.ErrNotFound.Withf("%s", name)
	}
	var catalog schema.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, probe.ErrBadParameter.Withf("%s: %v", name, err)
	}
	return &catalog, nil
}

// Save writes v under name, replacing any existing document
func (m *MemoryStore) Save(_ context.Context, name string, v any) error {
	if !types.IsName(name) {
		return probe.ErrBadParameter.Withf("invalid name %q", name)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return probe.ErrInternalServerError.Withf("marshal: %v", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[name] = data
	return nil
}

// List returns the names of all documents in the store, sorted
func (m *MemoryStore) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.docs))
	for name := range m.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Raw returns the serialised document stored under name
func (m *MemoryStore) Raw(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, exists := m.docs[name]
	return data, exists
}
