package modelcache

import (
	"context"
	"errors"
	"sync"
	"time"

	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type modelts struct {
	ts    time.Time
	model schema.ModelDescriptor
}

// ModelCache holds the most recent model listing for a TTL. It is safe
// for concurrent use.
type ModelCache struct {
	sync.Mutex
	ttl   time.Duration
	ts    time.Time
	order []string
	model map[string]modelts
}

type GetModelFunc func(context.Context, string) (*schema.ModelDescriptor, error)
type ListModelsFunc func(context.Context) (*schema.Catalog, error)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewModelCache(ttl time.Duration, cap int) *ModelCache {
	self := new(ModelCache)

	// Set the TTL for each model
	if ttl > 0 {
		self.ttl = ttl
	}

	// Set model cache capacity
	self.model = make(map[string]modelts, cap)

	// Return the model cache
	return self
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetModel returns a cached model, or fetches it when missing or expired.
// The cache is not locked while fn runs, so fn may call ListModels.
func (mc *ModelCache) GetModel(ctx context.Context, id string, fn GetModelFunc) (*schema.ModelDescriptor, error) {
	if model, ok := mc.cached(id); ok {
		return model, nil
	}

	// Fetch model
	model, err := fn(ctx, id)

	mc.Lock()
	defer mc.Unlock()
	if err != nil {
		// If model no longer exists, ensure cache is invalidated
		if errors.Is(err, probe.ErrNotFound) {
			delete(mc.model, id)
		}
		return nil, err
	}
	mc.model[model.ID] = modelts{ts: time.Now(), model: types.Value(model)}

	// Return model
	return model, nil
}

// ListModels returns the cached listing, in upstream order, while it is
// within the TTL. Otherwise the listing is fetched and cached.
func (mc *ModelCache) ListModels(ctx context.Context, fn ListModelsFunc) (*schema.Catalog, error) {
	if catalog, ok := mc.listing(); ok {
		return catalog, nil
	}

	// Fetch models
	catalog, err := fn(ctx)
	if err != nil {
		return nil, err
	}

	mc.Lock()
	defer mc.Unlock()

	// Cache models, replacing any previous listing
	now := time.Now()
	mc.ts = now
	mc.order = make([]string, 0, len(catalog.Data))
	seen := make(map[string]bool, len(catalog.Data))
	for _, model := range catalog.Data {
		if !seen[model.ID] {
			seen[model.ID] = true
			mc.order = append(mc.order, model.ID)
		}
		mc.model[model.ID] = modelts{ts: now, model: model}
	}

	// Return the listing as fetched
	return catalog, nil
}

// Purge removes all cached models
func (mc *ModelCache) Purge() {
	mc.Lock()
	defer mc.Unlock()
	mc.ts = time.Time{}
	mc.order = nil
	clear(mc.model)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// cached returns a model within its TTL, pruning an expired entry
func (mc *ModelCache) cached(id string) (*schema.ModelDescriptor, bool) {
	mc.Lock()
	defer mc.Unlock()
	entry, ok := mc.model[id]
	if !ok {
		return nil, false
	}
	if time.Since(entry.ts) < mc.ttl {
		return types.Ptr(entry.model), true
	}
	delete(mc.model, id)
	return nil, false
}

// listing returns the most recent listing if it is within the TTL
func (mc *ModelCache) listing() (*schema.Catalog, bool) {
	mc.Lock()
	defer mc.Unlock()
	if mc.ttl == 0 || len(mc.order) == 0 || time.Since(mc.ts) >= mc.ttl {
		return nil, false
	}
	cached := schema.NewCatalog()
	for _, id := range mc.order {
		if entry, ok := mc.model[id]; ok {
			cached.Data = append(cached.Data, entry.model)
		}
	}
	return cached, true
}
