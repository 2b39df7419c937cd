package probe

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the interface that wraps the two request surfaces a model
// can be probed against. A returned error means the request itself failed
// (transport, timeout, decoding). An upstream rejection is returned as a
// Response carrying an "error" object.
type Client interface {
	// SendCompletion sends a plain text completion request
	SendCompletion(ctx context.Context, req schema.CompletionRequest) (schema.Response, error)

	// SendChatCompletion sends a chat completion request
	SendChatCompletion(ctx context.Context, req schema.ChatRequest) (schema.Response, error)
}

// Lister is implemented by clients which can enumerate the upstream model catalog
type Lister interface {
	// ListModels returns all models known upstream, in upstream order
	ListModels(ctx context.Context) (*schema.Catalog, error)
}

// Store loads and saves named JSON documents
type Store interface {
	// Load reads the catalog document with the given name
	Load(ctx context.Context, name string) (*schema.Catalog, error)

	// Save writes a document under the given name, replacing any existing one
	Save(ctx context.Context, name string, v any) error
}
