/*
openrouter implements an API client for OpenRouter.
https://openrouter.ai/docs/api-reference/overview
*/
package openrouter

import (
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	probe "github.com/mutablelogic/go-llm-probe"
	modelcache "github.com/mutablelogic/go-llm-probe/pkg/modelcache"
	version "github.com/mutablelogic/go-llm-probe/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	*modelcache.ModelCache
}

var _ probe.Client = (*Client)(nil)
var _ probe.Lister = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// EndPoint is the default API endpoint, which can be replaced with
	// client.OptEndpoint
	EndPoint = "https://openrouter.ai/api/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new OpenRouter API client with the given API key
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(EndPoint),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: apiKey}),
		client.OptUserAgent(version.UserAgent()),
		client.OptHeader("X-Title", version.Name),
	}, opts...)
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c, modelcache.NewModelCache(time.Hour, 400)}, nil
	}
}
