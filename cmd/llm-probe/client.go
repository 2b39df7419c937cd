package main

import (
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	probe "github.com/mutablelogic/go-llm-probe"
	config "github.com/mutablelogic/go-llm-probe/pkg/config"
	manager "github.com/mutablelogic/go-llm-probe/pkg/manager"
	openrouter "github.com/mutablelogic/go-llm-probe/pkg/openrouter"
	prober "github.com/mutablelogic/go-llm-probe/pkg/prober"
	store "github.com/mutablelogic/go-llm-probe/pkg/store"
	otel "go.opentelemetry.io/otel"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns an OpenRouter client configured from the global flags
func (g *Globals) Client() (*openrouter.Client, error) {
	if g.APIKey == "" {
		return nil, probe.ErrBadParameter.With("api key is required (set OPENROUTER_API_KEY or --api-key)")
	}

	// Client options
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}
	if g.Endpoint != "" {
		opts = append(opts, client.OptEndpoint(g.Endpoint))
	}

	return openrouter.New(g.APIKey, opts...)
}

// Store returns the file store in the data directory
func (g *Globals) Store(cfg config.Config) (*store.FileStore, error) {
	return store.NewFileStore(cfg.Data)
}

// Manager returns a manager for the configuration
func (g *Globals) Manager(cfg config.Config) (*manager.Manager, *store.FileStore, error) {
	c, err := g.Client()
	if err != nil {
		return nil, nil, err
	}
	s, err := g.Store(cfg)
	if err != nil {
		return nil, nil, err
	}
	m, err := manager.New(c, s,
		manager.WithConfig(cfg),
		manager.WithLogger(g.logger),
		manager.WithTracer(g.tracer),
		manager.WithProberOpts(prober.WithMeter(otel.Meter(scope))),
	)
	if err != nil {
		return nil, nil, err
	}
	return m, s, nil
}
