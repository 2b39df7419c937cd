/*
manager runs probe batches over a model catalog, one surface at a time,
and saves the working models for each surface through a store.
*/
package manager

import (
	"io"

	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	config "github.com/mutablelogic/go-llm-probe/pkg/config"
	prober "github.com/mutablelogic/go-llm-probe/pkg/prober"
	logrus "github.com/sirupsen/logrus"
	trace "go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Manager struct {
	client probe.Client
	store  probe.Store
	prober *prober.Prober
	config config.Config
	logger logrus.FieldLogger
	tracer trace.Tracer

	// Options passed through to the prober
	opts []prober.Opt
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// ModelsName is the document name for the full upstream listing
	ModelsName = "models"

	scope = "github.com/mutablelogic/go-llm-probe/pkg/manager"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a manager which probes models through the client and saves
// results to the store
func New(client probe.Client, store probe.Store, opts ...Opt) (*Manager, error) {
	if client == nil {
		return nil, probe.ErrBadParameter.With("client is required")
	} else if store == nil {
		return nil, probe.ErrBadParameter.With("store is required")
	}

	m := &Manager{
		client: client,
		store:  store,
		config: config.Default(),
		logger: discardLogger(),
		tracer: tracenoop.NewTracerProvider().Tracer(scope),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	// Create the prober, the configured interval first so an explicit
	// option can replace it
	proberopts := append([]prober.Opt{
		prober.WithInterval(m.config.Interval),
		prober.WithLogger(m.logger),
		prober.WithTracer(m.tracer),
	}, m.opts...)
	if p, err := prober.New(client, proberopts...); err != nil {
		return nil, err
	} else {
		m.prober = p
	}

	// Return success
	return m, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Config returns the configuration in use
func (m *Manager) Config() config.Config {
	return m.config
}

// Prober returns the prober used for each batch
func (m *Manager) Prober() *prober.Prober {
	return m.prober
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
