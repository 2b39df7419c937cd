package manager

import (
	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	config "github.com/mutablelogic/go-llm-probe/pkg/config"
	prober "github.com/mutablelogic/go-llm-probe/pkg/prober"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	logrus "github.com/sirupsen/logrus"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring a manager
type Opt func(*Manager) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithConfig replaces the default configuration. The configuration is
// validated.
func WithConfig(c config.Config) Opt {
	return func(m *Manager) error {
		if err := c.Validate(); err != nil {
			return err
		}
		m.config = c
		return nil
	}
}

// WithSurfaces sets the surfaces to probe, in order
func WithSurfaces(surfaces ...schema.Surface) Opt {
	return func(m *Manager) error {
		c := m.config
		c.Surfaces = append([]schema.Surface(nil), surfaces...)
		if err := c.Validate(); err != nil {
			return err
		}
		m.config = c
		return nil
	}
}

// WithReport enables saving a report of every outcome alongside each
// working-models catalog
func WithReport(enabled bool) Opt {
	return func(m *Manager) error {
		m.config.Report = enabled
		return nil
	}
}

// WithLogger sets the logger for the manager and its prober
func WithLogger(logger logrus.FieldLogger) Opt {
	return func(m *Manager) error {
		if logger == nil {
			return probe.ErrBadParameter.With("logger is required")
		}
		m.logger = logger
		return nil
	}
}

// WithTracer sets the tracer for the manager and its prober
func WithTracer(tracer trace.Tracer) Opt {
	return func(m *Manager) error {
		if tracer != nil {
			m.tracer = tracer
		}
		return nil
	}
}

// WithProberOpts passes options through to the prober
func WithProberOpts(opts ...prober.Opt) Opt {
	return func(m *Manager) error {
		m.opts = append(m.opts, opts...)
		return nil
	}
}
