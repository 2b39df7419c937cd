package prober

import (
	"time"

	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	logrus "github.com/sirupsen/logrus"
	metric "go.opentelemetry.io/otel/metric"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring a prober
type Opt func(*Prober) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithInterval sets the delay added per catalog position. A zero interval
// launches every request at once.
func WithInterval(interval time.Duration) Opt {
	return func(p *Prober) error {
		if interval < 0 {
			return probe.ErrBadParameter.Withf("negative interval %v", interval)
		}
		p.interval = interval
		return nil
	}
}

// WithClock replaces the clock used for the stagger delay
func WithClock(clock Clock) Opt {
	return func(p *Prober) error {
		if clock == nil {
			return probe.ErrBadParameter.With("clock is required")
		}
		p.clock = clock
		return nil
	}
}

// WithLogger sets the logger which receives one entry per probe outcome
func WithLogger(logger logrus.FieldLogger) Opt {
	return func(p *Prober) error {
		if logger == nil {
			return probe.ErrBadParameter.With("logger is required")
		}
		p.logger = logger
		return nil
	}
}

// WithTracer sets the tracer for batch spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(p *Prober) error {
		if tracer != nil {
			p.tracer = tracer
		}
		return nil
	}
}

// WithMeter sets the meter used to count probe outcomes
func WithMeter(meter metric.Meter) Opt {
	return func(p *Prober) error {
		if meter != nil {
			p.meter = meter
		}
		return nil
	}
}
