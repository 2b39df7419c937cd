/*
prober determines which models accept requests on a given surface. All
candidates are probed concurrently, with each probe waiting a fixed delay
proportional to its position in the catalog before sending its request,
so that the upstream API does not receive a burst.
*/
package prober

import (
	"context"
	"io"
	"time"

	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	logrus "github.com/sirupsen/logrus"
	metric "go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	trace "go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Prober runs probes against a client
type Prober struct {
	client   probe.Client
	interval time.Duration
	clock    Clock
	logger   logrus.FieldLogger
	tracer   trace.Tracer
	meter    metric.Meter
	outcomes metric.Int64Counter
}

// Clock provides the stagger delay
type Clock interface {
	// Now returns the current time
	Now() time.Time

	// Sleep waits for the duration, or returns early with the context error
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

var _ Clock = realClock{}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultInterval is the delay added per catalog position
	DefaultInterval = 3 * time.Second

	scope = "github.com/mutablelogic/go-llm-probe/pkg/prober"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a prober which sends requests through the client
func New(client probe.Client, opts ...Opt) (*Prober, error) {
	if client == nil {
		return nil, probe.ErrBadParameter.With("client is required")
	}

	// Defaults
	p := &Prober{
		client:   client,
		interval: DefaultInterval,
		clock:    realClock{},
		logger:   discardLogger(),
		tracer:   tracenoop.NewTracerProvider().Tracer(scope),
		meter:    metricnoop.NewMeterProvider().Meter(scope),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	// Outcome counter
	counter, err := p.meter.Int64Counter("probe.outcomes",
		metric.WithDescription("Number of probes by surface and outcome"),
		metric.WithUnit("{probe}"),
	)
	if err != nil {
		return nil, err
	}
	p.outcomes = counter

	// Return success
	return p, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Interval returns the delay added per catalog position
func (p *Prober) Interval() time.Duration {
	return p.interval
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
