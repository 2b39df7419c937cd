package prober

import (
	"context"
	"time"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	probe "github.com/mutablelogic/go-llm-probe"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tasks returns one task per model, where the task at position i has a
// launch delay of i times the interval
func (p *Prober) Tasks(catalog []schema.ModelDescriptor, surface schema.Surface, prompt string) []schema.ProbeTask {
	tasks := make([]schema.ProbeTask, 0, len(catalog))
	for i, model := range catalog {
		tasks = append(tasks, schema.ProbeTask{
			Descriptor:  model,
			Surface:     surface,
			Prompt:      prompt,
			LaunchDelay: time.Duration(i) * p.interval,
		})
	}
	return tasks
}

// Schedule probes every model in the catalog on the surface. All probes are
// started immediately and stagger themselves; Schedule returns once every
// probe has settled. The results are in catalog order. Only an unsupported
// surface returns an error.
func (p *Prober) Schedule(ctx context.Context, catalog []schema.ModelDescriptor, surface schema.Surface, prompt string) (_ []schema.ProbeResult, err error) {
	if !surface.Valid() {
		return nil, probe.ErrUnsupportedSurface.With(surface)
	}

	// Return immediately for an empty catalog
	tasks := p.Tasks(catalog, surface, prompt)
	results := make([]schema.ProbeResult, len(tasks))
	if len(tasks) == 0 {
		return results, nil
	}

	// Otel span
	ctx, endSpan := otel.StartSpan(p.tracer, ctx, "Schedule",
		attribute.String("surface", surface.String()),
		attribute.Int("candidates", len(tasks)),
		attribute.String("interval", p.interval.String()),
	)
	defer func() { endSpan(err) }()

	// Launch every probe, each writing only its own result slot
	var wg errgroup.Group
	for i, task := range tasks {
		wg.Go(func() error {
			results[i] = p.safeExecute(ctx, task)
			return nil
		})
	}

	// Probes never return an error
	_ = wg.Wait()

	// Return success
	return results, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// safeExecute runs a probe, converting a panic into an Errored outcome
func (p *Prober) safeExecute(ctx context.Context, task schema.ProbeTask) (result schema.ProbeResult) {
	defer func() {
		if r := recover(); r != nil {
			result = schema.ProbeResult{
				Descriptor: task.Descriptor,
				Outcome:    schema.NewErrored(probe.ErrInternalServerError.Withf("internal fault: %v", r)),
			}
			p.observe(ctx, task, result.Outcome)
		}
	}()
	return p.Execute(ctx, task)
}
