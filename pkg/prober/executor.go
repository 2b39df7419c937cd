package prober

import (
	"context"

	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	logrus "github.com/sirupsen/logrus"
	attribute "go.opentelemetry.io/otel/attribute"
	metric "go.opentelemetry.io/otel/metric"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Execute runs a single probe: it waits out the launch delay, sends one
// request for the task's surface and classifies the outcome. Failures are
// returned in the result and never as an error.
func (p *Prober) Execute(ctx context.Context, task schema.ProbeTask) schema.ProbeResult {
	result := schema.ProbeResult{
		Descriptor: task.Descriptor,
		Outcome:    p.execute(ctx, task),
	}
	p.observe(ctx, task, result.Outcome)
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (p *Prober) execute(ctx context.Context, task schema.ProbeTask) schema.Outcome {
	// An invalid identifier never reaches the client
	if err := task.Descriptor.ValidateID(); err != nil {
		return schema.NewFailed(err.Error())
	}

	// Stagger
	if err := p.clock.Sleep(ctx, task.LaunchDelay); err != nil {
		return schema.NewErrored(err)
	}

	// Send exactly one request
	var response schema.Response
	var err error
	switch task.Surface {
	case schema.Completion:
		response, err = p.client.SendCompletion(ctx, schema.NewCompletionRequest(task.Descriptor, task.Prompt))
	case schema.ChatCompletion:
		response, err = p.client.SendChatCompletion(ctx, schema.NewChatRequest(task.Descriptor, task.Prompt))
	default:
		return schema.NewErrored(probe.ErrUnsupportedSurface.With(task.Surface))
	}
	if err != nil {
		return schema.NewErrored(err)
	}

	// Classify the response
	if reason, ok := response.APIError(); ok {
		return schema.NewFailed(reason)
	} else if !response.HasChoice() {
		return schema.NewFailed("empty response")
	}
	return schema.NewWorking()
}

// observe logs and counts an outcome
func (p *Prober) observe(ctx context.Context, task schema.ProbeTask, outcome schema.Outcome) {
	fields := logrus.Fields{
		"model":   task.Descriptor.ID,
		"surface": task.Surface.String(),
		"outcome": outcome.Kind.String(),
	}
	switch outcome.Kind {
	case schema.Working:
		p.logger.WithFields(fields).Info("model works")
	case schema.Failed:
		fields["reason"] = outcome.Reason
		p.logger.WithFields(fields).Warn("model failed")
	default:
		p.logger.WithFields(fields).WithError(outcome.Err).Warn("model errored")
	}

	p.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("surface", task.Surface.String()),
		attribute.String("outcome", outcome.Kind.String()),
	))
}
