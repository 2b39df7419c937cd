package main

import (
	"fmt"
	"time"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	probe "github.com/mutablelogic/go-llm-probe"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ProbeCommand struct {
	Surface  []string       `name:"surface" help:"Surfaces to probe, in order (completion, chat_completion)" optional:""`
	Prompt   string         `name:"prompt" help:"Prompt sent to each model" optional:""`
	Interval *time.Duration `name:"interval" help:"Delay between successive requests" optional:""`
	Input    string         `name:"input" help:"Name of the input catalog in the data directory" optional:""`
	Report   bool           `name:"report" help:"Also save the outcome for every model"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ProbeCommand) Run(ctx *Globals) (err error) {
	// Flags override the configuration
	cfg := ctx.config
	if len(cmd.Surface) > 0 {
		if cfg.Surfaces, err = parseSurfaces(cmd.Surface); err != nil {
			return err
		}
	}
	if cmd.Prompt != "" {
		cfg.Prompt = cmd.Prompt
	}
	if cmd.Interval != nil {
		cfg.Interval = *cmd.Interval
	}
	if cmd.Input != "" {
		cfg.Input = cmd.Input
	}
	if cmd.Report {
		cfg.Report = true
	}

	// Create the manager
	manager, store, err := ctx.Manager(cfg)
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ProbeCommand",
		attribute.String("input", cfg.Input),
	)
	defer func() { endSpan(err) }()

	// Probe
	result, err := manager.Probe(parent, cfg.Input, cfg.Prompt)
	if err != nil {
		return err
	}

	// Print the outputs
	for _, surface := range cfg.Surfaces {
		fmt.Printf("%-16s %4d working  %s\n", surface, result[surface].Len(), store.Path(cfg.OutputName(surface)))
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func parseSurfaces(names []string) ([]schema.Surface, error) {
	surfaces := make([]schema.Surface, 0, len(names))
	for _, name := range names {
		surface, err := schema.ParseSurface(name)
		if err != nil {
			return nil, probe.ErrBadParameter.With(err)
		}
		surfaces = append(surfaces, surface)
	}
	return surfaces, nil
}
