package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	manager "github.com/mutablelogic/go-llm-probe/pkg/manager"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelCommands struct {
	ListModels ListModelsCommand `cmd:"" name:"models" help:"Fetch all models and save them, with the free models as the probe input." group:"MODEL"`
	GetModel   GetModelCommand   `cmd:"" name:"model" help:"Get model." group:"MODEL"`
	Endpoints  EndpointsCommand  `cmd:"" name:"endpoints" help:"List the providers serving a model." group:"MODEL"`
}

type ListModelsCommand struct {
	All bool `name:"all" help:"Print all models, not only the free ones"`
}

type GetModelCommand struct {
	ID string `arg:"" name:"id" help:"Model identifier (provider/slug)"`
}

type EndpointsCommand struct {
	ID string `arg:"" name:"id" help:"Model identifier (provider/slug)"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListModelsCommand) Run(ctx *Globals) (err error) {
	m, store, err := ctx.Manager(ctx.config)
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListModelsCommand")
	defer func() { endSpan(err) }()

	// Refresh the listing
	free, err := m.Refresh(parent)
	if err != nil {
		return err
	}

	// Print models
	models := free
	if cmd.All {
		if models, err = store.Load(parent, manager.ModelsName); err != nil {
			return err
		}
	}
	for _, id := range models.IDs() {
		fmt.Println(id)
	}
	return nil
}

func (cmd *GetModelCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetModelCommand",
		attribute.String("id", cmd.ID),
	)
	defer func() { endSpan(err) }()

	model, err := client.GetModel(parent, cmd.ID)
	if err != nil {
		return err
	}
	fmt.Println(model)
	return nil
}

func (cmd *EndpointsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "EndpointsCommand",
		attribute.String("id", cmd.ID),
	)
	defer func() { endSpan(err) }()

	endpoints, err := client.GetModelEndpoints(parent, cmd.ID)
	if err != nil {
		return err
	}
	fmt.Println(endpoints)
	return nil
}
