package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	probe "github.com/mutablelogic/go-llm-probe"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type RequestFlags struct {
	MaxTokens   *uint    `name:"max-tokens" help:"Maximum number of tokens to generate" optional:""`
	Temperature *float64 `name:"temperature" help:"Sampling temperature (0 to 2)" optional:""`
}

type CompleteCommand struct {
	Model  string `arg:"" name:"model" help:"Model identifier (provider/slug)"`
	Prompt string `arg:"" name:"prompt" help:"Prompt text"`
	RequestFlags `embed:""`
}

type ChatCommand struct {
	Model  string `arg:"" name:"model" help:"Model identifier (provider/slug)"`
	Prompt string `arg:"" name:"prompt" help:"User message"`
	RequestFlags `embed:""`
}

type CreditsCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *CompleteCommand) Run(ctx *Globals) (err error) {
	model, err := cmd.descriptor(ctx, cmd.Model)
	if err != nil {
		return err
	}
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CompleteCommand",
		attribute.String("model", model.ID),
	)
	defer func() { endSpan(err) }()

	response, err := client.SendCompletion(parent, schema.NewCompletionRequest(model, cmd.Prompt))
	if err != nil {
		return err
	}
	return printResponse(model, response)
}

func (cmd *ChatCommand) Run(ctx *Globals) (err error) {
	model, err := cmd.descriptor(ctx, cmd.Model)
	if err != nil {
		return err
	}
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand",
		attribute.String("model", model.ID),
	)
	defer func() { endSpan(err) }()

	response, err := client.SendChatCompletion(parent, schema.NewChatRequest(model, cmd.Prompt))
	if err != nil {
		return err
	}
	return printResponse(model, response)
}

func (cmd *CreditsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CreditsCommand")
	defer func() { endSpan(err) }()

	credits, err := client.GetCredits(parent)
	if err != nil {
		return err
	}
	fmt.Printf("total:     %.4f\n", credits.TotalCredits)
	fmt.Printf("used:      %.4f\n", credits.TotalUsage)
	fmt.Printf("remaining: %.4f\n", credits.Remaining())
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// descriptor returns the model with flag values over the configured defaults
func (flags RequestFlags) descriptor(ctx *Globals, id string) (schema.ModelDescriptor, error) {
	model := schema.NewModelDescriptor(id, ctx.config.MaxTokens, ctx.config.Temperature)
	if flags.MaxTokens != nil {
		model.MaxTokens = *flags.MaxTokens
	}
	if flags.Temperature != nil {
		model.Temperature = *flags.Temperature
	}
	if err := model.Validate(); err != nil {
		return model, probe.ErrBadParameter.With(err)
	}
	return model, nil
}

func printResponse(model schema.ModelDescriptor, response schema.Response) error {
	if reason, ok := response.APIError(); ok {
		return fmt.Errorf("%s: %s", model.ID, reason)
	} else if !response.HasChoice() {
		return fmt.Errorf("%s: empty response", model.ID)
	}
	fmt.Println(response.Text())
	return nil
}
