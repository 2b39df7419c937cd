package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-llm-probe/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCommand) Run(ctx *Globals) error {
	fmt.Println(version.New(ctx.execName))
	return nil
}
