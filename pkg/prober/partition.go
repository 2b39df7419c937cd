package prober

import (
	// Packages
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Partition returns the models with a Working outcome, in order
func Partition(results []schema.ProbeResult) []schema.ModelDescriptor {
	working := make([]schema.ModelDescriptor, 0, len(results))
	for _, result := range results {
		if result.Outcome.IsWorking() {
			working = append(working, result.Descriptor)
		}
	}
	return working
}
