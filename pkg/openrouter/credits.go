package openrouter

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetCredits returns the credit balance for the API key
func (c *Client) GetCredits(ctx context.Context) (*schema.Credits, error) {
	var response struct {
		Data schema.Credits `json:"data"`
	}
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("credits")); err != nil {
		return nil, err
	}
	return &response.Data, nil
}
