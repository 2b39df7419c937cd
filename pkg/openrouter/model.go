package openrouter

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	probe "github.com/mutablelogic/go-llm-probe"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels returns all models from the API, in the order they are listed
func (c *Client) ListModels(ctx context.Context) (*schema.Catalog, error) {
	return c.ModelCache.ListModels(ctx, func(ctx context.Context) (*schema.Catalog, error) {
		var response schema.Catalog
		if err := c.DoWithContext(ctx, nil, &response, client.OptPath("models")); err != nil {
			return nil, err
		}
		return &response, nil
	})
}

// GetModel returns a model by identifier
func (c *Client) GetModel(ctx context.Context, id string) (*schema.ModelDescriptor, error) {
	return c.ModelCache.GetModel(ctx, id, func(ctx context.Context, id string) (*schema.ModelDescriptor, error) {
		// There is no single-model endpoint, so list and find
		catalog, err := c.ListModels(ctx)
		if err != nil {
			return nil, err
		}
		for _, model := range catalog.Data {
			if model.ID == id {
				return types.Ptr(model), nil
			}
		}
		return nil, probe.ErrNotFound.Withf("model not found: %q", id)
	})
}

// GetModelEndpoints returns the providers which serve a model
func (c *Client) GetModelEndpoints(ctx context.Context, id string) (*schema.ModelEndpoints, error) {
	model := schema.ModelDescriptor{ID: id}
	if err := model.ValidateID(); err != nil {
		return nil, probe.ErrBadParameter.With(err)
	}

	var response struct {
		Data schema.ModelEndpoints `json:"data"`
	}
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("models", model.Provider(), model.Slug(), "endpoints")); err != nil {
		return nil, err
	}

	// Return success
	return types.Ptr(response.Data), nil
}
