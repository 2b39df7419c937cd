package openrouter

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// statusTransport records the status code of the last response received
// from upstream, so that errors raised by the client itself can be told
// apart from error statuses returned by the API
type statusTransport struct {
	next   http.RoundTripper
	status *atomic.Int32
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SendCompletion sends a text completion request. An error status from the
// API is returned as a response carrying an error object, so that only
// transport and decoding failures are returned as errors.
func (c *Client) SendCompletion(ctx context.Context, req schema.CompletionRequest) (schema.Response, error) {
	return c.send(ctx, req, "completions")
}

// SendChatCompletion sends a chat completion request, with the same error
// semantics as SendCompletion
func (c *Client) SendChatCompletion(ctx context.Context, req schema.ChatRequest) (schema.Response, error) {
	return c.send(ctx, req, "chat", "completions")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) send(ctx context.Context, req any, path ...any) (schema.Response, error) {
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	var status atomic.Int32
	var response schema.Response
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath(path...), client.OptReqTransport(func(next http.RoundTripper) http.RoundTripper {
		return &statusTransport{next: next, status: &status}
	})); err != nil {
		if code := int(status.Load()); isErrorStatus(code) {
			return schema.NewErrorResponse(code, errorMessage(err)), nil
		}
		return nil, err
	}

	// Return success
	return response, nil
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	resp, err := next.RoundTrip(req)
	if resp != nil {
		t.status.Store(int32(resp.StatusCode))
	}
	return resp, err
}

// isErrorStatus returns true for a 4xx or 5xx status
func isErrorStatus(code int) bool {
	return code >= http.StatusBadRequest && code < 600
}

// errorMessage prefers the reason from a decoded error body
func errorMessage(err error) string {
	var body httpresponse.ErrResponse
	if errors.As(err, &body) && body.Reason != "" {
		return body.Reason
	}
	return err.Error()
}
