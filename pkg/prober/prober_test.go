package prober_test

import (
	"context"
	"errors"
	"sync"
	"time"

	// Packages
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

const (
	testPrompt = "Who is Ash Ketchum?"
	okResponse = `{"id":"gen-1","choices":[{"text":"A Pokemon trainer"}]}`
)

var errTransport = errors.New("connection reset by peer")

// fakeClient records requests and answers them with fn
type fakeClient struct {
	sync.Mutex
	fn         func(model string) (schema.Response, error)
	models     []string
	completion []schema.CompletionRequest
	chat       []schema.ChatRequest
}

func newFakeClient(fn func(model string) (schema.Response, error)) *fakeClient {
	if fn == nil {
		fn = func(string) (schema.Response, error) {
			return schema.Response(okResponse), nil
		}
	}
	return &fakeClient{fn: fn}
}

func (c *fakeClient) SendCompletion(_ context.Context, req schema.CompletionRequest) (schema.Response, error) {
	c.Lock()
	c.models = append(c.models, req.Model)
	c.completion = append(c.completion, req)
	c.Unlock()
	return c.fn(req.Model)
}

func (c *fakeClient) SendChatCompletion(_ context.Context, req schema.ChatRequest) (schema.Response, error) {
	c.Lock()
	c.models = append(c.models, req.Model)
	c.chat = append(c.chat, req)
	c.Unlock()
	return c.fn(req.Model)
}

func (c *fakeClient) Calls() []string {
	c.Lock()
	defer c.Unlock()
	return append([]string(nil), c.models...)
}

// recordingClock returns from Sleep immediately, recording each delay
type recordingClock struct {
	sync.Mutex
	sleeps []time.Duration
}

func (c *recordingClock) Now() time.Time {
	return time.Now()
}

func (c *recordingClock) Sleep(ctx context.Context, d time.Duration) error {
	c.Lock()
	defer c.Unlock()
	c.sleeps = append(c.sleeps, d)
	return ctx.Err()
}

// scaledClock runs time faster by a factor, so that second-scale stagger
// delays complete in milliseconds
type scaledClock struct {
	start time.Time
	scale time.Duration
}

func newScaledClock(scale time.Duration) *scaledClock {
	return &scaledClock{start: time.Now(), scale: scale}
}

func (c *scaledClock) Now() time.Time {
	return c.start.Add(time.Since(c.start) * c.scale)
}

func (c *scaledClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d / c.scale)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func makeCatalog(ids ...string) []schema.ModelDescriptor {
	result := make([]schema.ModelDescriptor, 0, len(ids))
	for _, id := range ids {
		result = append(result, schema.NewModelDescriptor(id, 64, 0.7))
	}
	return result
}
