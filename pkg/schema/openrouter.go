package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Credits is the credit balance of an account
type Credits struct {
	TotalCredits float64 `json:"total_credits"`
	TotalUsage   float64 `json:"total_usage"`
}

// ModelEndpoints lists the upstream providers serving a model
type ModelEndpoints struct {
	ID          string          `json:"id"`
	Name        string          `json:"name,omitempty"`
	Created     int64           `json:"created,omitempty"`
	Description string          `json:"description,omitempty"`
	Endpoints   []ModelEndpoint `json:"endpoints"`
}

// ModelEndpoint is one provider serving a model
type ModelEndpoint struct {
	Name                string            `json:"name"`
	ProviderName        string            `json:"provider_name,omitempty"`
	ContextLength       uint64            `json:"context_length,omitempty"`
	MaxCompletionTokens *uint64           `json:"max_completion_tokens,omitempty"`
	Pricing             map[string]string `json:"pricing,omitempty"`
	SupportedParameters []string          `json:"supported_parameters,omitempty"`
	Status              *int              `json:"status,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Credits) String() string {
	return Stringify(c)
}

func (e ModelEndpoints) String() string {
	return Stringify(e)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Remaining returns the unused credit balance
func (c Credits) Remaining() float64 {
	return c.TotalCredits - c.TotalUsage
}
