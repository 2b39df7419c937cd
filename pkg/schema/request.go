package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// CompletionRequest is the payload for a plain text completion
type CompletionRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   uint    `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature"`
}

// ChatRequest is the payload for a chat completion
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   uint          `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

// ChatMessage is a single message in a chat request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCompletionRequest returns the completion payload for probing a model
func NewCompletionRequest(model ModelDescriptor, prompt string) CompletionRequest {
	return CompletionRequest{
		Model:       model.ID,
		Prompt:      prompt,
		MaxTokens:   model.MaxTokens,
		Temperature: model.Temperature,
	}
}

// NewChatRequest returns the chat payload for probing a model, with the
// prompt as a single user message
func NewChatRequest(model ModelDescriptor, prompt string) ChatRequest {
	return ChatRequest{
		Model:       model.ID,
		Messages:    []ChatMessage{{Role: RoleUser, Content: prompt}},
		MaxTokens:   model.MaxTokens,
		Temperature: model.Temperature,
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r CompletionRequest) String() string {
	return Stringify(r)
}

func (r ChatRequest) String() string {
	return Stringify(r)
}
