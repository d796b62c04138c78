package llm

import (
	"context"
	"fmt"

	"studybuddy/config"
)

// ToolSpec describes a single function tool offered to the model. Input is
// the zero value of the arguments struct; its JSON schema is reflected from
// the struct tags.
type ToolSpec struct {
	Name        string
	Description string
	Input       any
}

// Model is the language-model capability: one prompt in, one text response
// out. InvokeWithTool forces a structured reply through a function tool and
// returns the raw JSON arguments of the call.
type Model interface {
	Invoke(ctx context.Context, prompt string) (string, error)
	InvokeWithTool(ctx context.Context, system, prompt string, tool ToolSpec) (string, error)
}

const groqBaseURL = "https://api.groq.com/openai/v1"

// New builds the configured model backend. The groq provider is the
// OpenAI-compatible backend pointed at Groq's endpoint.
func New(cfg *config.Config) (Model, error) {
	switch cfg.LLMProvider {
	case "openai":
		model := cfg.LLMModel
		if model == "" {
			model = "gpt-4o-mini"
		}
		return newOpenAIModel(cfg.OpenAIAPIKey, model, cfg.LLMBaseURL)
	case "groq":
		model := cfg.LLMModel
		if model == "" {
			model = "llama-3.3-70b-versatile"
		}
		baseURL := cfg.LLMBaseURL
		if baseURL == "" {
			baseURL = groqBaseURL
		}
		return newOpenAIModel(cfg.GroqAPIKey, model, baseURL)
	case "anthropic":
		return newAnthropicModel(cfg.AnthropicAPIKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLMProvider)
	}
}
