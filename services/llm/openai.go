package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIModel serves any OpenAI-compatible chat endpoint, including Groq.
type OpenAIModel struct {
	llm *openai.LLM
}

func newOpenAIModel(token, model, baseURL string) (*OpenAIModel, error) {
	opts := []openai.Option{
		openai.WithModel(model),
		openai.WithToken(token),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIModel{llm: client}, nil
}

func (m *OpenAIModel) Invoke(ctx context.Context, prompt string) (string, error) {
	completion, err := llms.GenerateFromSinglePrompt(ctx, m.llm, prompt, llms.WithTemperature(0.3))
	if err != nil {
		return "", fmt.Errorf("failed to generate LLM response: %w", err)
	}
	return strings.TrimSpace(completion), nil
}

func (m *OpenAIModel) InvokeWithTool(ctx context.Context, system, prompt string, tool ToolSpec) (string, error) {
	params, err := toolParameters(tool.Input)
	if err != nil {
		return "", err
	}

	tools := []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  params,
			},
		},
	}

	messageHistory := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := m.llm.GenerateContent(ctx, messageHistory,
		llms.WithTools(tools),
		llms.WithTemperature(0.3),
		llms.WithToolChoice("required"))
	if err != nil {
		return "", fmt.Errorf("failed to generate tool response: %w", err)
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].ToolCalls) == 0 {
		log.Printf("[ERROR] No tool calls in LLM response for tool %s", tool.Name)
		return "", fmt.Errorf("no tool calls in LLM response")
	}

	toolCall := resp.Choices[0].ToolCalls[0]
	if toolCall.FunctionCall.Name != tool.Name {
		return "", fmt.Errorf("unexpected function call: %s", toolCall.FunctionCall.Name)
	}

	return toolCall.FunctionCall.Arguments, nil
}
