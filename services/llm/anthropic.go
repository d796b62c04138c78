package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicModel struct {
	client *anthropic.Client
	model  anthropic.Model
}

func newAnthropicModel(apiKey, model string) (*AnthropicModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	selected := anthropic.ModelClaude4Sonnet20250514
	if model != "" {
		selected = anthropic.Model(model)
	}

	return &AnthropicModel{
		client: &client,
		model:  selected,
	}, nil
}

func (m *AnthropicModel) Invoke(ctx context.Context, prompt string) (string, error) {
	response, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     m.model,
		MaxTokens: 4096,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	var text strings.Builder
	for _, block := range response.Content {
		switch block := block.AsAny().(type) {
		case anthropic.TextBlock:
			text.WriteString(block.Text)
		}
	}

	return strings.TrimSpace(text.String()), nil
}

func (m *AnthropicModel) InvokeWithTool(ctx context.Context, system, prompt string, tool ToolSpec) (string, error) {
	toolSpecs := []anthropic.ToolUnionParam{
		{
			OfTool: &anthropic.ToolParam{
				Name:        tool.Name,
				Description: anthropic.String(tool.Description),
				InputSchema: anthropicToolSchema(tool.Input),
			},
		},
	}

	// The system instruction rides in the user turn; the Messages call
	// stays a single-shot exchange.
	combined := prompt
	if system != "" {
		combined = system + "\n\n" + prompt
	}

	response, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     m.model,
		MaxTokens: 4096,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(combined))},
		Tools:     toolSpecs,
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	for _, block := range response.Content {
		switch block := block.AsAny().(type) {
		case anthropic.ToolUseBlock:
			if block.Name != tool.Name {
				continue
			}
			args, err := json.Marshal(block.Input)
			if err != nil {
				return "", fmt.Errorf("failed to marshal tool arguments: %w", err)
			}
			return string(args), nil
		}
	}

	return "", fmt.Errorf("no tool calls in LLM response")
}
