package llm

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"
)

func reflectSchema(v any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(v)
}

// toolParameters renders the reflected schema as the plain map the
// OpenAI-style function-calling API expects.
func toolParameters(v any) (map[string]any, error) {
	data, err := json.Marshal(reflectSchema(v))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool schema: %w", err)
	}

	var params map[string]any
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to decode tool schema: %w", err)
	}
	return params, nil
}

func anthropicToolSchema(v any) anthropic.ToolInputSchemaParam {
	schema := reflectSchema(v)
	return anthropic.ToolInputSchemaParam{
		Properties: schema.Properties,
	}
}
