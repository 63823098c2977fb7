package llm

import "github.com/nathoo/frogquest/engine/hatch"

var frogSchema = buildSchema(hatch.PayloadFields)

// buildSchema describes an object whose keys are all required strings.
func buildSchema(fields []string) map[string]any {
	props := make(map[string]any, len(fields))
	required := make([]any, len(fields))
	for i, f := range fields {
		props[f] = map[string]any{"type": "string"}
		required[i] = f
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}
