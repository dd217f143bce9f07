package quiz

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// contractDefinition is the JSON Schema for the quiz wire contract.
// Unknown extra fields are tolerated; everything else is strict.
var contractDefinition = map[string]any{
	"type":     "array",
	"minItems": NumQuestions,
	"maxItems": NumQuestions,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": NumOptions,
				"maxItems": NumOptions,
				"items": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
			},
			"answer": map[string]any{
				"type": "string",
				"enum": []any{"A", "B", "C", "D"},
			},
		},
		"required": []any{"question", "options", "answer"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// contractSchema compiles the contract schema once and caches it.
func contractSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		const url = "schema://quiz-batch.json"
		if err := c.AddResource(url, contractDefinition); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// validateShape checks a parsed JSON value against the contract schema.
func validateShape(parsed any) error {
	schema, err := contractSchema()
	if err != nil {
		return fmt.Errorf("compile quiz schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return &ErrSchemaViolation{Reason: err.Error()}
	}
	return nil
}
