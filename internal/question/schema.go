package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://quizdeck/questions.json"

// documentSchema describes the shape of a question document.
var documentSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "question", "choices", "answer", "explanations"},
		"properties": map[string]any{
			"id":       map[string]any{"type": "integer"},
			"question": map[string]any{"type": "string"},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answer": map[string]any{"type": "integer", "minimum": 0},
			"explanations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// Round-trip through JSON so the compiler sees plain decoded values.
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateDocument checks a generically decoded document against the schema.
func validateDocument(doc any) error {
	s, err := schema()
	if err != nil {
		return fmt.Errorf("compile question schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return &ValidationError{Issues: []string{err.Error()}}
	}
	return nil
}
