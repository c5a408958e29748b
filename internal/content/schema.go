package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// lessonSchemaDef is the JSON Schema a lesson content file must satisfy.
// Intentionally permissive: banks are optional, but any question present
// must carry a prompt and an answer so it can later be rendered and graded.
var lessonSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":   map[string]any{"type": "string"},
		"subject": map[string]any{"type": "string"},
		"vocabulary": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"term":       map[string]any{"type": "string"},
					"definition": map[string]any{"type": "string"},
				},
				"required": []any{"term", "definition"},
			},
		},
		"trueFalse":      questionArrayDef,
		"multipleChoice": questionArrayDef,
		"fillInBlank":    questionArrayDef,
		"shortAnswer":    questionArrayDef,
		"wordProblems":   questionArrayDef,
		"worksheet":      questionArrayDef,
		"test":           questionArrayDef,
	},
	"required": []any{"title", "subject"},
}

var questionArrayDef = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"answer":   map[string]any{},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"question", "answer"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateLesson checks raw lesson JSON against the lesson schema.
func validateLesson(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := lessonSchema()
	if err != nil {
		return fmt.Errorf("compile lesson schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("lesson content validation failed: %w", err)
	}
	return nil
}

// lessonSchema compiles the lesson schema once and caches it.
func lessonSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(lessonSchemaDef)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lesson-content.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
