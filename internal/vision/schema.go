package vision

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// menuSchema pins the shape the model must return. Anything outside it
// is treated as a failed extraction.
const menuSchema = `{
	"type": "object",
	"required": ["categories"],
	"properties": {
		"restaurant_name": {"type": "string"},
		"currency": {"type": "string"},
		"categories": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "items"],
				"properties": {
					"name": {"type": "string"},
					"description": {"type": "string"},
					"items": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["name", "price"],
							"properties": {
								"name": {"type": "string"},
								"description": {"type": "string"},
								"price": {"type": "number", "minimum": 0}
							}
						}
					}
				}
			}
		}
	}
}`

var compiledMenuSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("menu.json", bytes.NewReader([]byte(menuSchema))); err != nil {
		panic(err)
	}
	return compiler.MustCompile("menu.json")
}

// validateMenuJSON checks a raw model response against menuSchema.
func validateMenuJSON(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal model response: %w", err)
	}
	if err := compiledMenuSchema.Validate(v); err != nil {
		return fmt.Errorf("model response does not match schema: %w", err)
	}
	return nil
}
