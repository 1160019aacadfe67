package items

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// rosterSchema is the contract for roster files. Names and answers must be
// non-empty because the engine requires a non-empty expected answer per item.
const rosterSchema = `{
	"type": "object",
	"properties": {
		"people": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name":             {"type": "string", "minLength": 1},
					"nickname":         {"type": "string"},
					"relationship":     {"type": "string", "minLength": 1},
					"photo_url":        {"type": "string"},
					"description":      {"type": "string"},
					"interests":        {"type": "string"},
					"personality":      {"type": "string"},
					"location_context": {"type": "string"},
					"association":      {"type": "string"}
				},
				"required": ["name", "relationship"],
				"additionalProperties": false
			}
		},
		"belongings": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name":     {"type": "string", "minLength": 1},
					"category": {"type": "string"},
					"purpose":  {"type": "string"},
					"location": {"type": "string"},
					"features": {"type": "string"},
					"color":    {"type": "string"},
					"photo_url": {"type": "string"}
				},
				"required": ["name"],
				"additionalProperties": false
			}
		},
		"facts": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"label":     {"type": "string", "minLength": 1},
					"question":  {"type": "string", "minLength": 1},
					"answer":    {"type": "string", "minLength": 1},
					"hint_type": {"type": "string", "enum": ["first_letter", "first_digit"]}
				},
				"required": ["label", "question", "answer"],
				"additionalProperties": false
			}
		},
		"lists": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name":  {"type": "string", "minLength": 1},
					"items": {
						"type": "array",
						"items": {"type": "string", "minLength": 1},
						"minItems": 2,
						"maxItems": 7
					}
				},
				"required": ["name", "items"],
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledRosterSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(rosterSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse roster schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://roster.json", doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://roster.json")
	})
	return compiledSchema, compileErr
}

// validateRoster checks roster JSON against the schema.
func validateRoster(data []byte) error {
	sch, err := compiledRosterSchema()
	if err != nil {
		return err
	}
	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("roster is not valid JSON: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("roster validation failed: %w", err)
	}
	return nil
}
