package tool

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// InputSchema is the JSON schema object advertised for a tool.
type InputSchema struct {
	Type       string                            `json:"type"`
	Properties map[string]map[string]interface{} `json:"properties"`
	Required   []string                          `json:"required,omitempty"`
}

// Descriptor is what a client sees when listing tools.
type Descriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

func (s *Spec) descriptor() *Descriptor {
	ret := &Descriptor{
		Name:        s.Name,
		Description: s.Description,
		InputSchema: InputSchema{Type: "object", Properties: make(map[string]map[string]interface{}, len(s.Fields))},
	}
	for _, field := range s.Fields {
		property := map[string]interface{}{"type": string(field.Type)}
		if field.Description != "" {
			property["description"] = field.Description
		}
		if len(field.Enum) > 0 {
			property["enum"] = field.Enum
		}
		if field.Default != nil {
			property["default"] = field.Default
		}
		ret.InputSchema.Properties[field.Name] = property
		if field.Required {
			ret.InputSchema.Required = append(ret.InputSchema.Required, field.Name)
		}
	}
	return ret
}

// jsonSchema builds and resolves the validation schema; extra properties are allowed.
func (s *Spec) jsonSchema() (*jsonschema.Resolved, error) {
	root := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(s.Fields)),
	}
	for _, field := range s.Fields {
		property := &jsonschema.Schema{Type: string(field.Type), Description: field.Description}
		for _, value := range field.Enum {
			property.Enum = append(property.Enum, value)
		}
		if field.Default != nil {
			data, err := json.Marshal(field.Default)
			if err != nil {
				return nil, fmt.Errorf("tool %v: field %v: invalid default: %w", s.Name, field.Name, err)
			}
			property.Default = data
		}
		root.Properties[field.Name] = property
		if field.Required {
			root.Required = append(root.Required, field.Name)
		}
	}
	resolved, err := root.Resolve(&jsonschema.ResolveOptions{ValidateDefaults: true})
	if err != nil {
		return nil, fmt.Errorf("tool %v: invalid schema: %w", s.Name, err)
	}
	return resolved, nil
}
