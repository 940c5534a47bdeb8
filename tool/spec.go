// Package tool defines assistant tools, validates their arguments and dispatches calls.
package tool

import (
	"errors"
	"fmt"
)

// FieldType is a JSON schema primitive type.
type FieldType string

const (
	StringField  FieldType = "string"
	BooleanField FieldType = "boolean"
)

// Field describes one tool argument.
type Field struct {
	Name        string
	Description string
	Type        FieldType
	Required    bool
	Enum        []string
	Default     any
}

// Spec describes a tool: its arguments, how its prompt is built and how the output is rendered.
type Spec struct {
	Name        string
	Description string
	// Summary is the one-line help text.
	Summary string
	Fields  []Field
	Prompt  func(args Arguments) string
	Render  func(args Arguments, output string) string
}

// Validate checks that the spec is complete.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return errors.New("tool name was empty")
	}
	if s.Prompt == nil {
		return fmt.Errorf("tool %v: prompt builder was nil", s.Name)
	}
	if s.Render == nil {
		return fmt.Errorf("tool %v: renderer was nil", s.Name)
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, field := range s.Fields {
		if field.Name == "" {
			return fmt.Errorf("tool %v: field name was empty", s.Name)
		}
		if seen[field.Name] {
			return fmt.Errorf("tool %v: duplicate field %v", s.Name, field.Name)
		}
		seen[field.Name] = true
		switch field.Type {
		case StringField, BooleanField:
		default:
			return fmt.Errorf("tool %v: field %v: unsupported type %q", s.Name, field.Name, field.Type)
		}
	}
	return nil
}
