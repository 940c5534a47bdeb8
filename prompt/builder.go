// Package prompt assembles the instruction text handed to an assistant CLI.
package prompt

import "strings"

const paragraphSeparator = "\n\n"

// Builder collects prompt paragraphs; paragraphs are separated by one blank line.
type Builder struct {
	paragraphs []string
}

// Line appends a paragraph.
func (b *Builder) Line(text string) *Builder {
	b.paragraphs = append(b.paragraphs, text)
	return b
}

// Optional appends "label: value" unless value is empty.
func (b *Builder) Optional(label, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Line(label + ": " + value)
}

// When appends text if cond holds.
func (b *Builder) When(cond bool, text string) *Builder {
	if !cond {
		return b
	}
	return b.Line(text)
}

// Close appends the closing paragraph and returns the prompt.
func (b *Builder) Close(closing string) string {
	b.Line(closing)
	return b.String()
}

func (b *Builder) String() string {
	return strings.Join(b.paragraphs, paragraphSeparator)
}

// New starts a prompt with its opening paragraph.
func New(opening string) *Builder {
	return &Builder{paragraphs: []string{opening}}
}
