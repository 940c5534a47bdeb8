package tool

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Invoker hands a prompt to the assistant program and returns its output.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// InvokerFunc adapts a function to Invoker.
type InvokerFunc func(ctx context.Context, prompt string) (string, error)

// Invoke calls f.
func (f InvokerFunc) Invoke(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Content is a single response block.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Response is a successful tool result.
type Response struct {
	InvocationID string
	Content      []Content
	Duration     time.Duration
}

// Text returns the concatenated text blocks.
func (r *Response) Text() string {
	var ret strings.Builder
	for _, content := range r.Content {
		ret.WriteString(content.Text)
	}
	return ret.String()
}

// Dispatcher validates tool calls and runs them through an Invoker.
type Dispatcher struct {
	registry *Registry
	invoker  Invoker
}

// ListTools returns the tool descriptors in declaration order.
func (d *Dispatcher) ListTools() []*Descriptor {
	return d.registry.Descriptors()
}

// Registry returns the underlying registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// CallTool validates arguments, builds the prompt, invokes the assistant once and renders its output.
// The invoker is never reached for an unknown tool or invalid arguments.
func (d *Dispatcher) CallTool(ctx context.Context, name string, arguments map[string]interface{}) (*Response, error) {
	entry, ok := d.registry.lookup(name)
	if !ok {
		return nil, &Error{Kind: UnknownTool, Tool: name}
	}
	args := make(map[string]interface{}, len(arguments))
	for k, v := range arguments {
		args[k] = v
	}
	if err := entry.schema.ApplyDefaults(&args); err != nil {
		return nil, &Error{Kind: InvalidArguments, Tool: name, Err: err}
	}
	if err := entry.schema.Validate(args); err != nil {
		return nil, &Error{Kind: InvalidArguments, Tool: name, Err: err}
	}
	validated := Arguments(args)
	call := &Event{InvocationID: uuid.New().String(), Tool: name}
	observe(ctx, call)

	started := time.Now()
	output, err := d.invoker.Invoke(ctx, entry.spec.Prompt(validated))
	call.Finished = true
	call.Duration = time.Since(started)
	if err != nil {
		call.Err = &Error{Kind: ExecutionFailed, Tool: name, Err: err}
		observe(ctx, call)
		return nil, call.Err
	}
	observe(ctx, call)
	return &Response{
		InvocationID: call.InvocationID,
		Content:      []Content{{Type: "text", Text: entry.spec.Render(validated, output)}},
		Duration:     call.Duration,
	}, nil
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(registry *Registry, invoker Invoker) *Dispatcher {
	return &Dispatcher{registry: registry, invoker: invoker}
}
