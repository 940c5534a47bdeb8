package tool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingInvoker struct {
	calls  int32
	prompt string
	output string
	err    error
}

func (c *countingInvoker) Invoke(_ context.Context, prompt string) (string, error) {
	atomic.AddInt32(&c.calls, 1)
	c.prompt = prompt
	return c.output, c.err
}

func reviewSpec() *Spec {
	return &Spec{
		Name:        "review",
		Description: "Review a path",
		Fields: []Field{
			{Name: "path", Description: "Path to review", Type: StringField, Required: true},
			{Name: "kind", Type: StringField, Required: true, Enum: []string{"security", "performance"}},
			{Name: "depth", Type: StringField, Default: "general"},
			{Name: "verbose", Type: BooleanField},
		},
		Prompt: func(args Arguments) string {
			return args.String("kind") + " review of " + args.String("path") + " at " + args.String("depth")
		},
		Render: func(args Arguments, output string) string {
			return "## Review: " + args.String("kind") + "\n\n" + output
		},
	}
}

func newTestDispatcher(t *testing.T, invoker Invoker) *Dispatcher {
	t.Helper()
	registry, err := NewRegistry(reviewSpec())
	require.NoError(t, err)
	return NewDispatcher(registry, invoker)
}

func TestDispatcher_CallTool(t *testing.T) {
	testCases := []struct {
		description  string
		name         string
		arguments    map[string]interface{}
		invokeErr    error
		expectKind   ErrorKind
		expectErr    string
		expectCalls  int32
		expectPrompt string
		expectText   string
	}{
		{
			description:  "valid call with default applied",
			name:         "review",
			arguments:    map[string]interface{}{"path": "main.go", "kind": "security", "extra": 1},
			expectCalls:  1,
			expectPrompt: "security review of main.go at general",
			expectText:   "## Review: security\n\nOK",
		},
		{
			description: "unknown tool",
			name:        "nope",
			arguments:   map[string]interface{}{"path": "main.go"},
			expectKind:  UnknownTool,
			expectErr:   "unknown tool: nope",
		},
		{
			description: "missing required field",
			name:        "review",
			arguments:   map[string]interface{}{"kind": "security"},
			expectKind:  InvalidArguments,
			expectErr:   "path",
		},
		{
			description: "enum violation",
			name:        "review",
			arguments:   map[string]interface{}{"path": "main.go", "kind": "style"},
			expectKind:  InvalidArguments,
			expectErr:   "style",
		},
		{
			description: "wrong type",
			name:        "review",
			arguments:   map[string]interface{}{"path": "main.go", "kind": "security", "verbose": "yes"},
			expectKind:  InvalidArguments,
			expectErr:   "boolean",
		},
		{
			description: "nil arguments",
			name:        "review",
			expectKind:  InvalidArguments,
			expectErr:   "missing properties",
		},
		{
			description: "execution failure",
			name:        "review",
			arguments:   map[string]interface{}{"path": "main.go", "kind": "performance"},
			invokeErr:   errors.New("claude failed with code 7: boom"),
			expectKind:  ExecutionFailed,
			expectErr:   "Tool execution failed: claude failed with code 7: boom",
			expectCalls: 1,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			invoker := &countingInvoker{output: "OK", err: testCase.invokeErr}
			dispatcher := newTestDispatcher(t, invoker)
			response, err := dispatcher.CallTool(context.Background(), testCase.name, testCase.arguments)
			assert.Equal(t, testCase.expectCalls, atomic.LoadInt32(&invoker.calls))
			if testCase.expectKind != 0 {
				require.Error(t, err)
				toolErr, ok := AsError(err)
				require.True(t, ok)
				assert.Equal(t, testCase.expectKind, toolErr.Kind)
				assert.Contains(t, err.Error(), testCase.expectErr)
				assert.Nil(t, response)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectPrompt, invoker.prompt)
			require.Len(t, response.Content, 1)
			assert.Equal(t, "text", response.Content[0].Type)
			assert.Equal(t, testCase.expectText, response.Text())
			assert.NotEmpty(t, response.InvocationID)
		})
	}
}

func TestDispatcher_CallerArgumentsUntouched(t *testing.T) {
	dispatcher := newTestDispatcher(t, &countingInvoker{output: "OK"})
	arguments := map[string]interface{}{"path": "main.go", "kind": "security"}
	_, err := dispatcher.CallTool(context.Background(), "review", arguments)
	require.NoError(t, err)
	assert.NotContains(t, arguments, "depth")
}

func TestDispatcher_Observer(t *testing.T) {
	dispatcher := newTestDispatcher(t, &countingInvoker{output: "OK"})
	var events []Event
	ctx := WithObserver(context.Background(), func(_ context.Context, event *Event) {
		events = append(events, *event)
	})
	response, err := dispatcher.CallTool(ctx, "review", map[string]interface{}{"path": "a", "kind": "security"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.False(t, events[0].Finished)
	assert.True(t, events[1].Finished)
	assert.Equal(t, response.InvocationID, events[0].InvocationID)
	assert.Equal(t, events[0].InvocationID, events[1].InvocationID)
}

func TestDispatcher_ListTools(t *testing.T) {
	dispatcher := newTestDispatcher(t, &countingInvoker{})
	tools := dispatcher.ListTools()
	require.Len(t, tools, 1)
	descriptor := tools[0]
	assert.Equal(t, "review", descriptor.Name)
	assert.Equal(t, "object", descriptor.InputSchema.Type)
	assert.Equal(t, []string{"path", "kind"}, descriptor.InputSchema.Required)
	assert.Equal(t, []string{"security", "performance"}, descriptor.InputSchema.Properties["kind"]["enum"])
	assert.Equal(t, "general", descriptor.InputSchema.Properties["depth"]["default"])
	assert.Equal(t, "boolean", descriptor.InputSchema.Properties["verbose"]["type"])
}

func TestRegistry_Register(t *testing.T) {
	registry, err := NewRegistry(reviewSpec())
	require.NoError(t, err)
	assert.Error(t, registry.Register(reviewSpec()))

	invalid := reviewSpec()
	invalid.Name = "other"
	invalid.Fields = append(invalid.Fields, Field{Name: "path", Type: StringField})
	assert.Error(t, registry.Register(invalid))

	noPrompt := reviewSpec()
	noPrompt.Name = "third"
	noPrompt.Prompt = nil
	assert.Error(t, registry.Register(noPrompt))

	assert.Equal(t, []string{"review"}, registry.Names())
}

func TestArguments(t *testing.T) {
	args := Arguments{"a": "x", "b": true, "c": nil}
	assert.Equal(t, "x", args.String("a"))
	assert.Equal(t, "", args.String("missing"))
	assert.Equal(t, "", args.String("c"))
	assert.True(t, args.Bool("b"))
	assert.False(t, args.Bool("a"))
	assert.True(t, args.Has("c"))
	assert.False(t, args.Has("missing"))
}
