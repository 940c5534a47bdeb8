package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clibridge/mcpbridge/tool"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// ListTools handles the tools/list method
func (h *Handler) ListTools(ctx context.Context, request *jsonrpc.Request) (*schema.ListToolsResult, *jsonrpc.Error) {
	descriptors := h.dispatcher.ListTools()
	result := &schema.ListToolsResult{Tools: make([]schema.Tool, 0, len(descriptors))}
	for _, descriptor := range descriptors {
		aTool, err := asTool(descriptor)
		if err != nil {
			return nil, jsonrpc.NewInternalError(fmt.Sprintf("failed to describe tool %v: %v", descriptor.Name, err), nil)
		}
		result.Tools = append(result.Tools, *aTool)
	}
	return result, nil
}

func asTool(descriptor *tool.Descriptor) (*schema.Tool, error) {
	data, err := json.Marshal(descriptor.InputSchema)
	if err != nil {
		return nil, err
	}
	ret := &schema.Tool{Name: descriptor.Name}
	if err = json.Unmarshal(data, &ret.InputSchema); err != nil {
		return nil, err
	}
	if descriptor.Description != "" {
		description := descriptor.Description
		ret.Description = &description
	}
	return ret, nil
}

// CallTool handles the tools/call method
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.Request) (*schema.CallToolResult, *jsonrpc.Error) {
	callToolRequest := &schema.CallToolRequest{Method: request.Method}
	if err := unmarshalParams(request.Params, &callToolRequest.Params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	arguments, err := asArguments(callToolRequest.Params.Arguments)
	if err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("invalid arguments: %v", err), request.Params)
	}
	ctx = tool.WithObserver(ctx, h.observe)
	response, err := h.dispatcher.CallTool(ctx, callToolRequest.Params.Name, arguments)
	if err != nil {
		if toolErr, ok := tool.AsError(err); ok && toolErr.Kind != tool.ExecutionFailed {
			return nil, jsonrpc.NewInvalidParamsError(toolErr.Error(), nil)
		}
		isError := true
		return &schema.CallToolResult{
			Content: []schema.CallToolResultContentElem{
				schema.TextContent{Type: "text", Text: err.Error()},
			},
			IsError: &isError,
		}, nil
	}
	result := &schema.CallToolResult{}
	for _, content := range response.Content {
		result.Content = append(result.Content, schema.TextContent{Type: content.Type, Text: content.Text})
	}
	return result, nil
}

// asArguments normalizes tools/call arguments into a JSON object map.
func asArguments(arguments interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(arguments)
	if err != nil {
		return nil, err
	}
	ret := map[string]interface{}{}
	if string(data) == "null" {
		return ret, nil
	}
	if err = json.Unmarshal(data, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (h *Handler) observe(ctx context.Context, event *tool.Event) {
	if !event.Finished {
		_ = h.Logger.Info(ctx, map[string]interface{}{"invocation": event.InvocationID, "tool": event.Tool, "status": "started"})
		return
	}
	record := map[string]interface{}{"invocation": event.InvocationID, "tool": event.Tool, "durationMs": event.Duration.Milliseconds()}
	if event.Err != nil {
		record["status"] = "failed"
		record["error"] = event.Err.Error()
		_ = h.Logger.Error(ctx, record)
		return
	}
	record["status"] = "finished"
	_ = h.Logger.Info(ctx, record)
}
