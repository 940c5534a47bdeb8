package server

import (
	"context"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// SetLevel handles the logging/setLevel method
func (h *Handler) SetLevel(ctx context.Context, request *jsonrpc.Request) (*struct{}, *jsonrpc.Error) {
	setLevelRequest := &schema.SetLevelRequest{Method: request.Method}
	if err := unmarshalParams(request.Params, &setLevelRequest.Params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	if _, ok := levelOrdinals[setLevelRequest.Params.Level]; !ok {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("unsupported logging level: %v", setLevelRequest.Params.Level), request.Params)
	}
	h.level.set(setLevelRequest.Params.Level)
	return &struct{}{}, nil
}
