package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// Handler serves one transport session.
type Handler struct {
	transport.Notifier
	*Logger
	*Server
	session     string
	level       *loggingLevel
	initialized atomic.Bool
}

// Serve handles incoming JSON-RPC requests
func (h *Handler) Serve(parent context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	response.Id = request.Id
	response.Jsonrpc = jsonrpc.Version
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}
	switch request.Method {
	case schema.MethodInitialize, schema.MethodPing, schema.MethodToolsList, schema.MethodToolsCall, schema.MethodLoggingSetLevel:
	default:
		response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
		return
	}

	key := h.operationKey(request.Id)
	ctx, cancel := context.WithCancel(parent)
	if err := h.begin(key, newActiveCall(cancel, request)); err != nil {
		cancel()
		response.Error = jsonrpc.NewInternalError(err.Error(), nil)
		return
	}
	defer h.finish(parent, key)

	switch request.Method {
	case schema.MethodInitialize:
		result, err := h.Initialize(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodPing:
		result, err := h.Ping(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodToolsList:
		result, err := h.ListTools(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodToolsCall:
		result, err := h.CallTool(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodLoggingSetLevel:
		result, err := h.SetLevel(ctx, request)
		h.setResponse(response, result, err)
	}
}

// finish releases the request and reports its duration at debug level.
func (h *Handler) finish(ctx context.Context, key string) {
	call := h.end(key)
	if call == nil {
		return
	}
	_ = h.Logger.Debug(ctx, map[string]interface{}{"method": call.method, "durationMs": time.Since(call.started).Milliseconds()})
}

func (h *Handler) operationKey(id interface{}) string {
	return h.session + ":" + fmt.Sprint(id)
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	var err error
	response.Result, err = json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), []byte{})
	}
}

// Initialized reports whether the client sent notifications/initialized.
func (h *Handler) Initialized() bool {
	return h.initialized.Load()
}

// OnNotification handles incoming JSON-RPC notifications
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	switch notification.Method {
	case schema.MethodNotificationCancel:
		h.Cancel(ctx, notification)
	case schema.MethodNotificationInitialized:
		h.initialized.Store(true)
	}
}

// unmarshalParams decodes request params; absent params leave target untouched.
func unmarshalParams(params []byte, target interface{}) error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	return json.Unmarshal(params, target)
}
