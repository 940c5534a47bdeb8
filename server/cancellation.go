package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Cancel handles notifications/cancelled by cancelling the referenced request of this session.
func (h *Handler) Cancel(ctx context.Context, notification *jsonrpc.Notification) *jsonrpc.Error {
	var params schema.CancelledNotificationParams
	if err := json.Unmarshal(notification.Params, &params); err != nil {
		return jsonrpc.NewParsingError(fmt.Sprintf("failed to parse notification: %v", err), notification.Params)
	}
	if params.RequestId == nil {
		return jsonrpc.NewInvalidParamsError("invalid requestId", notification.Params)
	}
	if !h.cancelOperation(h.operationKey(*params.RequestId)) {
		_ = h.Logger.Warning(ctx, map[string]interface{}{"requestId": *params.RequestId, "status": "not in flight"})
	}
	return nil
}
