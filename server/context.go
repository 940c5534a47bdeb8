package server

import (
	"context"
	"time"

	"github.com/viant/jsonrpc"
)

type activeCall struct {
	cancel  context.CancelFunc
	method  string
	started time.Time
}

func newActiveCall(cancel context.CancelFunc, request *jsonrpc.Request) *activeCall {
	return &activeCall{cancel: cancel, method: request.Method, started: time.Now()}
}
