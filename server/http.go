package server

import (
	"context"
	"net/http"

	"github.com/viant/jsonrpc/transport/server/http/sse"
	"github.com/viant/jsonrpc/transport/server/http/streamable"
)

// TransportType selects how the server is exposed.
type TransportType string

const (
	TransportStdio      TransportType = "stdio"
	TransportSSE        TransportType = "sse"
	TransportStreamable TransportType = "streamable"
)

const (
	sseURI        = "/sse"
	sseMessageURI = "/message"
	streamableURI = "/mcp"
)

type httpServer struct {
	transportType  TransportType
	addr           string
	allowedOrigins []string
}

func (s *Server) httpHandler() http.Handler {
	sseHandler := sse.New(s.NewHandler,
		sse.WithURI(sseURI),
		sse.WithMessageURI(sseMessageURI),
	)
	streamingHandler := streamable.New(s.NewHandler,
		streamable.WithURI(streamableURI),
	)
	middlewareHandlers := []Middleware{protocolVersionMiddleware(s.protocolVersion)}
	if len(s.allowedOrigins) > 0 {
		middlewareHandlers = append(middlewareHandlers, originValidationMiddleware(s.allowedOrigins))
	}
	sseChain := ChainMiddlewareHandlers(sseHandler, middlewareHandlers...)
	streamChain := ChainMiddlewareHandlers(streamingHandler, middlewareHandlers...)

	mux := http.NewServeMux()
	mux.Handle(sseURI, sseChain)
	mux.Handle(sseMessageURI, sseChain)
	mux.Handle(streamableURI, streamChain)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		target := sseURI
		if s.transportType == TransportStreamable {
			target = streamableURI
		}
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	})
	return mux
}

// HTTP creates an HTTP server exposing the SSE and streamable transports.
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = s.addr
	}
	if addr == "" {
		// Default bind only to localhost to reduce DNS rebinding risk
		addr = "127.0.0.1:5000"
	}
	return &http.Server{
		Addr:    addr,
		Handler: s.httpHandler(),
	}
}
