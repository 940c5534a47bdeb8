package server

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/clibridge/mcpbridge/internal/collection"
	"github.com/clibridge/mcpbridge/tool"
	"github.com/google/uuid"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// Dispatcher lists and runs tools.
type Dispatcher interface {
	ListTools() []*tool.Descriptor
	CallTool(ctx context.Context, name string, arguments map[string]interface{}) (*tool.Response, error)
}

// Server represents MCP protocol handler
type Server struct {
	activeCalls *collection.SyncMap[string, *activeCall]
	info        schema.Implementation
	dispatcher  Dispatcher

	instructions    *string
	protocolVersion string
	loggerName      string

	mux      sync.Mutex
	closing  bool
	inFlight sync.WaitGroup

	stdioServer
	httpServer
}

// NewHandler creates a new handler instance
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler(ctx, transport)
}

func (s *Server) newHandler(_ context.Context, transport transport.Transport) *Handler {
	ret := &Handler{
		Server:   s,
		Notifier: transport,
		session:  uuid.New().String(),
		level:    &loggingLevel{},
	}
	ret.Logger = newLogger(s.loggerName, ret.level, transport)
	return ret
}

// begin registers an in-flight request; it fails once shutdown started.
func (s *Server) begin(key string, call *activeCall) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.closing {
		return errShuttingDown
	}
	s.inFlight.Add(1)
	s.activeCalls.Put(key, call)
	return nil
}

// end releases an in-flight request and returns its record.
func (s *Server) end(key string) *activeCall {
	defer s.inFlight.Done()
	active, ok := s.activeCalls.Get(key)
	if !ok {
		return nil
	}
	active.cancel()
	s.activeCalls.Delete(key)
	return active
}

// cancelOperation cancels an in-flight request; the record stays until the request returns.
func (s *Server) cancelOperation(key string) bool {
	active, ok := s.activeCalls.Get(key)
	if ok {
		active.cancel()
	}
	return ok
}

// InFlight returns the number of requests being served.
func (s *Server) InFlight() int {
	return s.activeCalls.Len()
}

var errShuttingDown = errors.New("server is shutting down")

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		info: schema.Implementation{
			Name:    "mcpbridge",
			Version: "0.1",
		},
		loggerName:      "server",
		protocolVersion: schema.LatestProtocolVersion,
		activeCalls:     collection.NewSyncMap[string, *activeCall](),
		httpServer:      httpServer{transportType: TransportStdio},
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.dispatcher == nil {
		return nil, errors.New("no dispatcher specified")
	}
	return s, nil
}

// Handler returns an http.Handler serving the SSE and streamable transports.
func (s *Server) Handler() http.Handler {
	return s.httpHandler()
}
