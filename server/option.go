package server

import (
	"fmt"

	"github.com/viant/jsonrpc/transport/server/stdio"
	"github.com/viant/mcp-protocol/schema"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithImplementation sets the server implementation.
func WithImplementation(implementation schema.Implementation) Option {
	return func(s *Server) error {
		s.info = implementation
		return nil
	}
}

// WithDispatcher sets the tool dispatcher.
func WithDispatcher(dispatcher Dispatcher) Option {
	return func(s *Server) error {
		s.dispatcher = dispatcher
		return nil
	}
}

// WithLoggerName sets the logger name.
func WithLoggerName(name string) Option {
	return func(s *Server) error {
		s.loggerName = name
		return nil
	}
}

// WithProtocolVersion sets the protocol version reported on initialize.
func WithProtocolVersion(version string) Option {
	return func(s *Server) error {
		s.protocolVersion = version
		return nil
	}
}

// WithInstructions sets the instructions returned on initialize.
func WithInstructions(instructions string) Option {
	return func(s *Server) error {
		if instructions != "" {
			s.instructions = &instructions
		}
		return nil
	}
}

// WithTransport selects the transport served by Start.
func WithTransport(transportType TransportType) Option {
	return func(s *Server) error {
		switch transportType {
		case TransportStdio, TransportSSE, TransportStreamable:
		default:
			return fmt.Errorf("unsupported transport: %q", transportType)
		}
		s.transportType = transportType
		return nil
	}
}

// WithEndpointAddress sets the HTTP listen address.
func WithEndpointAddress(addr string) Option {
	return func(s *Server) error {
		s.addr = addr
		return nil
	}
}

// WithAllowedOrigins restricts browser origins accepted by the HTTP transports.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) error {
		s.allowedOrigins = origins
		return nil
	}
}

// WithStdioOptions passes options to the stdio transport.
func WithStdioOptions(options ...stdio.Option) Option {
	return func(s *Server) error {
		s.stdioServerOption = append(s.stdioServerOption, options...)
		return nil
	}
}
