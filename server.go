package mcpbridge

import (
	"fmt"

	"github.com/clibridge/mcpbridge/bridge"
	"github.com/clibridge/mcpbridge/server"
	"github.com/viant/mcp-protocol/schema"
)

// NewServer creates an MCP server exposing the bridge tools.
func NewServer(aBridge *bridge.Bridge, options *Options) (*server.Server, error) {
	if aBridge == nil {
		return nil, fmt.Errorf("bridge was nil")
	}
	profile := aBridge.Profile()
	serverOptions := []server.Option{
		server.WithDispatcher(aBridge.Dispatcher()),
		server.WithImplementation(schema.Implementation{Name: profile.Name, Version: profile.Version}),
		server.WithLoggerName(profile.Name),
	}
	if options == nil {
		return server.New(serverOptions...)
	}
	if options.ProtocolVersion != "" {
		serverOptions = append(serverOptions, server.WithProtocolVersion(options.ProtocolVersion))
	}
	if options.LoggerName != "" {
		serverOptions = append(serverOptions, server.WithLoggerName(options.LoggerName))
	}
	if options.Instructions != "" {
		serverOptions = append(serverOptions, server.WithInstructions(options.Instructions))
	}
	transport := options.Transport
	if transport.Type != "" {
		serverOptions = append(serverOptions, server.WithTransport(server.TransportType(transport.Type)))
	}
	if transport.Type == string(server.TransportSSE) || transport.Type == string(server.TransportStreamable) {
		serverOptions = append(serverOptions, server.WithEndpointAddress(transport.Address()))
		if len(transport.Origins) > 0 {
			serverOptions = append(serverOptions, server.WithAllowedOrigins(transport.Origins...))
		}
	}
	return server.New(serverOptions...)
}
