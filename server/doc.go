// Package server exposes a tool dispatcher as an MCP server.
//
// It implements the initialize, ping, tools/list, tools/call and logging/setLevel
// methods over JSON-RPC, with the following transports:
//   - STDIO (default)
//   - HTTP-SSE
//   - Streamable HTTP
//
// Callers construct a server via `server.New`, then either serve a transport
// directly or use Start and Shutdown:
//
//	s, _ := server.New(server.WithDispatcher(aBridge.Dispatcher()))
//	go s.Start(ctx)
//	defer s.Shutdown(context.Background())
//
// Shutdown cancels every in-flight call, which kills the assistant processes they spawned.
package server
