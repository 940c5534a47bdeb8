// Package mcpbridge runs an assistant CLI bridge as an MCP server.
//
// A bridge exposes a fixed set of tools (brainstorming, code analysis and collaborative
// planning). Each tool call validates its arguments, renders a prompt, runs the assistant
// program once and returns its output as a Markdown text block.
//
// The two bundled bridges are started by cmd/claude-bridge and cmd/codex-bridge:
//
//	if err := mcpbridge.Run(ctx, os.Args[1:], bridge.Claude(), os.Stdout); err != nil {
//		log.Fatal(err)
//	}
package mcpbridge
