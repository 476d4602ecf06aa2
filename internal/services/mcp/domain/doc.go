// Package domain translates MCP tool calls into ads service commands.
//
// The package is intentionally explicit about that mapping:
// - parse MCP tool input into account-scoped requests,
// - route calls to the ads gRPC service,
// - and surface structured outputs that MCP clients can render.
package domain
