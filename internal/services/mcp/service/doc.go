// Package service hosts the MCP server that exposes ads operations as tools.
package service
