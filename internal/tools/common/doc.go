// Package common provides shared helpers for MCP tool handlers,
// primarily the instrumentation wrapper that records metrics and audit
// logs around every tool invocation.
package common
