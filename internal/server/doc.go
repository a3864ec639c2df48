// Package server provides the MCP server context and the auxiliary
// HTTP servers for the yattmcp application.
//
// # Key Components
//
// ServerContext holds the shared state of a running server: the
// TickTick API client, the task service built on top of it, and the
// instrumentation plumbing (metrics recorder, audit logger). It is
// created once at startup and threaded through every tool handler.
//
// HealthChecker serves Kubernetes-style liveness (/healthz) and
// readiness (/readyz) probes for the streamable-http transport.
//
// MetricsServer exposes Prometheus metrics on a dedicated port,
// isolated from the main MCP traffic.
package server
