package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mjkoo/yattmcp/internal/config"
	"github.com/mjkoo/yattmcp/internal/instrumentation"
	"github.com/mjkoo/yattmcp/internal/logging"
	"github.com/mjkoo/yattmcp/internal/tasks"
	"github.com/mjkoo/yattmcp/internal/ticktick"
)

// ServerContext holds the shared state of the MCP server: the TickTick
// client, the task service built on it, and the observability plumbing.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg     *config.Config
	client  *ticktick.Client
	service *tasks.Service

	provider    *instrumentation.Provider
	auditLogger *instrumentation.AuditLogger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context. The TickTick client is
// created eagerly since it is cheap and its token is already validated
// by config.Load.
func NewServerContext(ctx context.Context, cfg *config.Config) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	var opts []ticktick.Option
	if cfg.BaseURL != "" {
		opts = append(opts, ticktick.WithBaseURL(cfg.BaseURL))
	}
	client := ticktick.NewClient(cfg.APIToken, opts...)

	slog.Debug("ticktick client configured",
		"token", logging.SanitizeToken(cfg.APIToken),
		"inbox_configured", cfg.InboxProjectID != "")

	return &ServerContext{
		ctx:     shutdownCtx,
		cancel:  cancel,
		cfg:     cfg,
		client:  client,
		service: tasks.NewService(client, cfg.InboxProjectID, slog.Default()),
	}, nil
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the loaded configuration.
func (sc *ServerContext) Config() *config.Config {
	return sc.cfg
}

// Service returns the task service.
func (sc *ServerContext) Service() *tasks.Service {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.service
}

// SetService replaces the task service. Used by tests to substitute a
// service backed by a fake upstream.
func (sc *ServerContext) SetService(service *tasks.Service) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.service = service
}

// SetInstrumentation wires the instrumentation provider and audit
// logger into the server context.
func (sc *ServerContext) SetInstrumentation(provider *instrumentation.Provider, audit *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.provider = provider
	sc.auditLogger = audit
}

// Instrumentation returns the instrumentation provider, or nil when not
// configured.
func (sc *ServerContext) Instrumentation() *instrumentation.Provider {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.provider
}

// AuditLogger returns the audit logger, or nil when not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// Metrics returns the metrics recorder, or nil when instrumentation is
// not configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	if sc.provider == nil {
		return nil
	}
	return sc.provider.Metrics()
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
