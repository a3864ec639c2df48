package instrumentation

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestNewMetrics(t *testing.T) {
	provider := sdkmetric.NewMeterProvider()
	defer provider.Shutdown(context.Background())

	m, err := NewMetrics(provider.Meter("test"), false)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	// Recording should not panic with fully initialized instruments.
	ctx := context.Background()
	m.RecordHTTPRequest(ctx, "POST", "/mcp", 200, 10*time.Millisecond)
	m.RecordTickTickOperation(ctx, "getProjectData", StatusSuccess, 50*time.Millisecond)
	m.RecordToolInvocation(ctx, "ticktick_search_tasks", StatusSuccess, 100*time.Millisecond)
	m.RecordToolInvocationWithProject(ctx, "ticktick_create_task", StatusSuccess, "proj-1", time.Millisecond)
	m.IncrementActiveSessions(ctx)
	m.DecrementActiveSessions(ctx)
}

func TestMetrics_ZeroValueIsNoop(t *testing.T) {
	// A zero-value Metrics is what disabled instrumentation hands out;
	// every recorder must tolerate it.
	m := &Metrics{}
	ctx := context.Background()

	m.RecordHTTPRequest(ctx, "GET", "/healthz", 200, time.Millisecond)
	m.RecordTickTickOperation(ctx, "listProjects", StatusError, time.Millisecond)
	m.RecordToolInvocation(ctx, "ticktick_get_task", StatusError, time.Millisecond)
	m.RecordToolInvocationWithProject(ctx, "ticktick_get_task", StatusError, "p", time.Millisecond)
	m.IncrementActiveSessions(ctx)
	m.DecrementActiveSessions(ctx)
}

func TestProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if provider.Enabled() {
		t.Error("provider should report disabled")
	}
	if provider.Metrics() == nil {
		t.Error("disabled provider should still hand out a metrics recorder")
	}
	if provider.Tracer("test") == nil {
		t.Error("disabled provider should hand out a noop tracer")
	}
	if err := provider.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
