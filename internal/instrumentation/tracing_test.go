package instrumentation

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSpanAttributeBuilder(t *testing.T) {
	builder := NewSpanAttributeBuilder().
		WithTool("ticktick_get_tasks").
		WithOperation("get").
		WithProject("project-1").
		WithTask("task-1").
		WithReadOnly(true)

	attrs := builder.Build()

	if len(attrs) != 5 {
		t.Errorf("expected 5 attributes, got %d", len(attrs))
	}

	attrMap := make(map[string]interface{})
	for _, attr := range attrs {
		attrMap[string(attr.Key)] = attr.Value.AsInterface()
	}

	if attrMap[SpanAttrTool] != "ticktick_get_tasks" {
		t.Errorf("expected tool 'ticktick_get_tasks', got %v", attrMap[SpanAttrTool])
	}
	if attrMap[SpanAttrOperation] != "get" {
		t.Errorf("expected operation 'get', got %v", attrMap[SpanAttrOperation])
	}
	if attrMap[SpanAttrProjectID] != "project-1" {
		t.Errorf("expected project id 'project-1', got %v", attrMap[SpanAttrProjectID])
	}
	if attrMap[SpanAttrTaskID] != "task-1" {
		t.Errorf("expected task id 'task-1', got %v", attrMap[SpanAttrTaskID])
	}
	if attrMap[SpanAttrReadOnly] != true {
		t.Errorf("expected read_only true, got %v", attrMap[SpanAttrReadOnly])
	}
}

func TestSpanAttributeBuilder_EmptyValues(t *testing.T) {
	// Empty project and task ids should not be added
	builder := NewSpanAttributeBuilder().
		WithTool("test_tool").
		WithProject("").
		WithTask("")

	attrs := builder.Build()

	if len(attrs) != 1 {
		t.Errorf("expected 1 attribute (only tool), got %d", len(attrs))
	}
}

func TestStartToolSpan(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "stdout",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	spanCtx, span := StartToolSpan(ctx, "ticktick_get_tasks")
	defer span.End()

	if spanCtx == nil {
		t.Error("expected context to be non-nil")
	}
	if span == nil {
		t.Error("expected span to be non-nil")
	}
}

func TestStartTickTickSpan(t *testing.T) {
	ctx := context.Background()

	spanCtx, span := StartTickTickSpan(ctx, "update")
	defer span.End()

	if spanCtx == nil {
		t.Error("expected context to be non-nil")
	}
	if span == nil {
		t.Error("expected span to be non-nil")
	}
}

func TestSetSpanError(t *testing.T) {
	_, span := StartSpan(context.Background(), "test-span")
	defer span.End()

	// Must not panic, with or without an error
	SetSpanError(span, errors.New("something failed"))
	SetSpanError(span, nil)
	SetSpanSuccess(span)
	AddSpanEvent(span, "retried")
}

func TestGetTraceAndSpanID_NoSpan(t *testing.T) {
	ctx := context.Background()

	if id := GetTraceID(ctx); id != "" {
		t.Errorf("expected empty trace id without a span, got %q", id)
	}
	if id := GetSpanID(ctx); id != "" {
		t.Errorf("expected empty span id without a span, got %q", id)
	}
}

func TestGetTraceAndSpanID_WithSpan(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, Config{
		ServiceName:       "test-service",
		ServiceVersion:    "1.0.0",
		Enabled:           true,
		MetricsExporter:   "stdout",
		TracingExporter:   "stdout",
		TraceSamplingRate: 1.0,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	spanCtx, span := StartSpan(ctx, "test-span")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Fatal("expected a recording span with a valid context")
	}
	if got := GetTraceID(spanCtx); got != span.SpanContext().TraceID().String() {
		t.Errorf("GetTraceID() = %q, want %q", got, span.SpanContext().TraceID().String())
	}
	if got := GetSpanID(spanCtx); got != span.SpanContext().SpanID().String() {
		t.Errorf("GetSpanID() = %q, want %q", got, span.SpanContext().SpanID().String())
	}
}
