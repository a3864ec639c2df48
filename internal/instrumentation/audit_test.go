package instrumentation

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

const (
	testToolSearch = "ticktick_search_tasks"
	testToolDelete = "ticktick_delete_task"
)

func TestToolInvocation_NewAndComplete(t *testing.T) {
	ti := NewToolInvocation(testToolSearch)

	if ti.Tool != testToolSearch {
		t.Errorf("Tool = %q, want %q", ti.Tool, testToolSearch)
	}
	if ti.StartTime.IsZero() {
		t.Error("StartTime should not be zero")
	}

	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("Success should be true")
	}
	// Duration is calculated from StartTime, so it should be >= 0
	if ti.Duration < 0 {
		t.Error("Duration should not be negative")
	}
	if ti.Error != "" {
		t.Errorf("Error should be empty, got %q", ti.Error)
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation(testToolDelete)
	err := errors.New("task not found")

	ti.CompleteWithError(err)

	if ti.Success {
		t.Error("Success should be false")
	}
	if ti.Error != "task not found" {
		t.Errorf("Error = %q, want %q", ti.Error, "task not found")
	}
}

func TestToolInvocation_WithTarget(t *testing.T) {
	ti := NewToolInvocation(testToolDelete)
	ti.WithTarget("proj-1", "task-1").WithOperation(OperationDelete)

	if ti.ProjectID != "proj-1" {
		t.Errorf("ProjectID = %q, want %q", ti.ProjectID, "proj-1")
	}
	if ti.TaskID != "task-1" {
		t.Errorf("TaskID = %q, want %q", ti.TaskID, "task-1")
	}
	if ti.Operation != OperationDelete {
		t.Errorf("Operation = %q, want %q", ti.Operation, OperationDelete)
	}
}

func TestToolInvocation_Status(t *testing.T) {
	ti := NewToolInvocation("test")

	ti.Success = true
	if status := ti.Status(); status != StatusSuccess {
		t.Errorf("Status() = %q, want %q", status, StatusSuccess)
	}

	ti.Success = false
	if status := ti.Status(); status != StatusError {
		t.Errorf("Status() = %q, want %q", status, StatusError)
	}
}

func TestToolInvocation_LogAttrs(t *testing.T) {
	ti := NewToolInvocation(testToolDelete)
	ti.WithTarget("proj-1", "task-1").
		WithOperation(OperationDelete).
		CompleteSuccess()

	attrs := ti.LogAttrs()

	keys := make(map[string]bool)
	for _, attr := range attrs {
		keys[attr.Key] = true
	}

	for _, want := range []string{"tool", "duration", "success", "operation", "project_id", "task_id"} {
		if !keys[want] {
			t.Errorf("LogAttrs missing key %q", want)
		}
	}
	if keys["error"] {
		t.Error("LogAttrs should not include error for a successful invocation")
	}
}

func TestAuditLogger_LogToolInvocation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	al := NewAuditLogger(logger)

	ti := NewToolInvocation(testToolSearch).CompleteSuccess()
	al.LogToolInvocation(ti)

	out := buf.String()
	if !strings.Contains(out, "tool_executed") {
		t.Errorf("expected tool_executed log, got %q", out)
	}
	if !strings.Contains(out, testToolSearch) {
		t.Errorf("expected tool name in log, got %q", out)
	}

	buf.Reset()
	ti = NewToolInvocation(testToolDelete).CompleteWithError(errors.New("boom"))
	al.LogToolInvocation(ti)

	out = buf.String()
	if !strings.Contains(out, "tool_failed") {
		t.Errorf("expected tool_failed log, got %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("expected error in log, got %q", out)
	}
}

func TestAuditLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	al := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{Enabled: false})

	al.LogToolInvocation(NewToolInvocation(testToolSearch).CompleteSuccess())

	if buf.Len() != 0 {
		t.Errorf("disabled audit logger should not log, got %q", buf.String())
	}
}
