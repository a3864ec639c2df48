package project_tools

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mjkoo/yattmcp/internal/config"
	"github.com/mjkoo/yattmcp/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()

	sc, err := server.NewServerContext(context.Background(), &config.Config{
		APIToken:       "test-token",
		InboxProjectID: "inbox-1",
	})
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func registeredToolNames(s *mcpserver.MCPServer) map[string]bool {
	names := make(map[string]bool)
	for _, st := range s.ListTools() {
		names[st.Tool.Name] = true
	}
	return names
}

func TestRegisterProjectTools(t *testing.T) {
	sc := newTestServerContext(t)
	s := mcpserver.NewMCPServer("test", "0.0.0", mcpserver.WithToolCapabilities(true))

	if err := RegisterProjectTools(s, sc, false); err != nil {
		t.Fatalf("RegisterProjectTools() error = %v", err)
	}

	names := registeredToolNames(s)
	for _, want := range []string{
		"ticktick_list_projects",
		"ticktick_get_project_tasks",
		"ticktick_create_project",
		"ticktick_delete_project",
	} {
		if !names[want] {
			t.Errorf("Expected tool %s to be registered", want)
		}
	}
}

func TestRegisterProjectToolsReadOnly(t *testing.T) {
	sc := newTestServerContext(t)
	s := mcpserver.NewMCPServer("test", "0.0.0", mcpserver.WithToolCapabilities(true))

	if err := RegisterProjectTools(s, sc, true); err != nil {
		t.Fatalf("RegisterProjectTools() error = %v", err)
	}

	names := registeredToolNames(s)
	if names["ticktick_delete_project"] {
		t.Error("ticktick_delete_project should not be registered in read-only mode")
	}
	if !names["ticktick_list_projects"] {
		t.Error("ticktick_list_projects should be registered in read-only mode")
	}
	if !names["ticktick_create_project"] {
		t.Error("ticktick_create_project should be registered in read-only mode")
	}
}
