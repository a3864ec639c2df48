package project_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mjkoo/yattmcp/internal/server"
	"github.com/mjkoo/yattmcp/internal/tools/common"
)

// RegisterProjectTools registers all project-related tools with the MCP
// server. Deletion is only registered when readOnly is false.
func RegisterProjectTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List projects tool (read-only, always available)
	listProjectsTool := mcp.NewTool("ticktick_list_projects",
		mcp.WithDescription("List all TickTick projects, including the inbox when configured"),
	)

	s.AddTool(listProjectsTool, common.InstrumentedToolHandler("ticktick_list_projects", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projects, err := sc.Service().ListProjects(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list projects: %v", err)), nil
			}

			result, _ := json.MarshalIndent(projects, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	// Get project tasks tool (read-only, always available)
	getProjectTasksTool := mcp.NewTool("ticktick_get_project_tasks",
		mcp.WithDescription("List the active tasks of a project. Completed tasks are not returned; the TickTick API only exposes active tasks."),
		mcp.WithString("projectId",
			mcp.Description("The ID of the project. Defaults to the inbox when omitted."),
		),
	)

	s.AddTool(getProjectTasksTool, common.InstrumentedToolHandler("ticktick_get_project_tasks", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})
			projectID, _ := args["projectId"].(string)

			tasks, err := sc.Service().ProjectTasks(ctx, projectID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get project tasks: %v", err)), nil
			}

			result, _ := json.MarshalIndent(tasks, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	// Create project tool
	createProjectTool := mcp.NewTool("ticktick_create_project",
		mcp.WithDescription("Create a new TickTick project"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The name of the new project"),
		),
		mcp.WithString("color",
			mcp.Description("Project color as a hex string, e.g. '#F18181'"),
		),
		mcp.WithString("viewMode",
			mcp.Description("View mode: 'list', 'kanban', or 'timeline'"),
		),
	)

	s.AddTool(createProjectTool, common.InstrumentedToolHandler("ticktick_create_project", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			name, ok := args["name"].(string)
			if !ok || name == "" {
				return mcp.NewToolResultError("name is required"), nil
			}
			color, _ := args["color"].(string)
			viewMode, _ := args["viewMode"].(string)

			project, err := sc.Service().CreateProject(ctx, name, color, viewMode)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create project: %v", err)), nil
			}

			result, _ := json.MarshalIndent(project, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Project created successfully:\n%s", string(result))), nil
		}))

	// Register delete project tool only if not in read-only mode
	if !readOnly {
		deleteProjectTool := mcp.NewTool("ticktick_delete_project",
			mcp.WithDescription("Permanently delete a project and all of its tasks. This cannot be undone."),
			mcp.WithString("projectId",
				mcp.Required(),
				mcp.Description("The ID of the project to delete"),
			),
		)

		s.AddTool(deleteProjectTool, common.InstrumentedToolHandler("ticktick_delete_project", "delete", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args, _ := request.Params.Arguments.(map[string]interface{})

				projectID, ok := args["projectId"].(string)
				if !ok || projectID == "" {
					return mcp.NewToolResultError("projectId is required"), nil
				}

				if err := sc.Service().DeleteProject(ctx, projectID); err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to delete project: %v", err)), nil
				}

				return mcp.NewToolResultText(fmt.Sprintf("Project %s deleted successfully", projectID)), nil
			}))
	}

	return nil
}
