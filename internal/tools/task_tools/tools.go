package task_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mjkoo/yattmcp/internal/server"
	"github.com/mjkoo/yattmcp/internal/tasks"
	"github.com/mjkoo/yattmcp/internal/tools/batch"
	"github.com/mjkoo/yattmcp/internal/tools/common"
)

// RegisterTaskTools registers all task-related tools with the MCP
// server. Mutating tools other than creation are only registered when
// readOnly is false.
func RegisterTaskTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	registerReadTools(s, sc)
	registerCreateTool(s, sc)

	if !readOnly {
		registerMutationTools(s, sc)
	}

	return nil
}

// registerReadTools registers retrieval and search tools.
func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	// Get tasks tool
	getTasksTool := mcp.NewTool("ticktick_get_tasks",
		mcp.WithDescription("Get details of one or more tasks by ID"),
		mcp.WithString("projectId",
			mcp.Description("The ID of the project containing the tasks. Defaults to the inbox when omitted."),
		),
		mcp.WithString("taskIds",
			mcp.Required(),
			mcp.Description("Task ID (string) or array of task IDs to retrieve"),
		),
	)

	s.AddTool(getTasksTool, common.InstrumentedToolHandler("ticktick_get_tasks", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})
			projectID, _ := args["projectId"].(string)

			taskIDs, err := batch.ParseStringOrArray(args["taskIds"], "taskIds")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			results := batch.ProcessBatch(taskIDs, func(taskID string) (string, error) {
				task, err := sc.Service().Get(ctx, projectID, taskID)
				if err != nil {
					return "", err
				}
				jsonBytes, _ := json.Marshal(task)
				return string(jsonBytes), nil
			})

			return mcp.NewToolResultText(batch.FormatResults(results)), nil
		}))

	// Search tasks tool
	searchTasksTool := mcp.NewTool("ticktick_search_tasks",
		mcp.WithDescription("Search active tasks across all projects, or within one project. All given filters must match (AND). Completed tasks are not searchable."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive substring to match against task titles"),
		),
		mcp.WithString("priority",
			mcp.Description("Filter by priority: 'none', 'low', 'medium', or 'high'"),
		),
		mcp.WithString("projectId",
			mcp.Description("Restrict the search to one project"),
		),
		mcp.WithString("dateFrom",
			mcp.Description("Earliest due date to match, inclusive (YYYY-MM-DD or ISO 8601 date-time)"),
		),
		mcp.WithString("dateTo",
			mcp.Description("Latest due date to match, inclusive (YYYY-MM-DD or ISO 8601 date-time)"),
		),
	)

	s.AddTool(searchTasksTool, common.InstrumentedToolHandler("ticktick_search_tasks", "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})
			query, _ := args["query"].(string)
			priority, _ := args["priority"].(string)
			projectID, _ := args["projectId"].(string)
			dateFrom, _ := args["dateFrom"].(string)
			dateTo, _ := args["dateTo"].(string)

			filter, err := tasks.NewFilter(query, priority, projectID, dateFrom, dateTo)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			matched, err := sc.Service().Search(ctx, filter)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to search tasks: %v", err)), nil
			}

			result, _ := json.MarshalIndent(matched, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))
}

// registerCreateTool registers task creation, which is available even
// in read-only mode since it cannot destroy existing data.
func registerCreateTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	createTaskTool := mcp.NewTool("ticktick_create_task",
		mcp.WithDescription("Create a new task. A plain date (YYYY-MM-DD) makes the task all-day; a date-time makes it timed."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The task title"),
		),
		mcp.WithString("projectId",
			mcp.Description("The project to create the task in. Defaults to the inbox when omitted."),
		),
		mcp.WithString("content",
			mcp.Description("Free-form task description"),
		),
		mcp.WithString("priority",
			mcp.Description("Task priority: 'none' (default), 'low', 'medium', or 'high'"),
		),
		mcp.WithString("startDate",
			mcp.Description("Start date (YYYY-MM-DD or ISO 8601 date-time)"),
		),
		mcp.WithString("dueDate",
			mcp.Description("Due date (YYYY-MM-DD or ISO 8601 date-time)"),
		),
		mcp.WithString("subtasks",
			mcp.Description("Subtasks: a title (string), an object {\"title\": ..., \"isCompleted\": ...}, or an array mixing both"),
		),
	)

	s.AddTool(createTaskTool, common.InstrumentedToolHandler("ticktick_create_task", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			title, ok := args["title"].(string)
			if !ok || title == "" {
				return mcp.NewToolResultError("title is required"), nil
			}

			task := tasks.Task{
				Title:    title,
				Priority: tasks.PriorityNone,
			}
			task.ProjectID, _ = args["projectId"].(string)
			task.Content, _ = args["content"].(string)
			task.StartDate, _ = args["startDate"].(string)
			task.DueDate, _ = args["dueDate"].(string)

			if priorityStr, ok := args["priority"].(string); ok && priorityStr != "" {
				priority, err := tasks.ParsePriority(priorityStr)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				task.Priority = priority
			}

			if args["subtasks"] != nil {
				subtasks, err := parseSubtasks(args["subtasks"])
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				task.Subtasks = subtasks
			}

			created, err := sc.Service().Create(ctx, task)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create task: %v", err)), nil
			}

			result, _ := json.MarshalIndent(created, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Task created successfully:\n%s", string(result))), nil
		}))
}

// registerMutationTools registers update, complete, and delete tools.
func registerMutationTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	// Update task tool
	updateTaskTool := mcp.NewTool("ticktick_update_task",
		mcp.WithDescription("Update fields of an existing task. Omitted fields keep their current values; an explicit empty string clears startDate or dueDate. Completion status cannot be changed here, use ticktick_complete_tasks."),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to update"),
		),
		mcp.WithString("projectId",
			mcp.Description("The ID of the project containing the task. Defaults to the inbox when omitted."),
		),
		mcp.WithString("title",
			mcp.Description("New title for the task"),
		),
		mcp.WithString("content",
			mcp.Description("New description for the task"),
		),
		mcp.WithString("priority",
			mcp.Description("New priority: 'none', 'low', 'medium', or 'high'"),
		),
		mcp.WithString("startDate",
			mcp.Description("New start date; empty string clears it"),
		),
		mcp.WithString("dueDate",
			mcp.Description("New due date; empty string clears it"),
		),
		mcp.WithString("subtasks",
			mcp.Description("Replacement subtasks: a title (string), an object {\"title\": ..., \"isCompleted\": ...}, or an array mixing both. Replaces the whole checklist."),
		),
	)

	s.AddTool(updateTaskTool, common.InstrumentedToolHandler("ticktick_update_task", "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			taskID, ok := args["taskId"].(string)
			if !ok || taskID == "" {
				return mcp.NewToolResultError("taskId is required"), nil
			}
			projectID, _ := args["projectId"].(string)

			// Argument presence distinguishes "leave unchanged" from
			// "set to this value", so the patch is built from the raw
			// argument map rather than typed defaults.
			var patch tasks.TaskPatch
			if v, ok := args["title"].(string); ok {
				patch.Title = &v
			}
			if v, ok := args["content"].(string); ok {
				patch.Content = &v
			}
			if v, ok := args["priority"].(string); ok && v != "" {
				priority, err := tasks.ParsePriority(v)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				patch.Priority = &priority
			}
			if v, ok := args["startDate"].(string); ok {
				patch.StartDate = &v
			}
			if v, ok := args["dueDate"].(string); ok {
				patch.DueDate = &v
			}
			if args["subtasks"] != nil {
				subtasks, err := parseSubtasks(args["subtasks"])
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				patch.HasSubtasks = true
				patch.Subtasks = subtasks
			}

			updated, err := sc.Service().Update(ctx, projectID, taskID, patch)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update task: %v", err)), nil
			}

			result, _ := json.MarshalIndent(updated, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Task updated successfully:\n%s", string(result))), nil
		}))

	// Complete tasks tool
	completeTasksTool := mcp.NewTool("ticktick_complete_tasks",
		mcp.WithDescription("Mark one or more tasks as completed. This is one-way: completed tasks cannot be reopened and disappear from project listings."),
		mcp.WithString("projectId",
			mcp.Description("The ID of the project containing the tasks. Defaults to the inbox when omitted."),
		),
		mcp.WithString("taskIds",
			mcp.Required(),
			mcp.Description("Task ID (string) or array of task IDs to complete"),
		),
	)

	s.AddTool(completeTasksTool, common.InstrumentedToolHandler("ticktick_complete_tasks", "complete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})
			projectID, _ := args["projectId"].(string)

			taskIDs, err := batch.ParseStringOrArray(args["taskIds"], "taskIds")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			results := batch.ProcessBatch(taskIDs, func(taskID string) (string, error) {
				if err := sc.Service().Complete(ctx, projectID, taskID); err != nil {
					return "", err
				}
				return fmt.Sprintf("Task %s completed successfully", taskID), nil
			})

			return mcp.NewToolResultText(batch.FormatResults(results)), nil
		}))

	// Delete tasks tool
	deleteTasksTool := mcp.NewTool("ticktick_delete_tasks",
		mcp.WithDescription("Permanently delete one or more tasks. This cannot be undone."),
		mcp.WithString("projectId",
			mcp.Description("The ID of the project containing the tasks. Defaults to the inbox when omitted."),
		),
		mcp.WithString("taskIds",
			mcp.Required(),
			mcp.Description("Task ID (string) or array of task IDs to delete"),
		),
	)

	s.AddTool(deleteTasksTool, common.InstrumentedToolHandler("ticktick_delete_tasks", "delete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})
			projectID, _ := args["projectId"].(string)

			taskIDs, err := batch.ParseStringOrArray(args["taskIds"], "taskIds")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			results := batch.ProcessBatch(taskIDs, func(taskID string) (string, error) {
				if err := sc.Service().Delete(ctx, projectID, taskID); err != nil {
					return "", err
				}
				return fmt.Sprintf("Task %s deleted successfully", taskID), nil
			})

			return mcp.NewToolResultText(batch.FormatResults(results)), nil
		}))
}

// parseSubtasks parses the subtasks argument. Each element is either a
// bare title or an object with a "title" and an optional "isCompleted"
// flag; a single string or object stands for a one-element list. A JSON
// array sent in string form is also accepted, since some MCP clients
// stringify array arguments.
func parseSubtasks(param interface{}) ([]tasks.SubTask, error) {
	var items []interface{}

	switch v := param.(type) {
	case string:
		if v == "" {
			return nil, fmt.Errorf("subtasks cannot be empty")
		}
		trimmed := strings.TrimSpace(v)
		if strings.HasPrefix(trimmed, "[") {
			var decoded []interface{}
			if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
				items = decoded
				break
			}
		}
		return []tasks.SubTask{{Title: v}}, nil
	case map[string]interface{}:
		items = []interface{}{v}
	case []interface{}:
		items = v
	default:
		return nil, fmt.Errorf("subtasks must be a string, an object, or an array")
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("subtasks cannot be empty")
	}

	subtasks := make([]tasks.SubTask, 0, len(items))
	for i, item := range items {
		switch el := item.(type) {
		case string:
			if el == "" {
				return nil, fmt.Errorf("subtasks[%d] cannot be empty", i)
			}
			subtasks = append(subtasks, tasks.SubTask{Title: el})
		case map[string]interface{}:
			title, _ := el["title"].(string)
			if title == "" {
				return nil, fmt.Errorf("subtasks[%d] must have a non-empty title", i)
			}
			completed, _ := el["isCompleted"].(bool)
			subtasks = append(subtasks, tasks.SubTask{Title: title, IsCompleted: completed})
		default:
			return nil, fmt.Errorf("subtasks[%d] must be a string or an object with a title", i)
		}
	}

	return subtasks, nil
}
