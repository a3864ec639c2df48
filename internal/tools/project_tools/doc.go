// Package project_tools registers the MCP tools for TickTick project
// management: listing projects, reading a project's tasks, and creating
// or deleting projects.
package project_tools
