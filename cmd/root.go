package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the yattmcp application
var rootCmd = &cobra.Command{
	Use:   "yattmcp",
	Short: "MCP server for TickTick task management",
	Long: `yattmcp (yet another TickTick MCP) exposes TickTick projects and tasks
to AI assistants through the Model Context Protocol.

It authenticates with a TickTick personal access token (TICKTICK_API_TOKEN)
and serves tools for listing, creating, searching, updating, and completing
tasks over stdio or streamable HTTP.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "yattmcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
