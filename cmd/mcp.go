package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/fsnotify/fsnotify"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/travelwing/travelwing/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI assistant integration",
	Long: `Start a Model Context Protocol (MCP) server so AI assistants like
Claude Code and Cursor can manage flight disruptions on the traveler's behalf.

The MCP server runs over stdin/stdout and provides tools for:
- Checking real-time flight status
- Finding alternative flights on a route
- Listing calendar events for a date
- Classifying meetings against a new arrival time
- Drafting delay notifications and reschedule requests
- Sending email (simulated)

Example usage with Claude Code:
  travelwing mcp

The server will run until the client disconnects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	// MCP server inherits verbose flag from root command
}

func runMCPServer(ctx context.Context) error {
	calendar, err := GetCalendarStore()
	if err != nil {
		return fmt.Errorf("failed to initialize calendar store: %w", err)
	}
	defer func() { _ = calendar.Close() }()

	flights := GetFlightClient()
	ranker := GetRanker()
	drafter := GetDrafter()

	// Stdout carries the protocol; diagnostics go to the default
	// log writer on stderr.
	mcp.ConfigureHooks(mcp.Hooks{
		GetConfig: GetConfig,
		LogInfo: func(msg string) {
			if viper.GetBool("verbose") {
				log.Printf("[MCP INFO] %s", msg)
			}
		},
		LogError: func(err error) {
			log.Printf("[MCP ERROR] %v", err)
		},
		LogToolCall: func(name string, params interface{}) {
			if viper.GetBool("verbose") {
				log.Printf("[MCP TOOL] %s %+v", name, params)
			}
		},
		GetVersion: func() string { return version },
		EnvPrefix:  envPrefix,
	})

	// Long-running server: pick up config edits without a restart.
	// Credentials and prompt overrides can change mid-session.
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("[MCP INFO] config file changed: %s", e.Name)
		if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
			log.Printf("[MCP ERROR] config reload failed: %v", err)
		}
	})
	viper.WatchConfig()

	impl := &mcpsdk.Implementation{
		Name:    "travelwing",
		Version: version,
	}
	server := mcpsdk.NewServer(impl, &mcpsdk.ServerOptions{})

	if err := mcp.RegisterFlightTools(server, flights, ranker); err != nil {
		return fmt.Errorf("failed to register flight tools: %w", err)
	}
	if err := mcp.RegisterCalendarTools(server, calendar); err != nil {
		return fmt.Errorf("failed to register calendar tools: %w", err)
	}
	if err := mcp.RegisterCommsTools(server, drafter); err != nil {
		return fmt.Errorf("failed to register comms tools: %w", err)
	}
	if err := mcp.RegisterMCPResources(server, calendar); err != nil {
		return fmt.Errorf("failed to register MCP resources: %w", err)
	}
	if err := mcp.RegisterMCPPrompts(server); err != nil {
		return fmt.Errorf("failed to register MCP prompts: %w", err)
	}

	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}
