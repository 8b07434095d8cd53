// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/wellness/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to import sheets and read squad wellness
through a standardized protocol. The server communicates via stdin/stdout;
logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "wellness": {
        "command": "wellness",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  import_sheet     Import a single-day sheet (file, Google Sheets or CSV URL)
  list_blocks      List the day blocks of a weekly sheet
  import_blocks    Import selected day blocks
  team_average     Average metrics for a day, by group, line, position or player
  alerts           Low values, weight deviations and drops for a day
  zscore_series    Z-score trend of a metric
  player_history   A player's recent entries
  list_players     List the roster
  add_player       Add a player
  update_player    Change position, status, target weight or name
  delete_player    Remove a player
  add_injury       Record an injury
  heal_injury      Mark an injury healed
  delete_injury    Delete an injury record
  list_injuries    List injuries
  get_settings     Show thresholds
  update_settings  Change or reset thresholds

AVAILABLE RESOURCES:

  wellness://latest     Latest day: averages, alerts and Z-score
  wellness://players    Roster with active injuries
  wellness://settings   Thresholds`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store, importer)
		if err != nil {
			return err
		}
		server.SetDefaultSource(cfg.SheetURL)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
