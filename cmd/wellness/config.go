// ABOUTME: CLI commands for viewing and editing the config file.
// ABOUTME: Config lives at $XDG_CONFIG_HOME/wellness/config.json; WELLNESS_* env vars override it.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit configuration",
	Long: `View and edit the wellness configuration.

KEYS:

  backend                 sqlite (default), badger, charm or memory
  data_dir                where sqlite and badger keep their files
  log_level               debug, info, warn (default) or error
  log_format              console (default) or json
  sheet_url               default source for 'wellness import' and MCP imports
  sheet_name              Google Sheets tab to download (default Bien-être)
  date_scan_rows          rows scanned above the header for the date
  header_scan_rows        rows scanned for the header or block markers
  max_name_length         longest text still read as a player name
  vocabulary_file         extra words that mark a row as a remark
  fetch_timeout_seconds   timeout for Google Sheets downloads
  fetch_retries           retries for Google Sheets downloads

Every key can be overridden with an environment variable, e.g.
WELLNESS_BACKEND=memory or WELLNESS_LOG_LEVEL=debug.`,
	Annotations: map[string]string{noStore: "true"},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(faint.Sprint(config.GetConfigPath()))
		fmt.Println(string(data))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key",
	Long: `Set a configuration key and save the config file.

Valid keys: ` + strings.Join(config.Keys(), ", "),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ %s = %s", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
