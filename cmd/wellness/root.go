// ABOUTME: Root Cobra command for the wellness CLI.
// ABOUTME: Loads config, logger and the store via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/config"
	"github.com/harperreed/wellness/internal/logging"
	"github.com/harperreed/wellness/internal/wellness"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// noStore marks commands that manage storage themselves or need none.
const noStore = "wellness/no-store"

var (
	cfg      *config.Config
	logger   *zap.Logger
	store    *wellness.Store
	importer *wellness.Importer
)

var rootCmd = &cobra.Command{
	Use:   "wellness",
	Short: "Squad wellness tracker for rugby teams",
	Long: `Wellness imports the daily wellness questionnaire of a rugby squad and
turns it into team averages, alerts and trends.

WHAT IT TRACKS:

  Questionnaire  sleep, mental load, motivation, HDC (upper-body soreness),
                 BDC (lower-body soreness), each scored 1 to 5
  Body           weight against each player's target weight
  Squad          players, positions, groups and lines, injuries

QUICK START:

  $ wellness import bien-etre.xlsx          # Import a single-day sheet
  $ wellness import semaine.csv --blocks    # List the day blocks of a weekly sheet
  $ wellness import semaine.csv --all-blocks
  $ wellness average                        # Team average for the latest day
  $ wellness average --group Forwards       # Forwards only
  $ wellness alerts                         # Who needs attention today
  $ wellness zscore --metric sleep          # Sleep trend against recent days

SQUAD:

  $ wellness players list
  $ wellness players update dupont --position Talonneur --weight 104
  $ wellness injury add dupont hamstring 2 --circumstance match
  $ wellness injury list --active

GOOGLE SHEETS:

  Imports accept a Google Sheets link. Set a default sheet once:

  $ wellness config set sheet_url https://docs.google.com/spreadsheets/d/<id>/edit
  $ wellness import

MCP INTEGRATION:

  Run 'wellness mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "wellness": { "command": "wellness", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in SQLite at ~/.local/share/wellness/wellness.db by default.
  Set 'backend' to badger, charm or memory with 'wellness config set'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "help" || skipsStore(cmd) {
			return loadConfig()
		}
		if err := loadConfig(); err != nil {
			return err
		}
		return openStore()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		defer func() {
			if logger != nil {
				_ = logger.Sync()
			}
		}()
		return closeStore()
	},
}

func skipsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[noStore] == "true" {
			return true
		}
	}
	return false
}

func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, err = logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	return nil
}

func openStore() error {
	repo, err := cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
	}
	store, err = wellness.Open(repo, logger)
	if err != nil {
		_ = repo.Close()
		return fmt.Errorf("failed to load data: %w", err)
	}

	opts, err := cfg.ImportOptions(logger)
	if err != nil {
		return err
	}
	importer = wellness.NewImporter(store, opts, cfg.Fetcher(logger))
	return nil
}

func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	importer = nil
	return err
}

var faint = color.New(color.Faint)

func shortID(id fmt.Stringer) string {
	return id.String()[:8]
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

// formatScore renders an optional value, "-" when missing.
func formatScore(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

// confirm asks a y/N question unless skip is set.
func confirm(prompt string, skip bool) bool {
	if skip {
		return true
	}
	fmt.Print(prompt + " [y/N]: ")
	var answer string
	_, _ = fmt.Scanln(&answer)
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
