// ABOUTME: CLI command for moving data between storage backends.
// ABOUTME: Copies players, entries, injuries and settings, e.g. sqlite to charm.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/config"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateDryRun bool
	migrateForce  bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data between storage backends",
	Long: `Copy all wellness data from one storage backend to another.

BACKENDS:

  sqlite   local SQLite database (default)
  badger   local Badger key-value store
  charm    Charm Cloud key-value store, E2E encrypted and synced

IMPORTANT:

  - The source is left untouched
  - A destination that already holds data is refused unless --force is given;
    records with the same ID are then overwritten
  - Run with --dry-run first to see what would be copied
  - After migrating, point the CLI at the new backend:
      wellness config set backend <name>

USAGE:

  wellness migrate --to charm --dry-run
  wellness migrate --from sqlite --to badger`,
	Annotations: map[string]string{
		noStore: "true",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		from := migrateFrom
		if from == "" {
			from = cfg.GetBackend()
		}
		if migrateTo == "" {
			return fmt.Errorf("--to is required (one of %s)", strings.Join(config.Backends, ", "))
		}
		if from == migrateTo {
			return fmt.Errorf("source and destination are both %s", from)
		}

		dataDir := cfg.GetDataDir()
		src, err := config.OpenBackend(from, dataDir)
		if err != nil {
			return fmt.Errorf("failed to open source %s: %w", from, err)
		}
		defer src.Close()

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Println()
			data, err := storage.GetAllData(src)
			if err != nil {
				return fmt.Errorf("failed to read source: %w", err)
			}
			fmt.Printf("Would copy from %s to %s:\n", from, migrateTo)
			fmt.Printf("  Players:  %d\n", len(data.Players))
			fmt.Printf("  Entries:  %d\n", len(data.Entries))
			fmt.Printf("  Injuries: %d\n", len(data.Injuries))
			fmt.Printf("  Settings: %t\n", data.Settings != nil)
			return nil
		}

		dst, err := config.OpenBackend(migrateTo, dataDir)
		if err != nil {
			return fmt.Errorf("failed to open destination %s: %w", migrateTo, err)
		}
		defer dst.Close()

		if !migrateForce {
			existing, err := dst.ListPlayers()
			if err != nil {
				return fmt.Errorf("failed to inspect destination: %w", err)
			}
			entries, err := dst.ListEntries()
			if err != nil {
				return fmt.Errorf("failed to inspect destination: %w", err)
			}
			if len(existing) > 0 || len(entries) > 0 {
				return fmt.Errorf("destination %s already has data; use --force to merge into it", migrateTo)
			}
		}

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %s to %s", from, migrateTo)
		fmt.Printf("  Players:  %d\n", summary.Players)
		fmt.Printf("  Entries:  %d\n", summary.Entries)
		fmt.Printf("  Injuries: %d\n", summary.Injuries)
		fmt.Printf("  Settings: %t\n", summary.Settings)
		if cfg.GetBackend() != migrateTo {
			fmt.Printf("\nRun 'wellness config set backend %s' to use it.\n", migrateTo)
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source backend (default: configured backend)")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "copy into a destination that already has data")
	rootCmd.AddCommand(migrateCmd)
}
